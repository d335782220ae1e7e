package service

import (
	"context"

	"github.com/inkpress/backend/internal/model"
)

// UserRepo and BlogRepo are the slices of the record store the services
// depend on; *db.Postgres implements both.
type UserRepo interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id, fullname, avatar, avatarID string) (*model.User, error)
	SetRefreshToken(ctx context.Context, userID, token string) error
	RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error)
	ClearRefreshToken(ctx context.Context, userID string) error
}

type BlogRepo interface {
	CreateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error)
	GetBlogByID(ctx context.Context, id string) (*model.Blog, error)
	GetBlogForOwner(ctx context.Context, id, ownerID string) (*model.Blog, error)
	GetBlogBySlug(ctx context.Context, ownerID, slug string) (*model.Blog, error)
	UpdateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error)
	DeleteBlog(ctx context.Context, id, ownerID string) error
	ListBlogsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]model.Blog, int, error)
	ListActiveBlogs(ctx context.Context, limit, offset int) ([]model.Blog, int, error)
}

// Media is the coordinator surface the resource services drive;
// *media.Coordinator implements it.
type Media interface {
	AttachNew(ctx context.Context, localPath, contentType string) (model.MediaRef, error)
	Replace(ctx context.Context, localPath, contentType string) (model.MediaRef, error)
	Release(ctx context.Context, ref model.MediaRef) error
	CleanupLocal(path string)
}
