package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkpress/backend/internal/model"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

// fakeUserRepo keeps users in memory and honors the conditional refresh
// rotation the real store provides.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User

	createErr error
	updateErr error
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		copied := *u
		repo.users[u.ID] = &copied
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	copied := *u
	r.users[u.ID] = &copied
	out := copied
	return &out, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdateUserProfile(ctx context.Context, id, fullname, avatar, avatarID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.Fullname = fullname
	u.Avatar = avatar
	u.AvatarID = avatarID
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) SetRefreshToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.RefreshToken = token
	return nil
}

func (r *fakeUserRepo) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.RefreshToken == "" || u.RefreshToken != oldToken {
		return false, nil
	}
	u.RefreshToken = newToken
	return true, nil
}

func (r *fakeUserRepo) ClearRefreshToken(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.RefreshToken = ""
	}
	return nil
}

// fakeBlogRepo keeps blogs in memory and enforces (owner, slug)
// uniqueness the way the store-level index does.
type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]*model.Blog

	createErr error
	updateErr error
	deleteErr error
}

func newFakeBlogRepo(blogs ...*model.Blog) *fakeBlogRepo {
	repo := &fakeBlogRepo{blogs: make(map[string]*model.Blog)}
	for _, b := range blogs {
		copied := *b
		repo.blogs[b.ID] = &copied
	}
	return repo
}

func (r *fakeBlogRepo) CreateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	copied := *b
	r.blogs[b.ID] = &copied
	out := copied
	return &out, nil
}

func (r *fakeBlogRepo) GetBlogByID(ctx context.Context, id string) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.blogs[id]; ok {
		out := *b
		return &out, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBlogRepo) GetBlogForOwner(ctx context.Context, id, ownerID string) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.blogs[id]; ok && b.OwnerID == ownerID {
		out := *b
		return &out, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBlogRepo) GetBlogBySlug(ctx context.Context, ownerID, slug string) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.blogs {
		if b.OwnerID == ownerID && b.Slug == slug {
			out := *b
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBlogRepo) UpdateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	existing, ok := r.blogs[b.ID]
	if !ok || existing.OwnerID != b.OwnerID {
		return nil, pgx.ErrNoRows
	}
	copied := *b
	r.blogs[b.ID] = &copied
	out := copied
	return &out, nil
}

func (r *fakeBlogRepo) DeleteBlog(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if b, ok := r.blogs[id]; ok && b.OwnerID == ownerID {
		delete(r.blogs, id)
		return nil
	}
	return pgx.ErrNoRows
}

func (r *fakeBlogRepo) ListBlogsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]model.Blog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []model.Blog
	for _, b := range r.blogs {
		if b.OwnerID == ownerID {
			owned = append(owned, *b)
		}
	}
	return page(owned, limit, offset), len(owned), nil
}

func (r *fakeBlogRepo) ListActiveBlogs(ctx context.Context, limit, offset int) ([]model.Blog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []model.Blog
	for _, b := range r.blogs {
		if b.Status == model.StatusActive {
			active = append(active, *b)
		}
	}
	return page(active, limit, offset), len(active), nil
}

func page(blogs []model.Blog, limit, offset int) []model.Blog {
	if offset >= len(blogs) {
		return []model.Blog{}
	}
	end := offset + limit
	if end > len(blogs) {
		end = len(blogs)
	}
	return blogs[offset:end]
}

// fakeMedia records every coordinator call so tests can assert the
// attach/commit/release ordering.
type fakeMedia struct {
	mu sync.Mutex

	attachErr error

	attached  []string
	released  []string
	cleaned   []string
	nextRefID int
}

func (m *fakeMedia) AttachNew(ctx context.Context, localPath, contentType string) (model.MediaRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attachErr != nil {
		return model.MediaRef{}, m.attachErr
	}
	m.nextRefID++
	id := "blob-" + string(rune('0'+m.nextRefID))
	m.attached = append(m.attached, id)
	return model.MediaRef{ID: id, URL: "https://cdn.example.com/" + id}, nil
}

func (m *fakeMedia) Replace(ctx context.Context, localPath, contentType string) (model.MediaRef, error) {
	return m.AttachNew(ctx, localPath, contentType)
}

func (m *fakeMedia) Release(ctx context.Context, ref model.MediaRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released = append(m.released, ref.ID)
	return nil
}

func (m *fakeMedia) CleanupLocal(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleaned = append(m.cleaned, path)
}
