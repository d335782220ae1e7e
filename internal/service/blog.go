package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/inkpress/backend/internal/db"
	"github.com/inkpress/backend/internal/model"
	"github.com/inkpress/backend/internal/validate"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 30
)

// BlogService implements blog CRUD with the paired image lifecycle and
// (owner, slug) uniqueness.
type BlogService struct {
	blogs BlogRepo
	users UserRepo
	media Media
}

func NewBlogService(blogs BlogRepo, users UserRepo, media Media) *BlogService {
	return &BlogService{blogs: blogs, users: users, media: media}
}

// Create requires the image on first creation. Upload always precedes
// the record commit, so an aborted request can never leave a record
// referencing a nonexistent blob.
func (s *BlogService) Create(ctx context.Context, ownerID string, in validate.BlogInput, localPath, contentType string) (*model.Blog, error) {
	if localPath == "" {
		return nil, ErrFieldRequired
	}

	if _, err := s.users.GetUserByID(ctx, ownerID); err != nil {
		s.media.CleanupLocal(localPath)
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.blogs.GetBlogBySlug(ctx, ownerID, in.Slug); err == nil {
		s.media.CleanupLocal(localPath)
		return nil, ErrConflict
	} else if !db.IsNoRows(err) {
		s.media.CleanupLocal(localPath)
		return nil, err
	}

	ref, err := s.media.AttachNew(ctx, localPath, contentType)
	if err != nil {
		return nil, err
	}

	blog, err := s.blogs.CreateBlog(ctx, &model.Blog{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   in.Title,
		Slug:    in.Slug,
		Content: in.Content,
		Status:  in.Status,
		Image:   ref.URL,
		ImageID: ref.ID,
	})
	if err != nil {
		// Not yet referenced by any committed record.
		_ = s.media.Release(ctx, ref)
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return blog, nil
}

// Update mutates all writable fields in one commit. When the image is
// replaced, the old blob is deleted only after the commit succeeds; a
// failed commit releases the new blob and keeps the old reference.
func (s *BlogService) Update(ctx context.Context, ownerID, blogID string, in validate.BlogInput, localPath, contentType string) (*model.Blog, error) {
	blog, err := s.blogs.GetBlogForOwner(ctx, blogID, ownerID)
	if err != nil {
		s.media.CleanupLocal(localPath)
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if existing, err := s.blogs.GetBlogBySlug(ctx, ownerID, in.Slug); err == nil {
		if existing.ID != blog.ID {
			s.media.CleanupLocal(localPath)
			return nil, ErrConflict
		}
	} else if !db.IsNoRows(err) {
		s.media.CleanupLocal(localPath)
		return nil, err
	}

	oldRef := model.MediaRef{ID: blog.ImageID, URL: blog.Image}
	replaced := false
	if localPath != "" {
		ref, err := s.media.Replace(ctx, localPath, contentType)
		if err != nil {
			return nil, err
		}
		blog.Image, blog.ImageID = ref.URL, ref.ID
		replaced = true
	}

	blog.Title = in.Title
	blog.Slug = in.Slug
	blog.Content = in.Content
	blog.Status = in.Status

	updated, err := s.blogs.UpdateBlog(ctx, blog)
	if err != nil {
		if replaced {
			_ = s.media.Release(ctx, model.MediaRef{ID: blog.ImageID, URL: blog.Image})
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if replaced && oldRef.ID != "" {
		// Commit succeeded; a failed delete here leaves a logged orphan.
		_ = s.media.Release(ctx, oldRef)
	}

	return updated, nil
}

func (s *BlogService) Get(ctx context.Context, blogID string) (*model.Blog, error) {
	blog, err := s.blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// Delete removes the blob first, then the record. The reverse order
// could leak a blob forever; this order risks only a short-lived
// dangling reference if the record delete fails, which readers treat as
// a benign race.
func (s *BlogService) Delete(ctx context.Context, ownerID, blogID string) error {
	blog, err := s.blogs.GetBlogForOwner(ctx, blogID, ownerID)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	if err := s.media.Release(ctx, model.MediaRef{ID: blog.ImageID, URL: blog.Image}); err != nil {
		return err
	}

	if err := s.blogs.DeleteBlog(ctx, blogID, ownerID); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *BlogService) ListOwned(ctx context.Context, ownerID string, page, limit int) (*model.BlogPage, error) {
	page, limit = clampPaging(page, limit)
	blogs, total, err := s.blogs.ListBlogsByOwner(ctx, ownerID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &model.BlogPage{
		Blogs:   blogs,
		Page:    page,
		Limit:   limit,
		HasMore: page*limit < total,
	}, nil
}

func (s *BlogService) ListActive(ctx context.Context, page, limit int) (*model.BlogPage, error) {
	page, limit = clampPaging(page, limit)
	blogs, total, err := s.blogs.ListActiveBlogs(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &model.BlogPage{
		Blogs:   blogs,
		Page:    page,
		Limit:   limit,
		HasMore: page*limit < total,
	}, nil
}

func clampPaging(page, limit int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page < 1 {
		page = 1
	}
	return page, limit
}
