package db

import (
	"context"

	"github.com/inkpress/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const blogColumns = `id, owner_id, title, slug, content, status, image, image_id, created_at, updated_at`

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var b model.Blog
	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Title,
		&b.Slug,
		&b.Content,
		&b.Status,
		&b.Image,
		&b.ImageID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (db *Postgres) CreateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	query := `
		INSERT INTO blogs (id, owner_id, title, slug, content, status, image, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + blogColumns
	return scanBlog(db.Pool.QueryRow(ctx, query,
		b.ID, b.OwnerID, b.Title, b.Slug, b.Content, b.Status, b.Image, b.ImageID))
}

func (db *Postgres) GetBlogByID(ctx context.Context, id string) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	return scanBlog(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) GetBlogForOwner(ctx context.Context, id, ownerID string) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1 AND owner_id = $2`
	return scanBlog(db.Pool.QueryRow(ctx, query, id, ownerID))
}

func (db *Postgres) GetBlogBySlug(ctx context.Context, ownerID, slug string) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE owner_id = $1 AND slug = $2`
	return scanBlog(db.Pool.QueryRow(ctx, query, ownerID, slug))
}

func (db *Postgres) UpdateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	query := `
		UPDATE blogs
		SET title = $3, slug = $4, content = $5, status = $6, image = $7, image_id = $8, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + blogColumns
	return scanBlog(db.Pool.QueryRow(ctx, query,
		b.ID, b.OwnerID, b.Title, b.Slug, b.Content, b.Status, b.Image, b.ImageID))
}

func (db *Postgres) DeleteBlog(ctx context.Context, id, ownerID string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) listBlogs(ctx context.Context, where string, args []any, limit, offset int) ([]model.Blog, error) {
	query := `
		SELECT b.id, b.title, b.slug, b.content, b.status, b.image, b.created_at, b.updated_at,
		       u.id, u.fullname, u.email, u.avatar
		FROM blogs b
		JOIN users u ON u.id = b.owner_id
		WHERE ` + where + `
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		var b model.Blog
		var owner model.UserInfo
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Slug, &b.Content, &b.Status, &b.Image, &b.CreatedAt, &b.UpdatedAt,
			&owner.ID, &owner.Fullname, &owner.Email, &owner.Avatar,
		); err != nil {
			return nil, err
		}
		b.Owner = &owner
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func (db *Postgres) ListBlogsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]model.Blog, int, error) {
	blogs, err := db.listBlogs(ctx, `b.owner_id = $1`, []any{ownerID}, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (db *Postgres) ListActiveBlogs(ctx context.Context, limit, offset int) ([]model.Blog, int, error) {
	blogs, err := db.listBlogs(ctx, `b.status = $1`, []any{model.StatusActive}, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs WHERE status = $1`, model.StatusActive).Scan(&total); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}
