package db

import (
	"context"
	"errors"
	"strings"

	"github.com/inkpress/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, email, fullname, password_hash, avatar, avatar_id, refresh_token, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Fullname,
		&u.PasswordHash,
		&u.Avatar,
		&u.AvatarID,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Postgres) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (id, email, fullname, password_hash, avatar, avatar_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query,
		u.ID, strings.ToLower(u.Email), u.Fullname, u.PasswordHash, u.Avatar, u.AvatarID))
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(db.Pool.QueryRow(ctx, query, email))
}

func (db *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) UpdateUserProfile(ctx context.Context, id, fullname, avatar, avatarID string) (*model.User, error) {
	query := `
		UPDATE users
		SET fullname = $2, avatar = $3, avatar_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, id, fullname, avatar, avatarID))
}

// SetRefreshToken unconditionally replaces the persisted refresh value.
// Used on login, where any previously issued token is superseded.
func (db *Postgres) SetRefreshToken(ctx context.Context, userID, token string) error {
	query := `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`
	tag, err := db.Pool.Exec(ctx, query, userID, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RotateRefreshToken swaps the persisted refresh value only if the old
// value is still current. A false return means the presented token was
// already rotated out (replay) or cleared (logout).
func (db *Postgres) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error) {
	query := `
		UPDATE users
		SET refresh_token = $3, updated_at = NOW()
		WHERE id = $1 AND refresh_token = $2 AND refresh_token <> ''
	`
	tag, err := db.Pool.Exec(ctx, query, userID, oldToken, newToken)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (db *Postgres) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token = '', updated_at = NOW() WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, userID)
	return err
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
