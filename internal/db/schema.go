package db

import "context"

// EnsureSchema creates the tables and the uniqueness indexes that back the
// service-level conflict checks. The indexes are the authoritative guard:
// two concurrent creates can both pass the pre-check, but only one insert
// survives here.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			fullname TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			avatar TEXT NOT NULL,
			avatar_id TEXT NOT NULL,
			refresh_token TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users(LOWER(email))`,
		`
		CREATE TABLE IF NOT EXISTS blogs (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'inactive',
			image TEXT NOT NULL,
			image_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE UNIQUE INDEX IF NOT EXISTS blogs_owner_slug_idx ON blogs(owner_id, slug)`,
		`CREATE INDEX IF NOT EXISTS blogs_status_created_idx ON blogs(status, created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
