package database

import (
	"context"
	"fmt"
)

// Schema bootstrap. Cascade rules carry the catalog semantics: deleting a
// category or genre nullifies references on titles, deleting a title or a
// user removes their reviews, deleting a review removes its comments.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id          UUID PRIMARY KEY,
    username    VARCHAR(256) NOT NULL UNIQUE,
    email       VARCHAR(254) NOT NULL UNIQUE,
    role        VARCHAR(16)  NOT NULL DEFAULT 'user',
    bio         TEXT         NOT NULL DEFAULT '',
    first_name  VARCHAR(256) NOT NULL DEFAULT '',
    last_name   VARCHAR(256) NOT NULL DEFAULT '',
    is_superuser BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS categories (
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR(256) NOT NULL,
    slug VARCHAR(50)  NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS genres (
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR(256) NOT NULL,
    slug VARCHAR(50)  NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS titles (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(500) NOT NULL,
    year        INTEGER      NOT NULL,
    description TEXT,
    category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS title_genres (
    id       BIGSERIAL PRIMARY KEY,
    title_id BIGINT REFERENCES titles(id) ON DELETE SET NULL,
    genre_id BIGINT REFERENCES genres(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS reviews (
    id        BIGSERIAL PRIMARY KEY,
    title_id  BIGINT   NOT NULL REFERENCES titles(id) ON DELETE CASCADE,
    author_id UUID     NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    text      TEXT     NOT NULL,
    score     SMALLINT NOT NULL CHECK (score BETWEEN 1 AND 10),
    pub_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT reviews_one_per_author_title UNIQUE (author_id, title_id)
);

CREATE INDEX IF NOT EXISTS idx_reviews_pub_date ON reviews (pub_date);

CREATE TABLE IF NOT EXISTS comments (
    id        BIGSERIAL PRIMARY KEY,
    review_id BIGINT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
    author_id UUID   NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    text      TEXT   NOT NULL,
    pub_date  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_pub_date ON comments (pub_date);
`

// EnsureSchema creates all tables and indexes if they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
