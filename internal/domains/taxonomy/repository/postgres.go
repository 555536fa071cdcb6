package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"titledb-backend/internal/domains/taxonomy"
)

type postgresTermRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresTermRepository returns a Repository bound to the table of
// the given kind. The table name comes from a fixed Kind value, never
// from user input.
func NewPostgresTermRepository(pool *pgxpool.Pool, kind taxonomy.Kind) taxonomy.Repository {
	return &postgresTermRepository{pool: pool, table: kind.Table}
}

func (r *postgresTermRepository) List(ctx context.Context, search string, limit, offset int) ([]taxonomy.Term, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = " WHERE name ILIKE '%' || $1 || '%'"
		args = append(args, search)
	}

	var count int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.table, err)
	}

	query := fmt.Sprintf(
		"SELECT id, name, slug FROM %s%s ORDER BY name LIMIT $%d OFFSET $%d",
		r.table, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	terms := make([]taxonomy.Term, 0)
	for rows.Next() {
		var t taxonomy.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}

	return terms, count, nil
}

func (r *postgresTermRepository) GetBySlug(ctx context.Context, slug string) (*taxonomy.Term, error) {
	query := fmt.Sprintf("SELECT id, name, slug FROM %s WHERE slug = $1", r.table)

	t := &taxonomy.Term{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(&t.ID, &t.Name, &t.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxonomy.ErrTermNotFound
		}
		return nil, fmt.Errorf("failed to get from %s: %w", r.table, err)
	}

	return t, nil
}

func (r *postgresTermRepository) GetBySlugs(ctx context.Context, slugs []string) ([]taxonomy.Term, error) {
	query := fmt.Sprintf("SELECT id, name, slug FROM %s WHERE slug = ANY($1) ORDER BY name", r.table)

	rows, err := r.pool.Query(ctx, query, slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to get from %s: %w", r.table, err)
	}
	defer rows.Close()

	terms := make([]taxonomy.Term, 0, len(slugs))
	for rows.Next() {
		var t taxonomy.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}

	return terms, nil
}

func (r *postgresTermRepository) Create(ctx context.Context, term *taxonomy.Term) error {
	query := fmt.Sprintf("INSERT INTO %s (name, slug) VALUES ($1, $2) RETURNING id", r.table)

	err := r.pool.QueryRow(ctx, query, term.Name, term.Slug).Scan(&term.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrSlugExists
		}
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}

	return nil
}

func (r *postgresTermRepository) DeleteBySlug(ctx context.Context, slug string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE slug = $1", r.table)

	result, err := r.pool.Exec(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.table, err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrTermNotFound
	}

	return nil
}
