package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"titledb-backend/internal/domains/taxonomy"
	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/utils"
)

// titleSelect is shared by GetByID and List. The rating subquery is the
// derived mean review score rounded to the nearest integer, null when
// the title has no reviews.
const titleSelect = `
	SELECT t.id, t.name, t.year, t.description,
	       c.id, c.name, c.slug,
	       (SELECT ROUND(AVG(r.score))::int FROM reviews r WHERE r.title_id = t.id) AS rating
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id`

const titleCountFrom = `
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id`

type postgresTitleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTitleRepository(pool *pgxpool.Pool) title.Repository {
	return &postgresTitleRepository{pool: pool}
}

func (r *postgresTitleRepository) Create(ctx context.Context, t *title.Title, genreIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO titles (name, year, description, category_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Name, t.Year, t.Description, t.CategoryID,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to insert title: %w", err)
	}

	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			t.ID, genreID,
		); err != nil {
			return fmt.Errorf("failed to link genre: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit title: %w", err)
	}
	return nil
}

func (r *postgresTitleRepository) Update(ctx context.Context, t *title.Title, genreIDs []int64, updateGenres bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE titles SET name = $2, year = $3, description = $4, category_id = $5 WHERE id = $1`,
		t.ID, t.Name, t.Year, t.Description, t.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}
	if result.RowsAffected() == 0 {
		return title.ErrTitleNotFound
	}

	if updateGenres {
		if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, t.ID); err != nil {
			return fmt.Errorf("failed to clear genre links: %w", err)
		}
		for _, genreID := range genreIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
				t.ID, genreID,
			); err != nil {
				return fmt.Errorf("failed to link genre: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit title update: %w", err)
	}
	return nil
}

func (r *postgresTitleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}
	if result.RowsAffected() == 0 {
		return title.ErrTitleNotFound
	}
	return nil
}

func (r *postgresTitleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM titles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title existence: %w", err)
	}
	return exists, nil
}

func (r *postgresTitleRepository) GetEntity(ctx context.Context, id int64) (*title.Title, error) {
	t := &title.Title{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, year, description, category_id FROM titles WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Year, &t.Description, &t.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, title.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	return t, nil
}

func (r *postgresTitleRepository) GetByID(ctx context.Context, id int64) (*title.TitleResponse, error) {
	row := r.pool.QueryRow(ctx, titleSelect+` WHERE t.id = $1`, id)

	resp, err := scanTitle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, title.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}

	if err := r.attachGenres(ctx, []*title.TitleResponse{resp}); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *postgresTitleRepository) List(ctx context.Context, filter title.ListTitlesFilter, limit, offset int) ([]title.TitleResponse, int, error) {
	clauses := []string{}
	args := []interface{}{}

	arg := func(v interface{}) int {
		args = append(args, v)
		return len(args)
	}

	if filter.Name != "" {
		clauses = append(clauses, fmt.Sprintf("t.name ILIKE '%%' || $%d || '%%'", arg(filter.Name)))
	}
	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("c.slug = $%d", arg(filter.Category)))
	}
	if filter.Genre != "" {
		clauses = append(clauses, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM title_genres tg
			         JOIN genres g ON g.id = tg.genre_id
			         WHERE tg.title_id = t.id AND g.slug = $%d)`, arg(filter.Genre)))
	}
	if filter.Year != nil {
		clauses = append(clauses, fmt.Sprintf("t.year = $%d", arg(*filter.Year)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + utils.JoinWithAnd(clauses)
	}

	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*)"+titleCountFrom+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count titles: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY t.year, t.name LIMIT $%d OFFSET $%d",
		titleSelect, where, arg(limit), arg(offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list titles: %w", err)
	}
	defer rows.Close()

	titles := make([]title.TitleResponse, 0)
	for rows.Next() {
		resp, err := scanTitle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan title row: %w", err)
		}
		titles = append(titles, *resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read title rows: %w", err)
	}

	refs := make([]*title.TitleResponse, len(titles))
	for i := range titles {
		refs[i] = &titles[i]
	}
	if err := r.attachGenres(ctx, refs); err != nil {
		return nil, 0, err
	}

	return titles, count, nil
}

func scanTitle(row pgx.Row) (*title.TitleResponse, error) {
	resp := &title.TitleResponse{Genre: make([]taxonomy.Term, 0)}

	var catID *int64
	var catName, catSlug *string

	err := row.Scan(
		&resp.ID,
		&resp.Name,
		&resp.Year,
		&resp.Description,
		&catID,
		&catName,
		&catSlug,
		&resp.Rating,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		resp.Category = &taxonomy.Term{ID: *catID, Name: *catName, Slug: *catSlug}
	}

	return resp, nil
}

// attachGenres loads the genre sets for the given titles in one query.
// DISTINCT folds duplicate join rows out of the read path.
func (r *postgresTitleRepository) attachGenres(ctx context.Context, titles []*title.TitleResponse) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]int64, len(titles))
	byID := make(map[int64]*title.TitleResponse, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
		byID[t.ID] = t
	}

	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT tg.title_id, g.id, g.name, g.slug
		 FROM title_genres tg
		 JOIN genres g ON g.id = tg.genre_id
		 WHERE tg.title_id = ANY($1)
		 ORDER BY g.name`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("failed to load genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var titleID int64
		var g taxonomy.Term
		if err := rows.Scan(&titleID, &g.ID, &g.Name, &g.Slug); err != nil {
			return fmt.Errorf("failed to scan genre row: %w", err)
		}
		if t, ok := byID[titleID]; ok {
			t.Genre = append(t.Genre, g)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read genre rows: %w", err)
	}

	return nil
}
