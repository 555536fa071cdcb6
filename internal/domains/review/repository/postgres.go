package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"titledb-backend/internal/domains/review"
)

const reviewSelect = `
	SELECT r.id, r.title_id, r.author_id, u.username, r.text, r.score, r.pub_date
	FROM reviews r
	JOIN users u ON u.id = r.author_id`

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reviews (title_id, author_id, text, score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, pub_date`,
		rev.TitleID, rev.AuthorID, rev.Text, rev.Score,
	).Scan(&rev.ID, &rev.PubDate)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return review.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, titleID, id int64) (*review.Review, error) {
	rev := &review.Review{}
	err := r.pool.QueryRow(ctx, reviewSelect+` WHERE r.title_id = $1 AND r.id = $2`, titleID, id).Scan(
		&rev.ID, &rev.TitleID, &rev.AuthorID, &rev.Author, &rev.Text, &rev.Score, &rev.PubDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return rev, nil
}

func (r *postgresReviewRepository) ListByTitle(ctx context.Context, titleID int64, search string, limit, offset int) ([]review.Review, int, error) {
	where := " WHERE r.title_id = $1"
	args := []interface{}{titleID}
	if search != "" {
		where += " AND r.text ILIKE '%' || $2 || '%'"
		args = append(args, search)
	}

	var count int
	countQuery := "SELECT COUNT(*) FROM reviews r" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY r.pub_date DESC LIMIT $%d OFFSET $%d",
		reviewSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]review.Review, 0)
	for rows.Next() {
		var rev review.Review
		if err := rows.Scan(&rev.ID, &rev.TitleID, &rev.AuthorID, &rev.Author, &rev.Text, &rev.Score, &rev.PubDate); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read review rows: %w", err)
	}

	return reviews, count, nil
}

func (r *postgresReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE reviews SET text = $2, score = $3 WHERE id = $1`,
		rev.ID, rev.Text, rev.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, titleID, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE title_id = $1 AND id = $2`, titleID, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}
