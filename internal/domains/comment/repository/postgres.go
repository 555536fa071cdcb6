package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"titledb-backend/internal/domains/comment"
)

const commentSelect = `
	SELECT cm.id, cm.review_id, cm.author_id, u.username, cm.text, cm.pub_date
	FROM comments cm
	JOIN users u ON u.id = cm.author_id`

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, cm *comment.Comment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (review_id, author_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING id, pub_date`,
		cm.ReviewID, cm.AuthorID, cm.Text,
	).Scan(&cm.ID, &cm.PubDate)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, reviewID, id int64) (*comment.Comment, error) {
	cm := &comment.Comment{}
	err := r.pool.QueryRow(ctx, commentSelect+` WHERE cm.review_id = $1 AND cm.id = $2`, reviewID, id).Scan(
		&cm.ID, &cm.ReviewID, &cm.AuthorID, &cm.Author, &cm.Text, &cm.PubDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return cm, nil
}

func (r *postgresCommentRepository) ListByReview(ctx context.Context, reviewID int64, search string, limit, offset int) ([]comment.Comment, int, error) {
	where := " WHERE cm.review_id = $1"
	args := []interface{}{reviewID}
	if search != "" {
		where += " AND cm.text ILIKE '%' || $2 || '%'"
		args = append(args, search)
	}

	var count int
	countQuery := "SELECT COUNT(*) FROM comments cm" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY cm.pub_date DESC LIMIT $%d OFFSET $%d",
		commentSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		var cm comment.Comment
		if err := rows.Scan(&cm.ID, &cm.ReviewID, &cm.AuthorID, &cm.Author, &cm.Text, &cm.PubDate); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, count, nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, cm *comment.Comment) error {
	result, err := r.pool.Exec(ctx, `UPDATE comments SET text = $2 WHERE id = $1`, cm.ID, cm.Text)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, reviewID, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE review_id = $1 AND id = $2`, reviewID, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}
