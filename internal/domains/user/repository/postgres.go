package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"titledb-backend/internal/domains/user"
)

const userSelect = `
	SELECT id, username, email, first_name, last_name, bio, role, is_superuser, created_at
	FROM users`

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, username, email, first_name, last_name, bio, role, is_superuser)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Bio, u.Role, u.Superuser,
	).Scan(&u.CreatedAt)

	if err != nil {
		return conflictErr(err, fmt.Errorf("failed to create user: %w", err))
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.getOne(ctx, userSelect+` WHERE id = $1`, id)
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getOne(ctx, userSelect+` WHERE username = $1`, username)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, userSelect+` WHERE email = $1`, email)
}

func (r *postgresUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Role, &u.Superuser, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) List(ctx context.Context, search string, limit, offset int) ([]user.User, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = " WHERE username ILIKE '%' || $1 || '%'"
		args = append(args, search)
	}

	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY username LIMIT $%d OFFSET $%d",
		userSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Role, &u.Superuser, &u.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, count, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET email = $2, first_name = $3, last_name = $4, bio = $5, role = $6
		 WHERE id = $1`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Bio, u.Role,
	)
	if err != nil {
		return conflictErr(err, fmt.Errorf("failed to update user: %w", err))
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, username string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// conflictErr maps a unique violation to the taken-field error using the
// constraint name, falling back to fallback for anything else.
func conflictErr(err error, fallback error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return user.ErrUsernameTaken
		case strings.Contains(pgErr.ConstraintName, "email"):
			return user.ErrEmailTaken
		}
	}
	return fallback
}
