package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create fills ID and CreatedAt. A username collision returns
	// ErrUsernameTaken, an email collision ErrEmailTaken.
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, search string, limit, offset int) ([]User, int, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, username string) error
}
