package user

import (
	"context"

	"titledb-backend/internal/shared/auth"
)

type Service interface {
	// Signup registers a new user or re-sends the code for an existing
	// username/email pair, then emails the confirmation code.
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	// Token exchanges a valid confirmation code for an access token.
	Token(ctx context.Context, req TokenRequest) (string, error)

	List(ctx context.Context, search string, limit, offset int) ([]User, int, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, username string) error

	GetSelf(ctx context.Context, p auth.Principal) (*User, error)
	// UpdateSelf applies profile fields only. Role changes are ignored
	// so users cannot escalate their own permissions.
	UpdateSelf(ctx context.Context, p auth.Principal, req UpdateUserRequest) (*User, error)
}
