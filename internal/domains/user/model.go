package user

import (
	"time"

	"github.com/google/uuid"

	"titledb-backend/internal/shared/auth"
	"titledb-backend/pkg/confirm"
)

type User struct {
	ID        uuid.UUID `json:"-"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
	Role      auth.Role `json:"role"`
	Superuser bool      `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// ConfirmState is the snapshot confirmation codes are bound to. Changing
// any of these fields invalidates previously issued codes.
func (u *User) ConfirmState() confirm.UserState {
	return confirm.UserState{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func (u *User) Principal() auth.Principal {
	return auth.Principal{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Superuser: u.Superuser,
	}
}
