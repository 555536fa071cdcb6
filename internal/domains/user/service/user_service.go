package service

import (
	"context"
	"errors"
	"fmt"

	"titledb-backend/internal/domains/user"
	"titledb-backend/internal/infrastructure/email"
	"titledb-backend/internal/shared/auth"
	"titledb-backend/pkg/confirm"
	"titledb-backend/pkg/jwt"
	"titledb-backend/pkg/logger"
)

type userService struct {
	users   user.Repository
	email   email.EmailService
	codes   *confirm.Generator
	tokens  *jwt.Manager
	codeTTL string
}

func NewUserService(users user.Repository, emailService email.EmailService, codes *confirm.Generator, tokens *jwt.Manager, codeTTL string) user.Service {
	return &userService{
		users:   users,
		email:   emailService,
		codes:   codes,
		tokens:  tokens,
		codeTTL: codeTTL,
	}
}

func (s *userService) Signup(ctx context.Context, req user.SignupRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.getOrCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	code := s.codes.Make(u.ConfirmState())
	if err := s.email.SendConfirmationEmail(ctx, email.ConfirmationEmailData{
		Email:     u.Email,
		Username:  u.Username,
		Code:      code,
		ExpiresIn: s.codeTTL,
	}); err != nil {
		// The row stays. Retrying the same signup re-sends a fresh code.
		logger.Error("failed to send confirmation email", err)
		return nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return u, nil
}

// getOrCreate makes signup idempotent for an exact username/email pair
// while rejecting partial matches as conflicts.
func (s *userService) getOrCreate(ctx context.Context, req user.SignupRequest) (*user.User, error) {
	existing, err := s.users.GetByUsername(ctx, req.Username)
	if err == nil {
		if existing.Email != req.Email {
			return nil, user.ErrUsernameTaken
		}
		return existing, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	u := &user.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     auth.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Token(ctx context.Context, req user.TokenRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}

	if !s.codes.Check(u.ConfirmState(), req.ConfirmationCode) {
		return "", user.ErrInvalidConfirmationCode
	}

	return s.tokens.GenerateAccessToken(u.ID.String(), u.Username, string(u.Role), u.Superuser)
}

func (s *userService) List(ctx context.Context, search string, limit, offset int) ([]user.User, int, error) {
	return s.users.List(ctx, search, limit, offset)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := auth.Role(req.Role)
	if req.Role == "" {
		role = auth.RoleUser
	}

	u := &user.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, username string, req user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applyProfile(u, req)
	if req.Role != nil && *req.Role != "" {
		u.Role = auth.Role(*req.Role)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	return s.users.Delete(ctx, username)
}

func (s *userService) GetSelf(ctx context.Context, p auth.Principal) (*user.User, error) {
	return s.users.GetByID(ctx, p.ID)
}

func (s *userService) UpdateSelf(ctx context.Context, p auth.Principal, req user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	// Role is deliberately not applied here.
	applyProfile(u, req)

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func applyProfile(u *user.User, req user.UpdateUserRequest) {
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
}
