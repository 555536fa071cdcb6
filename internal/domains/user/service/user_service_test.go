package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledb-backend/internal/domains/user"
	"titledb-backend/internal/infrastructure/email"
	"titledb-backend/internal/shared/auth"
	"titledb-backend/pkg/confirm"
	"titledb-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, addr string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == addr {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, search string, limit, offset int) ([]user.User, int, error) {
	var out []user.User
	for _, u := range f.users {
		if search != "" && !strings.Contains(u.Username, search) {
			continue
		}
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, username string) error {
	for id, u := range f.users {
		if u.Username == username {
			delete(f.users, id)
			return nil
		}
	}
	return user.ErrUserNotFound
}

// fakeEmail records every send and optionally fails.
type fakeEmail struct {
	sent []email.ConfirmationEmailData
	fail bool
}

func (f *fakeEmail) SendConfirmationEmail(ctx context.Context, data email.ConfirmationEmailData) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, data)
	return nil
}

func newTestService() (user.Service, *fakeUserRepo, *fakeEmail) {
	repo := newFakeUserRepo()
	mail := &fakeEmail{}
	codes := confirm.NewGenerator("test-secret", time.Hour)
	tokens := jwt.NewManager("test-secret", 1)
	return NewUserService(repo, mail, codes, tokens, "1 hours"), repo, mail
}

func TestSignupCreatesUserAndSendsCode(t *testing.T) {
	svc, repo, mail := newTestService()

	u, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleUser, u.Role)
	assert.Len(t, repo.users, 1)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "reader@example.com", mail.sent[0].Email)
	assert.NotEmpty(t, mail.sent[0].Code)
}

func TestSignupIsIdempotentForSamePair(t *testing.T) {
	svc, repo, mail := newTestService()
	req := user.SignupRequest{Username: "reader", Email: "reader@example.com"}

	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, repo.users, 1)
	assert.Len(t, mail.sent, 2)
}

func TestSignupRejectsPartialMatches(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "other@example.com"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)

	_, err = svc.Signup(context.Background(), user.SignupRequest{Username: "other", Email: "reader@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestSignupRejectsReservedUsername(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "me", Email: "me@example.com"})
	assert.Error(t, err)
	assert.Empty(t, repo.users)
}

func TestSignupKeepsRowWhenEmailFails(t *testing.T) {
	svc, repo, mail := newTestService()
	mail.fail = true

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	assert.Error(t, err)
	// The row survives so a retry re-sends a fresh code.
	assert.Len(t, repo.users, 1)

	mail.fail = false
	_, err = svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Len(t, repo.users, 1)
	assert.Len(t, mail.sent, 1)
}

func TestTokenExchange(t *testing.T) {
	svc, _, mail := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	token, err := svc.Token(context.Background(), user.TokenRequest{
		Username:         "reader",
		ConfirmationCode: mail.sent[0].Code,
	})
	require.NoError(t, err)

	claims, err := jwt.NewManager("test-secret", 1).ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reader", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Token(context.Background(), user.TokenRequest{Username: "ghost", ConfirmationCode: "anything"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestTokenBadCode(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	_, err = svc.Token(context.Background(), user.TokenRequest{Username: "reader", ConfirmationCode: "1abc-notasignature"})
	assert.ErrorIs(t, err, user.ErrInvalidConfirmationCode)
}

func TestAdminRoleChangeInvalidatesCode(t *testing.T) {
	svc, _, mail := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)
	code := mail.sent[0].Code

	role := "moderator"
	_, err = svc.Update(context.Background(), "reader", user.UpdateUserRequest{Role: &role})
	require.NoError(t, err)

	_, err = svc.Token(context.Background(), user.TokenRequest{Username: "reader", ConfirmationCode: code})
	assert.ErrorIs(t, err, user.ErrInvalidConfirmationCode)
}

func TestAdminCreateWithRole(t *testing.T) {
	svc, _, _ := newTestService()

	u, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "mod",
		Email:    "mod@example.com",
		Role:     "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleModerator, u.Role)
}

func TestAdminCreateDefaultsToUserRole(t *testing.T) {
	svc, _, _ := newTestService()

	u, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "plain",
		Email:    "plain@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, u.Role)
}

func TestAdminCreateRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "x",
		Email:    "x@example.com",
		Role:     "overlord",
	})
	assert.Error(t, err)
}

func TestUpdateSelfIgnoresRole(t *testing.T) {
	svc, repo, _ := newTestService()

	u, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	role := "admin"
	bio := "just a reader"
	updated, err := svc.UpdateSelf(context.Background(), u.Principal(), user.UpdateUserRequest{Role: &role, Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleUser, updated.Role)
	assert.Equal(t, "just a reader", updated.Bio)
	assert.Equal(t, auth.RoleUser, repo.users[u.ID].Role)
}

func TestAdminUpdateAppliesRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), user.SignupRequest{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	role := "moderator"
	updated, err := svc.Update(context.Background(), "reader", user.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleModerator, updated.Role)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
