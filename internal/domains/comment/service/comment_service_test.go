package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledb-backend/internal/domains/comment"
	"titledb-backend/internal/domains/review"
	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/auth"
)

type stubTitleRepo struct {
	ids map[int64]bool
}

func (s *stubTitleRepo) Create(ctx context.Context, t *title.Title, genreIDs []int64) error {
	return nil
}
func (s *stubTitleRepo) Update(ctx context.Context, t *title.Title, genreIDs []int64, updateGenres bool) error {
	return nil
}
func (s *stubTitleRepo) Delete(ctx context.Context, id int64) error { return nil }
func (s *stubTitleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return s.ids[id], nil
}
func (s *stubTitleRepo) GetEntity(ctx context.Context, id int64) (*title.Title, error) {
	return nil, title.ErrTitleNotFound
}
func (s *stubTitleRepo) GetByID(ctx context.Context, id int64) (*title.TitleResponse, error) {
	return nil, title.ErrTitleNotFound
}
func (s *stubTitleRepo) List(ctx context.Context, filter title.ListTitlesFilter, limit, offset int) ([]title.TitleResponse, int, error) {
	return nil, 0, nil
}

// stubReviewRepo serves a fixed set of reviews keyed by (title, review).
type stubReviewRepo struct {
	reviews map[[2]int64]*review.Review
}

func (s *stubReviewRepo) Create(ctx context.Context, r *review.Review) error { return nil }
func (s *stubReviewRepo) GetByID(ctx context.Context, titleID, id int64) (*review.Review, error) {
	r, ok := s.reviews[[2]int64{titleID, id}]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	return r, nil
}
func (s *stubReviewRepo) ListByTitle(ctx context.Context, titleID int64, search string, limit, offset int) ([]review.Review, int, error) {
	return nil, 0, nil
}
func (s *stubReviewRepo) Update(ctx context.Context, r *review.Review) error { return nil }
func (s *stubReviewRepo) Delete(ctx context.Context, titleID, id int64) error {
	return nil
}

type fakeCommentRepo struct {
	comments map[int64]*comment.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*comment.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(ctx context.Context, cm *comment.Comment) error {
	cm.ID = f.nextID
	f.nextID++
	clone := *cm
	f.comments[cm.ID] = &clone
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, reviewID, id int64) (*comment.Comment, error) {
	cm, ok := f.comments[id]
	if !ok || cm.ReviewID != reviewID {
		return nil, comment.ErrCommentNotFound
	}
	clone := *cm
	return &clone, nil
}

func (f *fakeCommentRepo) ListByReview(ctx context.Context, reviewID int64, search string, limit, offset int) ([]comment.Comment, int, error) {
	var out []comment.Comment
	for _, cm := range f.comments {
		if cm.ReviewID == reviewID {
			out = append(out, *cm)
		}
	}
	return out, len(out), nil
}

func (f *fakeCommentRepo) Update(ctx context.Context, cm *comment.Comment) error {
	if _, ok := f.comments[cm.ID]; !ok {
		return comment.ErrCommentNotFound
	}
	clone := *cm
	f.comments[cm.ID] = &clone
	return nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, reviewID, id int64) error {
	cm, ok := f.comments[id]
	if !ok || cm.ReviewID != reviewID {
		return comment.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

// newTestService wires a service with title 1 and review 10 on it.
func newTestService() (comment.Service, *fakeCommentRepo) {
	repo := newFakeCommentRepo()
	titles := &stubTitleRepo{ids: map[int64]bool{1: true}}
	reviews := &stubReviewRepo{reviews: map[[2]int64]*review.Review{
		{1, 10}: {ID: 10, TitleID: 1},
	}}
	return NewCommentService(repo, reviews, titles), repo
}

func commenter() auth.Principal {
	return auth.Principal{ID: uuid.New(), Username: "commenter", Role: auth.RoleUser}
}

func TestCreateComment(t *testing.T) {
	svc, _ := newTestService()
	p := commenter()

	cm, err := svc.Create(context.Background(), p, 1, 10, comment.CreateCommentRequest{Text: "agreed"})
	require.NoError(t, err)

	assert.Equal(t, p.ID, cm.AuthorID)
	assert.Equal(t, int64(10), cm.ReviewID)
	assert.NotZero(t, cm.ID)
}

func TestCreateCommentRequiresText(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), commenter(), 1, 10, comment.CreateCommentRequest{})
	assert.Error(t, err)
}

func TestParentChainReportedInOrder(t *testing.T) {
	svc, _ := newTestService()
	req := comment.CreateCommentRequest{Text: "hello"}

	_, err := svc.Create(context.Background(), commenter(), 99, 10, req)
	assert.ErrorIs(t, err, title.ErrTitleNotFound)

	_, err = svc.Create(context.Background(), commenter(), 1, 99, req)
	assert.ErrorIs(t, err, review.ErrReviewNotFound)
}

func TestGetUnknownComment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), 1, 10, 404)
	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}

func TestUpdateForeignCommentForbidden(t *testing.T) {
	svc, _ := newTestService()

	cm, err := svc.Create(context.Background(), commenter(), 1, 10, comment.CreateCommentRequest{Text: "mine"})
	require.NoError(t, err)

	text := "stolen"
	_, err = svc.Update(context.Background(), commenter(), 1, 10, cm.ID, comment.UpdateCommentRequest{Text: &text})
	assert.ErrorIs(t, err, comment.ErrForbidden)
}

func TestModeratorCanDeleteForeignComment(t *testing.T) {
	svc, repo := newTestService()

	cm, err := svc.Create(context.Background(), commenter(), 1, 10, comment.CreateCommentRequest{Text: "spam"})
	require.NoError(t, err)

	mod := auth.Principal{ID: uuid.New(), Username: "mod", Role: auth.RoleModerator}
	require.NoError(t, svc.Delete(context.Background(), mod, 1, 10, cm.ID))
	assert.Empty(t, repo.comments)
}

func TestAuthorCanUpdateOwnComment(t *testing.T) {
	svc, _ := newTestService()
	p := commenter()

	cm, err := svc.Create(context.Background(), p, 1, 10, comment.CreateCommentRequest{Text: "draft"})
	require.NoError(t, err)

	text := "final"
	updated, err := svc.Update(context.Background(), p, 1, 10, cm.ID, comment.UpdateCommentRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Text)
}
