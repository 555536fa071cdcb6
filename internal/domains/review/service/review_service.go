package service

import (
	"context"
	"fmt"

	"titledb-backend/internal/domains/review"
	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/auth"
)

type reviewService struct {
	reviews review.Repository
	titles  title.Repository
}

func NewReviewService(reviews review.Repository, titles title.Repository) review.Service {
	return &reviewService{
		reviews: reviews,
		titles:  titles,
	}
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, search string, limit, offset int) ([]review.Review, int, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.reviews.ListByTitle(ctx, titleID, search, limit, offset)
}

func (s *reviewService) Get(ctx context.Context, titleID, id int64) (*review.Review, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}
	return s.reviews.GetByID(ctx, titleID, id)
}

func (s *reviewService) Create(ctx context.Context, p auth.Principal, titleID int64, req review.CreateReviewRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	// The author binding comes from the token, never from the payload.
	rev := &review.Review{
		TitleID:  titleID,
		AuthorID: p.ID,
		Author:   p.Username,
		Text:     req.Text,
		Score:    req.Score,
	}

	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (s *reviewService) Update(ctx context.Context, p auth.Principal, titleID, id int64, req review.UpdateReviewRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	rev, err := s.reviews.GetByID(ctx, titleID, id)
	if err != nil {
		return nil, err
	}

	if !p.IsStaff() && rev.AuthorID != p.ID {
		return nil, review.ErrForbidden
	}

	if req.Text != nil {
		rev.Text = *req.Text
	}
	if req.Score != nil {
		rev.Score = *req.Score
	}

	if err := s.reviews.Update(ctx, rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (s *reviewService) Delete(ctx context.Context, p auth.Principal, titleID, id int64) error {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return err
	}

	rev, err := s.reviews.GetByID(ctx, titleID, id)
	if err != nil {
		return err
	}

	if !p.IsStaff() && rev.AuthorID != p.ID {
		return review.ErrForbidden
	}

	return s.reviews.Delete(ctx, titleID, id)
}

func (s *reviewService) requireTitle(ctx context.Context, titleID int64) error {
	exists, err := s.titles.Exists(ctx, titleID)
	if err != nil {
		return fmt.Errorf("failed to check title: %w", err)
	}
	if !exists {
		return title.ErrTitleNotFound
	}
	return nil
}
