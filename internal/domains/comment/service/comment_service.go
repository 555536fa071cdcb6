package service

import (
	"context"
	"errors"
	"fmt"

	"titledb-backend/internal/domains/comment"
	"titledb-backend/internal/domains/review"
	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/auth"
)

type commentService struct {
	comments comment.Repository
	reviews  review.Repository
	titles   title.Repository
}

func NewCommentService(comments comment.Repository, reviews review.Repository, titles title.Repository) comment.Service {
	return &commentService{
		comments: comments,
		reviews:  reviews,
		titles:   titles,
	}
}

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID int64, search string, limit, offset int) ([]comment.Comment, int, error) {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.comments.ListByReview(ctx, reviewID, search, limit, offset)
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, id int64) (*comment.Comment, error) {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	return s.comments.GetByID(ctx, reviewID, id)
}

func (s *commentService) Create(ctx context.Context, p auth.Principal, titleID, reviewID int64, req comment.CreateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	cm := &comment.Comment{
		ReviewID: reviewID,
		AuthorID: p.ID,
		Author:   p.Username,
		Text:     req.Text,
	}

	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	return cm, nil
}

func (s *commentService) Update(ctx context.Context, p auth.Principal, titleID, reviewID, id int64, req comment.UpdateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	cm, err := s.comments.GetByID(ctx, reviewID, id)
	if err != nil {
		return nil, err
	}

	if !p.IsStaff() && cm.AuthorID != p.ID {
		return nil, comment.ErrForbidden
	}

	if req.Text != nil {
		cm.Text = *req.Text
	}

	if err := s.comments.Update(ctx, cm); err != nil {
		return nil, err
	}

	return cm, nil
}

func (s *commentService) Delete(ctx context.Context, p auth.Principal, titleID, reviewID, id int64) error {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return err
	}

	cm, err := s.comments.GetByID(ctx, reviewID, id)
	if err != nil {
		return err
	}

	if !p.IsStaff() && cm.AuthorID != p.ID {
		return comment.ErrForbidden
	}

	return s.comments.Delete(ctx, reviewID, id)
}

// requireReview checks the whole parent chain so a wrong title id is
// reported as the missing title, not as a missing review.
func (s *commentService) requireReview(ctx context.Context, titleID, reviewID int64) error {
	exists, err := s.titles.Exists(ctx, titleID)
	if err != nil {
		return fmt.Errorf("failed to check title: %w", err)
	}
	if !exists {
		return title.ErrTitleNotFound
	}

	if _, err := s.reviews.GetByID(ctx, titleID, reviewID); err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			return review.ErrReviewNotFound
		}
		return err
	}
	return nil
}
