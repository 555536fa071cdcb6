package service

import (
	"context"

	"titledb-backend/internal/domains/taxonomy"
)

type termService struct {
	repo taxonomy.Repository
}

func NewTermService(repo taxonomy.Repository) taxonomy.Service {
	return &termService{repo: repo}
}

func (s *termService) List(ctx context.Context, search string, limit, offset int) ([]taxonomy.Term, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *termService) Create(ctx context.Context, req taxonomy.CreateTermRequest) (*taxonomy.Term, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	term := req.Term()
	if err := s.repo.Create(ctx, &term); err != nil {
		return nil, err
	}

	return &term, nil
}

func (s *termService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
