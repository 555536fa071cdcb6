package service

import (
	"context"
	"errors"
	"fmt"

	"titledb-backend/internal/domains/taxonomy"
	"titledb-backend/internal/domains/title"
)

type titleService struct {
	titles     title.Repository
	categories taxonomy.Repository
	genres     taxonomy.Repository
}

func NewTitleService(titles title.Repository, categories, genres taxonomy.Repository) title.Service {
	return &titleService{
		titles:     titles,
		categories: categories,
		genres:     genres,
	}
}

func (s *titleService) List(ctx context.Context, filter title.ListTitlesFilter, limit, offset int) ([]title.TitleResponse, int, error) {
	return s.titles.List(ctx, filter, limit, offset)
}

func (s *titleService) Get(ctx context.Context, id int64) (*title.TitleResponse, error) {
	return s.titles.GetByID(ctx, id)
}

func (s *titleService) Create(ctx context.Context, req title.CreateTitleRequest) (*title.TitleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genreIDs, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	t := &title.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
	}

	if err := s.titles.Create(ctx, t, genreIDs); err != nil {
		return nil, fmt.Errorf("failed to create title: %w", err)
	}

	return s.titles.GetByID(ctx, t.ID)
}

func (s *titleService) Update(ctx context.Context, id int64, req title.UpdateTitleRequest) (*title.TitleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.titles.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Year != nil {
		t.Year = *req.Year
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		t.CategoryID = &category.ID
	}

	var genreIDs []int64
	updateGenres := req.Genre != nil
	if updateGenres {
		genreIDs, err = s.resolveGenres(ctx, req.Genre)
		if err != nil {
			return nil, err
		}
	}

	if err := s.titles.Update(ctx, t, genreIDs, updateGenres); err != nil {
		return nil, err
	}

	return s.titles.GetByID(ctx, t.ID)
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	return s.titles.Delete(ctx, id)
}

func (s *titleService) resolveCategory(ctx context.Context, slug string) (*taxonomy.Term, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, taxonomy.ErrTermNotFound) {
			return nil, title.ErrUnknownCategory
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

// resolveGenres maps slugs to ids, preserving request order and any
// duplicates the client sent.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]int64, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	terms, err := s.genres.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}

	bySlug := make(map[string]int64, len(terms))
	for _, term := range terms {
		bySlug[term.Slug] = term.ID
	}

	ids := make([]int64, 0, len(slugs))
	for _, slug := range slugs {
		id, ok := bySlug[slug]
		if !ok {
			return nil, title.ErrUnknownGenre
		}
		ids = append(ids, id)
	}

	return ids, nil
}
