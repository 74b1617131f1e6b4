package content

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]SiteContent, error) {
	return s.repo.List(ctx)
}

// ResolveAll returns the merged view for every known section, keyed by
// section name, whether or not a row is stored for it.
func (s *Service) ResolveAll(ctx context.Context) (map[string]Resolved, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	bySection := make(map[string]*SiteContent, len(rows))
	for i := range rows {
		bySection[rows[i].Section] = &rows[i]
	}

	resolved := make(map[string]Resolved, len(sectionDefaults))
	for _, section := range KnownSections() {
		resolved[section] = Resolve(section, bySection[section])
	}
	return resolved, nil
}

func (s *Service) ResolveSection(ctx context.Context, section string) (Resolved, error) {
	if !IsKnownSection(section) {
		return Resolved{}, ErrUnknownSection
	}

	row, err := s.repo.GetBySection(ctx, section)
	if err != nil && !errors.Is(err, ErrSectionNotFound) {
		return Resolved{}, err
	}
	return Resolve(section, row), nil
}

// Upsert writes the single row for a section, replacing any existing one.
// A nil ImageURL keeps the image already stored for the section.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*SiteContent, error) {
	section := strings.TrimSpace(input.Section)
	if !IsKnownSection(section) {
		return nil, ErrUnknownSection
	}

	row := SiteContent{
		ID:       uuid.NewString(),
		Section:  section,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		ImageURL: input.ImageURL,
	}

	existing, err := s.repo.GetBySection(ctx, section)
	if err != nil && !errors.Is(err, ErrSectionNotFound) {
		return nil, err
	}
	if existing != nil {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
		if input.ImageURL == nil {
			row.ImageURL = existing.ImageURL
		}
	}

	if err := s.repo.Upsert(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Service) Delete(ctx context.Context, section string) error {
	deleted, err := s.repo.DeleteBySection(ctx, section)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSectionNotFound
	}
	return nil
}
