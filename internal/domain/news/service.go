package news

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns news sorted newest first.
func (s *Service) List(ctx context.Context) ([]NewsItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	SortByNewest(items)
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*NewsItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateNewsInput) (*NewsItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	item := NewsItem{
		ID:       uuid.NewString(),
		Title:    title,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Update(ctx context.Context, input UpdateNewsInput) (*NewsItem, error) {
	item, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("title is required")
		}
		item.Title = trimmed
	}
	if input.Content != nil {
		item.Content = *input.Content
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNewsNotFound
	}
	return nil
}

// SortByNewest orders items by created_at descending, in place.
func SortByNewest(items []NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
