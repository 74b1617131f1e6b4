package inmemory

import (
	"context"
	"sync"

	contentdomain "club-site-go/internal/domain/content"
)

// ContentRepository keeps section overrides in a plain map. It backs the
// content endpoints in handler tests, where spinning up postgres would
// buy nothing.
type ContentRepository struct {
	mu   sync.RWMutex
	rows map[string]contentdomain.SiteContent
}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{rows: make(map[string]contentdomain.SiteContent)}
}

func (r *ContentRepository) List(ctx context.Context) ([]contentdomain.SiteContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]contentdomain.SiteContent, 0, len(r.rows))
	for _, row := range r.rows {
		result = append(result, row)
	}
	return result, nil
}

func (r *ContentRepository) GetBySection(ctx context.Context, section string) (*contentdomain.SiteContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[section]
	if !ok {
		return nil, contentdomain.ErrSectionNotFound
	}
	return &row, nil
}

func (r *ContentRepository) Upsert(ctx context.Context, row *contentdomain.SiteContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[row.Section] = *row
	return nil
}

func (r *ContentRepository) DeleteBySection(ctx context.Context, section string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[section]; !ok {
		return false, nil
	}
	delete(r.rows, section)
	return true, nil
}
