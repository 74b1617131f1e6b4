package content

import "context"

type Repository interface {
	List(ctx context.Context) ([]SiteContent, error)
	GetBySection(ctx context.Context, section string) (*SiteContent, error)
	// Upsert replaces the single row for row.Section, inserting when absent.
	Upsert(ctx context.Context, row *SiteContent) error
	DeleteBySection(ctx context.Context, section string) (bool, error)
}
