package content

import (
	"context"
	"errors"

	contentdomain "club-site-go/internal/domain/content"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]contentdomain.SiteContent, error) {
	var rows []contentdomain.SiteContent
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) GetBySection(ctx context.Context, section string) (*contentdomain.SiteContent, error) {
	var row contentdomain.SiteContent
	if err := r.db.WithContext(ctx).Where("section = ?", section).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contentdomain.ErrSectionNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Upsert relies on the unique index on section: one row per key, replaced
// in place on conflict.
func (r *PostgresRepository) Upsert(ctx context.Context, row *contentdomain.SiteContent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "subtitle", "image_url"}),
		}).
		Create(row).Error
}

func (r *PostgresRepository) DeleteBySection(ctx context.Context, section string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&contentdomain.SiteContent{}, "section = ?", section)
	return result.RowsAffected > 0, result.Error
}
