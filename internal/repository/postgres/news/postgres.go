package news

import (
	"context"
	"errors"

	newsdomain "club-site-go/internal/domain/news"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]newsdomain.NewsItem, error) {
	var items []newsdomain.NewsItem
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*newsdomain.NewsItem, error) {
	var item newsdomain.NewsItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newsdomain.ErrNewsNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *newsdomain.NewsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *PostgresRepository) Update(ctx context.Context, item *newsdomain.NewsItem) error {
	return r.db.WithContext(ctx).
		Model(&newsdomain.NewsItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":     item.Title,
			"content":   item.Content,
			"image_url": item.ImageURL,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&newsdomain.NewsItem{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
