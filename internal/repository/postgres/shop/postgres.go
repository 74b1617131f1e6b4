package shop

import (
	"context"
	"errors"

	shopdomain "club-site-go/internal/domain/shop"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]shopdomain.Product, error) {
	var products []shopdomain.Product
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*shopdomain.Product, error) {
	var product shopdomain.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shopdomain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *shopdomain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *PostgresRepository) Update(ctx context.Context, product *shopdomain.Product) error {
	return r.db.WithContext(ctx).
		Model(&shopdomain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"description": product.Description,
			"image_url":   product.ImageURL,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&shopdomain.Product{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
