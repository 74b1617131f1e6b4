package club

import (
	"context"
	"errors"

	clubdomain "club-site-go/internal/domain/club"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPartners(ctx context.Context) ([]clubdomain.Partner, error) {
	var partners []clubdomain.Partner
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *PostgresRepository) GetPartnerByID(ctx context.Context, id string) (*clubdomain.Partner, error) {
	var partner clubdomain.Partner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *PostgresRepository) CreatePartner(ctx context.Context, partner *clubdomain.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *PostgresRepository) UpdatePartner(ctx context.Context, partner *clubdomain.Partner) error {
	return r.db.WithContext(ctx).
		Model(&clubdomain.Partner{}).
		Where("id = ?", partner.ID).
		Updates(map[string]interface{}{
			"name":        partner.Name,
			"website_url": partner.WebsiteURL,
			"logo_url":    partner.LogoURL,
		}).Error
}

func (r *PostgresRepository) DeletePartner(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clubdomain.Partner{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListGallery(ctx context.Context) ([]clubdomain.GalleryItem, error) {
	var items []clubdomain.GalleryItem
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetGalleryItemByID(ctx context.Context, id string) (*clubdomain.GalleryItem, error) {
	var item clubdomain.GalleryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateGalleryItem(ctx context.Context, item *clubdomain.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *PostgresRepository) UpdateGalleryItem(ctx context.Context, item *clubdomain.GalleryItem) error {
	return r.db.WithContext(ctx).
		Model(&clubdomain.GalleryItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":     item.Title,
			"image_url": item.ImageURL,
		}).Error
}

func (r *PostgresRepository) DeleteGalleryItem(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clubdomain.GalleryItem{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListOrganization(ctx context.Context) ([]clubdomain.OrganizationMember, error) {
	var members []clubdomain.OrganizationMember
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetOrganizationMemberByID(ctx context.Context, id string) (*clubdomain.OrganizationMember, error) {
	var member clubdomain.OrganizationMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrOrganizationMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateOrganizationMember(ctx context.Context, member *clubdomain.OrganizationMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) UpdateOrganizationMember(ctx context.Context, member *clubdomain.OrganizationMember) error {
	return r.db.WithContext(ctx).
		Model(&clubdomain.OrganizationMember{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"name":      member.Name,
			"role":      member.Role,
			"image_url": member.ImageURL,
		}).Error
}

func (r *PostgresRepository) DeleteOrganizationMember(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clubdomain.OrganizationMember{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
