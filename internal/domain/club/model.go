// Package club holds the display-only directory entities of the public
// site: partners, photo gallery and the organization chart.
package club

import "time"

type Partner struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	Name       string    `gorm:"not null" json:"name"`
	WebsiteURL string    `gorm:"not null;default:''" json:"website_url"`
	LogoURL    *string   `gorm:"column:logo_url" json:"logo_url"`
}

func (Partner) TableName() string {
	return "partners"
}

type GalleryItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Title     *string   `json:"title"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"image_url"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}

type OrganizationMember struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"not null;default:''" json:"role"`
	ImageURL  *string   `gorm:"column:image_url" json:"image_url"`
}

func (OrganizationMember) TableName() string {
	return "organization"
}

type CreatePartnerInput struct {
	Name       string
	WebsiteURL string
	LogoURL    *string
}

type UpdatePartnerInput struct {
	ID         string
	Name       *string
	WebsiteURL *string
	LogoURL    *string
}

type CreateGalleryItemInput struct {
	Title    *string
	ImageURL string
}

type UpdateGalleryItemInput struct {
	ID       string
	Title    *string
	ImageURL *string
}

type CreateOrganizationMemberInput struct {
	Name     string
	Role     string
	ImageURL *string
}

type UpdateOrganizationMemberInput struct {
	ID       string
	Name     *string
	Role     *string
	ImageURL *string
}
