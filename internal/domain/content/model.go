package content

import "time"

// SiteContent is the key-value override table for the public sections:
// one row per well-known section key, replacing that section's hard-coded
// title/subtitle/background when present.
type SiteContent struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Section   string    `gorm:"not null;uniqueIndex" json:"section"`
	Title     string    `gorm:"not null;default:''" json:"title"`
	Subtitle  string    `gorm:"not null;default:''" json:"subtitle"`
	ImageURL  *string   `gorm:"column:image_url" json:"image_url"`
}

func (SiteContent) TableName() string {
	return "site_content"
}

type UpsertInput struct {
	Section  string
	Title    string
	Subtitle string
	// ImageURL nil keeps whatever image the section already has.
	ImageURL *string
}
