package shop

import "time"

type Product struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Description string    `gorm:"not null;default:''" json:"description"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
}

func (Product) TableName() string {
	return "products"
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	ImageURL    *string
}

type UpdateProductInput struct {
	ID          string
	Name        *string
	Price       *float64
	Description *string
	ImageURL    *string
}
