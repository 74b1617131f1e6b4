package news

import "time"

type NewsItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null;default:''" json:"content"`
	ImageURL  *string   `gorm:"column:image_url" json:"image_url"`
}

func (NewsItem) TableName() string {
	return "news"
}

type CreateNewsInput struct {
	Title    string
	Content  string
	ImageURL *string
}

type UpdateNewsInput struct {
	ID       string
	Title    *string
	Content  *string
	ImageURL *string
}
