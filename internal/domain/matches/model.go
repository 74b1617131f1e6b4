package matches

import "time"

type Match struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	HomeTeam   string    `gorm:"not null" json:"home_team"`
	GuestTeam  string    `gorm:"not null" json:"guest_team"`
	Location   string    `gorm:"not null;default:''" json:"location"`
	Category   string    `gorm:"not null;default:''" json:"category"`
	ScoreHome  *int      `json:"score_home"`
	ScoreGuest *int      `json:"score_guest"`
}

func (Match) TableName() string {
	return "matches"
}

// Played reports whether a final score has been recorded.
func (m Match) Played() bool {
	return m.ScoreHome != nil && m.ScoreGuest != nil
}

type CreateMatchInput struct {
	Date       time.Time
	HomeTeam   string
	GuestTeam  string
	Location   string
	Category   string
	ScoreHome  *int
	ScoreGuest *int
}

type UpdateMatchInput struct {
	ID         string
	Date       *time.Time
	HomeTeam   *string
	GuestTeam  *string
	Location   *string
	Category   *string
	ScoreHome  *int
	ScoreGuest *int
}
