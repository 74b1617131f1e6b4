package teams

import "time"

type Team struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null;default:''" json:"category"`
	Description string    `gorm:"not null;default:''" json:"description"`
	Coaches     *string   `json:"coaches"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
}

func (Team) TableName() string {
	return "teams"
}

type TeamMember struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	TeamID    string    `gorm:"type:uuid;index;not null" json:"team_id"`
	Name      string    `gorm:"not null" json:"name"`
	Number    string    `gorm:"not null;default:''" json:"number"`
	Position  string    `gorm:"not null;default:''" json:"position"`
	ImageURL  *string   `gorm:"column:image_url" json:"image_url"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

type CreateTeamInput struct {
	Name        string
	Category    string
	Description string
	Coaches     *string
	ImageURL    *string
}

type UpdateTeamInput struct {
	ID          string
	Name        *string
	Category    *string
	Description *string
	Coaches     *string
	ImageURL    *string
}

type CreateMemberInput struct {
	TeamID   string
	Name     string
	Number   string
	Position string
	ImageURL *string
}

type UpdateMemberInput struct {
	ID       string
	TeamID   *string
	Name     *string
	Number   *string
	Position *string
	ImageURL *string
}
