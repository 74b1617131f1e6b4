package matches

import (
	"context"
	"errors"

	matchesdomain "club-site-go/internal/domain/matches"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]matchesdomain.Match, error) {
	var list []matchesdomain.Match
	if err := r.db.WithContext(ctx).
		Order("date asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*matchesdomain.Match, error) {
	var match matchesdomain.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchesdomain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *PostgresRepository) Create(ctx context.Context, match *matchesdomain.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *PostgresRepository) Update(ctx context.Context, match *matchesdomain.Match) error {
	return r.db.WithContext(ctx).
		Model(&matchesdomain.Match{}).
		Where("id = ?", match.ID).
		Updates(map[string]interface{}{
			"date":        match.Date,
			"home_team":   match.HomeTeam,
			"guest_team":  match.GuestTeam,
			"location":    match.Location,
			"category":    match.Category,
			"score_home":  match.ScoreHome,
			"score_guest": match.ScoreGuest,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&matchesdomain.Match{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
