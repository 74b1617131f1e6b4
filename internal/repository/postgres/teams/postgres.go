package teams

import (
	"context"
	"errors"

	teamsdomain "club-site-go/internal/domain/teams"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(teamsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListTeams(ctx context.Context) ([]teamsdomain.Team, error) {
	var teams []teamsdomain.Team
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *PostgresRepository) GetTeamByID(ctx context.Context, id string) (*teamsdomain.Team, error) {
	var team teamsdomain.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamsdomain.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *PostgresRepository) CreateTeam(ctx context.Context, team *teamsdomain.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *PostgresRepository) UpdateTeam(ctx context.Context, team *teamsdomain.Team) error {
	return r.db.WithContext(ctx).
		Model(&teamsdomain.Team{}).
		Where("id = ?", team.ID).
		Updates(map[string]interface{}{
			"name":        team.Name,
			"category":    team.Category,
			"description": team.Description,
			"coaches":     team.Coaches,
			"image_url":   team.ImageURL,
		}).Error
}

func (r *PostgresRepository) DeleteTeam(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&teamsdomain.Team{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListMembers(ctx context.Context) ([]teamsdomain.TeamMember, error) {
	var members []teamsdomain.TeamMember
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, id string) (*teamsdomain.TeamMember, error) {
	var member teamsdomain.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamsdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *teamsdomain.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *teamsdomain.TeamMember) error {
	return r.db.WithContext(ctx).
		Model(&teamsdomain.TeamMember{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"team_id":   member.TeamID,
			"name":      member.Name,
			"number":    member.Number,
			"position":  member.Position,
			"image_url": member.ImageURL,
		}).Error
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&teamsdomain.TeamMember{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteMembersByTeam(ctx context.Context, teamID string) error {
	return r.db.WithContext(ctx).Delete(&teamsdomain.TeamMember{}, "team_id = ?", teamID).Error
}
