package teams

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListTeams(ctx context.Context) ([]Team, error) {
	return s.repo.ListTeams(ctx)
}

func (s *Service) GetTeamByID(ctx context.Context, id string) (*Team, error) {
	return s.repo.GetTeamByID(ctx, id)
}

func (s *Service) CreateTeam(ctx context.Context, input CreateTeamInput) (*Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	team := Team{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Coaches:     input.Coaches,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.CreateTeam(ctx, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Service) UpdateTeam(ctx context.Context, input UpdateTeamInput) (*Team, error) {
	team, err := s.repo.GetTeamByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("name is required")
		}
		team.Name = trimmed
	}
	if input.Category != nil {
		team.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		team.Description = *input.Description
	}
	if input.Coaches != nil {
		team.Coaches = input.Coaches
	}
	if input.ImageURL != nil {
		team.ImageURL = input.ImageURL
	}

	if err := s.repo.UpdateTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes a team and its roster in one transaction so deleting
// a team never leaves orphaned members behind.
func (s *Service) DeleteTeam(ctx context.Context, id string) error {
	if _, err := s.repo.GetTeamByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.DeleteMembersByTeam(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteTeam(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrTeamNotFound
		}
		return nil
	})
}

// ListMembers returns all members sorted by name with Portuguese collation,
// the order the public roster sections display.
func (s *Service) ListMembers(ctx context.Context) ([]TeamMember, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	SortMembersByName(members)
	return members, nil
}

// Roster returns the members of one team at request time, keeping the
// relative order of the input collection.
func (s *Service) Roster(ctx context.Context, teamID string) ([]TeamMember, error) {
	if _, err := s.repo.GetTeamByID(ctx, teamID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRoster(members, teamID), nil
}

func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := s.repo.GetTeamByID(ctx, input.TeamID); err != nil {
		return nil, err
	}

	member := TeamMember{
		ID:       uuid.NewString(),
		TeamID:   input.TeamID,
		Name:     name,
		Number:   strings.TrimSpace(input.Number),
		Position: strings.TrimSpace(input.Position),
		ImageURL: input.ImageURL,
	}

	if err := s.repo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, input UpdateMemberInput) (*TeamMember, error) {
	member, err := s.repo.GetMemberByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.TeamID != nil {
		if _, err := s.repo.GetTeamByID(ctx, *input.TeamID); err != nil {
			return nil, err
		}
		member.TeamID = *input.TeamID
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("name is required")
		}
		member.Name = trimmed
	}
	if input.Number != nil {
		member.Number = strings.TrimSpace(*input.Number)
	}
	if input.Position != nil {
		member.Position = strings.TrimSpace(*input.Position)
	}
	if input.ImageURL != nil {
		member.ImageURL = input.ImageURL
	}

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}

// FilterRoster keeps members of one team, preserving input order.
func FilterRoster(members []TeamMember, teamID string) []TeamMember {
	roster := make([]TeamMember, 0)
	for _, member := range members {
		if member.TeamID == teamID {
			roster = append(roster, member)
		}
	}
	return roster
}

// SortMembersByName sorts in place using Portuguese collation.
func SortMembersByName(members []TeamMember) {
	// collate.Collator is not safe for concurrent use; build one per call.
	collator := collate.New(language.Portuguese, collate.IgnoreCase)
	sort.SliceStable(members, func(i, j int) bool {
		return collator.CompareString(members[i].Name, members[j].Name) < 0
	})
}
