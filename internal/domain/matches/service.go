package matches

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{repo: repo, clock: clock}
}

// List returns the full calendar ordered by date ascending.
func (s *Service) List(ctx context.Context) ([]Match, error) {
	return s.repo.List(ctx)
}

// Schedule partitions the calendar against the current wall clock. A match
// flips from upcoming to past exactly at its stored timestamp.
func (s *Service) Schedule(ctx context.Context) (upcoming, past []Match, err error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	upcoming, past = Partition(list, s.clock.Now())
	return upcoming, past, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Match, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateMatchInput) (*Match, error) {
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	home := strings.TrimSpace(input.HomeTeam)
	guest := strings.TrimSpace(input.GuestTeam)
	if home == "" || guest == "" {
		return nil, fmt.Errorf("home_team and guest_team are required")
	}

	match := Match{
		ID:         uuid.NewString(),
		Date:       input.Date,
		HomeTeam:   home,
		GuestTeam:  guest,
		Location:   strings.TrimSpace(input.Location),
		Category:   strings.TrimSpace(input.Category),
		ScoreHome:  input.ScoreHome,
		ScoreGuest: input.ScoreGuest,
	}

	if err := s.repo.Create(ctx, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Service) Update(ctx context.Context, input UpdateMatchInput) (*Match, error) {
	match, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, fmt.Errorf("date is required")
		}
		match.Date = *input.Date
	}
	if input.HomeTeam != nil {
		trimmed := strings.TrimSpace(*input.HomeTeam)
		if trimmed == "" {
			return nil, fmt.Errorf("home_team is required")
		}
		match.HomeTeam = trimmed
	}
	if input.GuestTeam != nil {
		trimmed := strings.TrimSpace(*input.GuestTeam)
		if trimmed == "" {
			return nil, fmt.Errorf("guest_team is required")
		}
		match.GuestTeam = trimmed
	}
	if input.Location != nil {
		match.Location = strings.TrimSpace(*input.Location)
	}
	if input.Category != nil {
		match.Category = strings.TrimSpace(*input.Category)
	}
	if input.ScoreHome != nil {
		match.ScoreHome = input.ScoreHome
	}
	if input.ScoreGuest != nil {
		match.ScoreGuest = input.ScoreGuest
	}

	if err := s.repo.Update(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMatchNotFound
	}
	return nil
}
