package teams

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	ListTeams(ctx context.Context) ([]Team, error)
	GetTeamByID(ctx context.Context, id string) (*Team, error)
	CreateTeam(ctx context.Context, team *Team) error
	UpdateTeam(ctx context.Context, team *Team) error
	DeleteTeam(ctx context.Context, id string) (bool, error)

	ListMembers(ctx context.Context) ([]TeamMember, error)
	GetMemberByID(ctx context.Context, id string) (*TeamMember, error)
	CreateMember(ctx context.Context, member *TeamMember) error
	UpdateMember(ctx context.Context, member *TeamMember) error
	DeleteMember(ctx context.Context, id string) (bool, error)
	DeleteMembersByTeam(ctx context.Context, teamID string) error
}
