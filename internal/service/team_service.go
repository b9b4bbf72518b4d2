package service

import (
	"context"
	"errors"

	"github.com/teamforge/teamforge/internal/domain"
	"github.com/teamforge/teamforge/internal/repository"
)

// TeamService handles team business logic.
type TeamService struct {
	teams TeamStore
	users UserStore
}

// NewTeamService creates a new team service.
func NewTeamService(teams TeamStore, users UserStore) *TeamService {
	return &TeamService{teams: teams, users: users}
}

// Create stores a new team with the creator as its sole initial member.
func (s *TeamService) Create(ctx context.Context, name, creator string) (*domain.Team, error) {
	team := &domain.Team{
		Name:    name,
		Members: []string{creator},
		Creator: creator,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// ListNames returns the names of all teams. Unpaginated by design.
func (s *TeamService) ListNames(ctx context.Context) ([]domain.TeamName, error) {
	return s.teams.ListNames(ctx)
}

// AddMember adds a registered user to the team. The user must exist
// and must not already be a member.
func (s *TeamService) AddMember(ctx context.Context, teamName, userName string) (*domain.Team, error) {
	team, err := s.getTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUserName(ctx, userName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotRegistered
		}
		return nil, err
	}

	if team.HasMember(userName) {
		return nil, ErrAlreadyMember
	}

	team.Members = append(team.Members, userName)
	if err := s.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// RemoveMember removes a current member from the team. Unlike AddMember
// it does not check the user is still registered, so usernames that went
// stale can still be removed.
func (s *TeamService) RemoveMember(ctx context.Context, teamName, userName string) (*domain.Team, error) {
	team, err := s.getTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}

	if !team.HasMember(userName) {
		return nil, ErrNotAMember
	}

	members := make([]string, 0, len(team.Members)-1)
	for _, m := range team.Members {
		if m != userName {
			members = append(members, m)
		}
	}
	team.Members = members

	if err := s.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// IsMember reports whether userName is currently a member of the team.
func (s *TeamService) IsMember(ctx context.Context, teamName, userName string) (bool, error) {
	team, err := s.getTeam(ctx, teamName)
	if err != nil {
		return false, err
	}
	return team.HasMember(userName), nil
}

// Detail returns the team with its members expanded to
// {userName, emailId} records.
func (s *TeamService) Detail(ctx context.Context, teamName string) (*domain.TeamDetail, error) {
	team, err := s.getTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}

	members, err := s.users.GetMemberInfo(ctx, team.Members)
	if err != nil {
		return nil, err
	}

	return &domain.TeamDetail{
		ID:      team.ID,
		Name:    team.Name,
		Members: members,
	}, nil
}

func (s *TeamService) getTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.teams.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}
