package service

import (
	"context"

	"github.com/teamforge/teamforge/internal/domain"
)

// UserStore is the user-collection surface services depend on.
// Implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetMemberInfo(ctx context.Context, names []string) ([]domain.MemberInfo, error)
}

// TeamStore is the team-collection surface services depend on.
// Implemented by repository.TeamRepository.
type TeamStore interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	ListNames(ctx context.Context) ([]domain.TeamName, error)
	Save(ctx context.Context, team *domain.Team) error
}
