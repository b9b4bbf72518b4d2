package handler

import (
	"context"

	"github.com/teamforge/teamforge/internal/domain"
	"github.com/teamforge/teamforge/internal/service"
)

// AuthServiceInterface defines the interface for signup and login.
type AuthServiceInterface interface {
	Signup(ctx context.Context, in service.SignupInput) error
	Login(ctx context.Context, userName, password string) (string, error)
}

// TeamServiceInterface defines the interface for team operations.
type TeamServiceInterface interface {
	Create(ctx context.Context, name, creator string) (*domain.Team, error)
	ListNames(ctx context.Context) ([]domain.TeamName, error)
	AddMember(ctx context.Context, teamName, userName string) (*domain.Team, error)
	RemoveMember(ctx context.Context, teamName, userName string) (*domain.Team, error)
	IsMember(ctx context.Context, teamName, userName string) (bool, error)
	Detail(ctx context.Context, teamName string) (*domain.TeamDetail, error)
}
