package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teamforge/teamforge/internal/domain"
	"github.com/teamforge/teamforge/internal/repository"
)

// duplicateKeyErr mimics the driver error a violated unique index produces.
func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

type fakeUserStore struct {
	users map[string]*domain.User // keyed by userName
	err   error                   // forced failure for every call
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.UserName]; ok {
		return duplicateKeyErr()
	}
	for _, u := range f.users {
		if u.EmailID == user.EmailID {
			return duplicateKeyErr()
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.UserName] = &cp
	return nil
}

func (f *fakeUserStore) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetMemberInfo(_ context.Context, names []string) ([]domain.MemberInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	infos := make([]domain.MemberInfo, 0, len(names))
	for _, name := range names {
		if u, ok := f.users[name]; ok {
			infos = append(infos, domain.MemberInfo{UserName: u.UserName, EmailID: u.EmailID})
		}
	}
	return infos, nil
}

type fakeTeamStore struct {
	teams map[string]*domain.Team // keyed by name
	err   error
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: make(map[string]*domain.Team)}
}

func (f *fakeTeamStore) Create(_ context.Context, team *domain.Team) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.teams[team.Name]; ok {
		return duplicateKeyErr()
	}
	team.ID = primitive.NewObjectID()
	cp := *team
	cp.Members = append([]string(nil), team.Members...)
	f.teams[team.Name] = &cp
	return nil
}

func (f *fakeTeamStore) GetByName(_ context.Context, name string) (*domain.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.teams[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	cp.Members = append([]string(nil), t.Members...)
	return &cp, nil
}

func (f *fakeTeamStore) ListNames(_ context.Context) ([]domain.TeamName, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]domain.TeamName, 0, len(f.teams))
	for name := range f.teams {
		names = append(names, domain.TeamName{Name: name})
	}
	return names, nil
}

func (f *fakeTeamStore) Save(_ context.Context, team *domain.Team) error {
	if f.err != nil {
		return f.err
	}
	for name, t := range f.teams {
		if t.ID == team.ID {
			cp := *team
			cp.Members = append([]string(nil), team.Members...)
			f.teams[name] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}
