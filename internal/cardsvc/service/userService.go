package service

import (
	"context"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/collectyourcards/card-services/internal/cardsvc/store"
)

type UserService struct {
	store *store.UserStore
}

func NewUserService(store *store.UserStore) *UserService {
	return &UserService{store: store}
}

// GetOrCreateUser resolves a user by id, creating the record on first
// sight.
func (s *UserService) GetOrCreateUser(ctx context.Context, info models.User) (*models.User, error) {
	user, err := s.store.GetByID(ctx, info.UserId)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	if _, err := s.store.CreateUser(ctx, info); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, info.UserId)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetByID(ctx, id)
}
