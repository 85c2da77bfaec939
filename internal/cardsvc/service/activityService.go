package service

import (
	"context"

	"github.com/collectyourcards/card-services/internal/cardsvc/store"
	"github.com/collectyourcards/card-services/internal/comm"
)

type ActivityService struct {
	store *store.ActivityStore
}

func NewActivityService(store *store.ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

func (s *ActivityService) Record(ctx context.Context, a comm.CollectionActivity) error {
	return s.store.Insert(ctx, a)
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]comm.CollectionActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.store.Recent(ctx, limit)
}
