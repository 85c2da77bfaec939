package service

import (
	"context"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/collectyourcards/card-services/internal/cardsvc/store"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
)

type CollectionService struct {
	store *store.CollectionStore
}

func NewCollectionService(store *store.CollectionStore) *CollectionService {
	return &CollectionService{store: store}
}

// BrowseCollection loads a user's owned cards and derives the
// requested table view.
func (s *CollectionService) BrowseCollection(ctx context.Context, userId int64, p table.Params) (table.Result, error) {
	rows, err := s.store.ListUserCards(ctx, userId, table.FullLoadCap)
	if err != nil {
		return table.Result{}, err
	}
	p.Mode = table.ViewCollection
	return table.BuildView(rows, p), nil
}

func (s *CollectionService) AddCard(ctx context.Context, userId, cardId int64, od models.OwnedDetails) (int64, error) {
	return s.store.AddCard(ctx, userId, cardId, od)
}

func (s *CollectionService) UpdateCard(ctx context.Context, userId, userCardId int64, od models.OwnedDetails) error {
	return s.store.UpdateCard(ctx, userId, userCardId, od)
}

func (s *CollectionService) DeleteCard(ctx context.Context, userId, userCardId int64) error {
	return s.store.DeleteCard(ctx, userId, userCardId)
}

func (s *CollectionService) ToggleFavorite(ctx context.Context, userId, userCardId int64) (bool, error) {
	return s.store.ToggleFavorite(ctx, userId, userCardId)
}

func (s *CollectionService) GetUserCard(ctx context.Context, userId, userCardId int64) (*models.CardRow, error) {
	return s.store.GetUserCard(ctx, userId, userCardId)
}
