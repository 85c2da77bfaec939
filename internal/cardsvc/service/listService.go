package service

import (
	"context"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/collectyourcards/card-services/internal/cardsvc/store"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
)

type ListService struct {
	store *store.ListStore
}

func NewListService(store *store.ListStore) *ListService {
	return &ListService{store: store}
}

// BrowseList resolves a user's list by slug and derives the requested
// table view over its cards. Returns a nil list when the slug is
// unknown.
func (s *ListService) BrowseList(ctx context.Context, userId int64, slug string, p table.Params) (*models.List, table.Result, error) {
	list, err := s.store.GetBySlug(ctx, userId, slug)
	if err != nil || list == nil {
		return nil, table.Result{}, err
	}
	rows, err := s.store.ListCards(ctx, list.ID, table.FullLoadCap)
	if err != nil {
		return nil, table.Result{}, err
	}
	p.Mode = table.ViewList
	return list, table.BuildView(rows, p), nil
}

// RemoveCard takes a card off the user's list.
func (s *ListService) RemoveCard(ctx context.Context, userId int64, slug string, cardId int64) error {
	list, err := s.store.GetBySlug(ctx, userId, slug)
	if err != nil {
		return err
	}
	if list == nil {
		return ErrNotFound
	}
	return s.store.RemoveCard(ctx, list.ID, cardId)
}
