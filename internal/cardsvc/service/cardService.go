package service

import (
	"context"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/collectyourcards/card-services/internal/cardsvc/store"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
)

type CardService struct {
	store *store.CardStore
}

func NewCardService(store *store.CardStore) *CardService {
	return &CardService{store: store}
}

// BrowseCards loads the catalog projection and derives the requested
// table view from it.
func (s *CardService) BrowseCards(ctx context.Context, p table.Params) (table.Result, error) {
	rows, err := s.store.ListCards(ctx, table.FullLoadCap)
	if err != nil {
		return table.Result{}, err
	}
	p.Mode = table.ViewCatalog
	return table.BuildView(rows, p), nil
}

func (s *CardService) GetCard(ctx context.Context, id int64) (*models.CardRow, error) {
	return s.store.GetCard(ctx, id)
}
