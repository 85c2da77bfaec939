package service

import (
	"context"

	"github.com/collectyourcards/card-services/internal/cardsvc/store"
	"github.com/collectyourcards/card-services/internal/cardsvc/table"
	log "github.com/sirupsen/logrus"
)

type PreferenceService struct {
	store *store.PreferenceStore
}

func NewPreferenceService(store *store.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// VisibleColumns returns the user's stored visible-column set for a
// table, sanitized against the registry. Storage failures fall back
// silently to the registry defaults; a missing preference is not an
// error.
func (s *PreferenceService) VisibleColumns(ctx context.Context, userId int64, tableName string, mode table.ViewMode) []table.ColumnID {
	pref, err := s.store.GetPreference(ctx, userId, tableName)
	if err != nil {
		log.Errorf("Error [PreferenceStore.GetPreference] %s", err)
		return table.DefaultVisible(mode)
	}
	if pref == nil {
		return table.DefaultVisible(mode)
	}
	return table.SanitizeVisible(pref.VisibleColumns, mode)
}

// SaveVisibleColumns persists a sanitized visible-column set.
func (s *PreferenceService) SaveVisibleColumns(ctx context.Context, userId int64, tableName string, mode table.ViewMode, columns []string) ([]table.ColumnID, error) {
	sanitized := table.SanitizeVisible(columns, mode)
	stored := make([]string, len(sanitized))
	for i, id := range sanitized {
		stored[i] = string(id)
	}
	if err := s.store.SavePreference(ctx, userId, tableName, stored); err != nil {
		return nil, err
	}
	return sanitized, nil
}
