package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferenceStore struct {
	db *pgxpool.Pool
}

func NewPreferenceStore(db *pgxpool.Pool) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// GetPreference returns the stored visible-column set for one user and
// table, nil when none was ever saved.
func (s *PreferenceStore) GetPreference(ctx context.Context, userId int64, tableName string) (*models.TablePreference, error) {
	query := `
		SELECT user_id, table_name, visible_columns, updated_at
		FROM user_table_preferences
		WHERE user_id = $1 AND table_name = $2
		LIMIT 1
	`

	var pref models.TablePreference
	err := s.db.QueryRow(ctx, query, userId, tableName).Scan(
		&pref.UserId,
		&pref.TableName,
		&pref.VisibleColumns,
		&pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get table preference: %w", err)
	}

	return &pref, nil
}

// SavePreference upserts the visible-column set for one user and table.
func (s *PreferenceStore) SavePreference(ctx context.Context, userId int64, tableName string, visible []string) error {
	query := `
		INSERT INTO user_table_preferences (user_id, table_name, visible_columns, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, table_name)
		DO UPDATE SET visible_columns = $3, updated_at = now()
	`

	_, err := s.db.Exec(ctx, query, userId, tableName, visible)
	if err != nil {
		return fmt.Errorf("failed to save table preference: %w", err)
	}
	return nil
}
