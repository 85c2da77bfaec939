package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListStore struct {
	db    *pgxpool.Pool
	cards *CardStore
}

func NewListStore(db *pgxpool.Pool, cards *CardStore) *ListStore {
	return &ListStore{db: db, cards: cards}
}

// GetBySlug returns a user's list by slug, nil when unknown.
func (s *ListStore) GetBySlug(ctx context.Context, userId int64, slug string) (*models.List, error) {
	var list models.List
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, slug, created_at, updated_at
		FROM lists
		WHERE user_id = $1 AND slug = $2
		LIMIT 1
	`, userId, slug).Scan(
		&list.ID,
		&list.UserId,
		&list.Name,
		&list.Slug,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get list %s: %w", slug, err)
	}
	return &list, nil
}

// ListCards returns the cards on a list in list order, with owned
// details when the owner also has the card in their collection.
func (s *ListStore) ListCards(ctx context.Context, listId int64, limit int) ([]models.CardRow, error) {
	query := `
		SELECT c.id, c.card_number,
		       c.is_rookie, c.is_autograph, c.is_relic, c.is_short_print,
		       c.print_run,
		       s.id, s.name, s.slug, s.set_name, s.year, COALESCE(s.production_code, ''),
		       col.name, col.hex_color
		FROM list_cards lc
		JOIN cards c ON c.id = lc.card_id
		JOIN series s ON s.id = c.series_id
		LEFT JOIN colors col ON col.id = c.color_id
		WHERE lc.list_id = $1
		ORDER BY lc.sort_order
		LIMIT $2
	`

	pgRows, err := s.db.Query(ctx, query, listId, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for list %d: %w", listId, err)
	}
	defer pgRows.Close()

	var rows []models.CardRow
	byID := make(map[int64]int)
	for pgRows.Next() {
		row, err := scanCard(pgRows)
		if err != nil {
			return nil, err
		}
		byID[row.ID] = len(rows)
		rows = append(rows, row)
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list cards: %w", err)
	}

	if err := s.cards.attachPlayerTeams(ctx, rows, byID); err != nil {
		return nil, err
	}
	return rows, nil
}

// RemoveCard takes a card off a list.
func (s *ListStore) RemoveCard(ctx context.Context, listId, cardId int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM list_cards WHERE list_id = $1 AND card_id = $2`, listId, cardId)
	if err != nil {
		return fmt.Errorf("could not remove card %d from list %d: %w", cardId, listId, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
