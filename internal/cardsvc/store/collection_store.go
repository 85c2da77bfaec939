package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/collectyourcards/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollectionStore struct {
	db    *pgxpool.Pool
	cards *CardStore
}

func NewCollectionStore(db *pgxpool.Pool, cards *CardStore) *CollectionStore {
	return &CollectionStore{db: db, cards: cards}
}

const ownedColumns = `
	uc.id, uc.serial_number, uc.purchase_price, uc.estimated_value,
	uc.current_value, COALESCE(uc.location_name, ''), COALESCE(uc.grade, ''),
	COALESCE(uc.grading_agency, ''), uc.is_favorite, COALESCE(uc.notes, ''),
	uc.owned_count`

// ListUserCards returns the collection projection for one user,
// capped. Each row carries the catalog card plus owned details.
func (s *CollectionStore) ListUserCards(ctx context.Context, userId int64, limit int) ([]models.CardRow, error) {
	query := `
		SELECT c.id, c.card_number,
		       c.is_rookie, c.is_autograph, c.is_relic, c.is_short_print,
		       c.print_run,
		       s.id, s.name, s.slug, s.set_name, s.year, COALESCE(s.production_code, ''),
		       col.name, col.hex_color,` + ownedColumns + `
		FROM user_cards uc
		JOIN cards c ON c.id = uc.card_id
		JOIN series s ON s.id = c.series_id
		LEFT JOIN colors col ON col.id = c.color_id
		WHERE uc.user_id = $1
		ORDER BY s.name, c.card_number
		LIMIT $2
	`

	pgRows, err := s.db.Query(ctx, query, userId, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list user cards: %w", err)
	}
	defer pgRows.Close()

	var rows []models.CardRow
	byID := make(map[int64]int)
	for pgRows.Next() {
		row, err := scanOwnedCard(pgRows)
		if err != nil {
			return nil, err
		}
		// collection rows key on the catalog id for relation loading
		if _, seen := byID[row.ID]; !seen {
			byID[row.ID] = len(rows)
		}
		rows = append(rows, row)
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user cards: %w", err)
	}

	if err := s.cards.attachPlayerTeams(ctx, rows, byID); err != nil {
		return nil, err
	}
	copyRelationsForDuplicates(rows)

	return rows, nil
}

// GetUserCard returns one owned card, nil when the user does not own
// that row.
func (s *CollectionStore) GetUserCard(ctx context.Context, userId, userCardId int64) (*models.CardRow, error) {
	query := `
		SELECT c.id, c.card_number,
		       c.is_rookie, c.is_autograph, c.is_relic, c.is_short_print,
		       c.print_run,
		       s.id, s.name, s.slug, s.set_name, s.year, COALESCE(s.production_code, ''),
		       col.name, col.hex_color,` + ownedColumns + `
		FROM user_cards uc
		JOIN cards c ON c.id = uc.card_id
		JOIN series s ON s.id = c.series_id
		LEFT JOIN colors col ON col.id = c.color_id
		WHERE uc.user_id = $1 AND uc.id = $2
		LIMIT 1
	`

	pgRows, err := s.db.Query(ctx, query, userId, userCardId)
	if err != nil {
		return nil, fmt.Errorf("failed to get user card %d: %w", userCardId, err)
	}
	defer pgRows.Close()

	if !pgRows.Next() {
		if err := pgRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get user card %d: %w", userCardId, err)
		}
		return nil, nil
	}
	row, err := scanOwnedCard(pgRows)
	if err != nil {
		return nil, err
	}
	pgRows.Close()

	rows := []models.CardRow{row}
	if err := s.cards.attachPlayerTeams(ctx, rows, map[int64]int{row.ID: 0}); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// AddCard inserts a card into a user's collection and returns the new
// user-card id. An existing row for the same card bumps owned_count
// instead.
func (s *CollectionStore) AddCard(ctx context.Context, userId, cardId int64, od models.OwnedDetails) (int64, error) {
	var userCardId int64

	query := `
		INSERT INTO user_cards
			(user_id, card_id, serial_number, purchase_price, estimated_value,
			 current_value, location_name, grade, grading_agency, notes, owned_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, GREATEST($11, 1))
		ON CONFLICT (user_id, card_id, serial_number)
		DO UPDATE SET owned_count = user_cards.owned_count + 1, updated_at = now()
		RETURNING id;
	`

	err := s.db.QueryRow(ctx, query,
		userId, cardId, od.SerialNumber, od.PurchasePrice, od.EstimatedValue,
		od.CurrentValue, od.LocationName, od.Grade, od.GradingAgency, od.Notes,
		od.OwnedCount,
	).Scan(&userCardId)
	if err != nil {
		return 0, fmt.Errorf("could not add card to collection: %w", err)
	}

	return userCardId, nil
}

// UpdateCard edits the owned fields of one user card.
func (s *CollectionStore) UpdateCard(ctx context.Context, userId, userCardId int64, od models.OwnedDetails) error {
	query := `
		UPDATE user_cards
		SET serial_number = $3, purchase_price = $4, estimated_value = $5,
		    current_value = $6, location_name = $7, grade = $8,
		    grading_agency = $9, notes = $10, owned_count = GREATEST($11, 0),
		    updated_at = now()
		WHERE user_id = $1 AND id = $2
	`

	tag, err := s.db.Exec(ctx, query,
		userId, userCardId, od.SerialNumber, od.PurchasePrice, od.EstimatedValue,
		od.CurrentValue, od.LocationName, od.Grade, od.GradingAgency, od.Notes,
		od.OwnedCount,
	)
	if err != nil {
		return fmt.Errorf("could not update user card %d: %w", userCardId, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteCard removes one user card.
func (s *CollectionStore) DeleteCard(ctx context.Context, userId, userCardId int64) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM user_cards WHERE user_id = $1 AND id = $2`, userId, userCardId)
	if err != nil {
		return fmt.Errorf("could not delete user card %d: %w", userCardId, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *CollectionStore) ToggleFavorite(ctx context.Context, userId, userCardId int64) (bool, error) {
	var favorite bool
	err := s.db.QueryRow(ctx, `
		UPDATE user_cards
		SET is_favorite = NOT is_favorite, updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING is_favorite
	`, userId, userCardId).Scan(&favorite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, pgx.ErrNoRows
		}
		return false, fmt.Errorf("could not toggle favorite on user card %d: %w", userCardId, err)
	}
	return favorite, nil
}

func scanOwnedCard(pgRows pgx.Rows) (models.CardRow, error) {
	var (
		row       models.CardRow
		series    models.Series
		colorName *string
		colorHex  *string
		owned     models.OwnedDetails
	)
	err := pgRows.Scan(
		&row.ID,
		&row.CardNumber,
		&row.IsRookie,
		&row.IsAutograph,
		&row.IsRelic,
		&row.IsShortPrint,
		&row.PrintRun,
		&series.ID,
		&series.Name,
		&series.Slug,
		&series.SetName,
		&series.Year,
		&series.ProductionCode,
		&colorName,
		&colorHex,
		&owned.UserCardID,
		&owned.SerialNumber,
		&owned.PurchasePrice,
		&owned.EstimatedValue,
		&owned.CurrentValue,
		&owned.LocationName,
		&owned.Grade,
		&owned.GradingAgency,
		&owned.IsFavorite,
		&owned.Notes,
		&owned.OwnedCount,
	)
	if err != nil {
		return models.CardRow{}, fmt.Errorf("failed to scan user card: %w", err)
	}
	row.Series = &series
	if colorName != nil {
		row.Color = &models.Color{Name: *colorName}
		if colorHex != nil {
			row.Color.HexColor = *colorHex
		}
	}
	row.Owned = &owned
	return row, nil
}

// copyRelationsForDuplicates fills player teams for rows sharing a
// catalog card; attachPlayerTeams only populates the first occurrence.
func copyRelationsForDuplicates(rows []models.CardRow) {
	first := make(map[int64]int)
	for i := range rows {
		if j, ok := first[rows[i].ID]; ok {
			rows[i].PlayerTeams = rows[j].PlayerTeams
			continue
		}
		first[rows[i].ID] = i
	}
}
