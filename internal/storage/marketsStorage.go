package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/denmor86/matka-admin/internal/models"
)

const (
	GetMarkets = `SELECT id, name, open_time, close_time, number
					FROM MARKETS
					WHERE kind=$1
					ORDER BY id;`
	UpdateMarketNumber = `UPDATE MARKETS
							SET number = $3
							WHERE kind=$1 AND id=$2;`
)

type MarketDatabase struct {
	DB *Database
}

// Создание хранилища
func NewMarketsStorage(db *Database) MarketsStorage {
	return &MarketDatabase{DB: db}
}

// GetMarkets - чтение всех рынков коллекции, упорядоченных по идентификатору
func (s *MarketDatabase) GetMarkets(ctx context.Context, kind string) ([]models.MarketData, error) {
	var markets []models.MarketData
	rows, err := s.DB.Pool.Query(ctx, GetMarkets, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get markets: %w", err)
	}
	for rows.Next() {
		var (
			id        string
			name      sql.NullString
			openTime  string
			closeTime string
			number    sql.NullString
		)
		err := rows.Scan(
			&id,
			&name,
			&openTime,
			&closeTime,
			&number,
		)
		if err != nil {
			return markets, fmt.Errorf("failed scan market data: %w", err)
		}
		markets = append(markets, models.MarketData{
			ID:        id,
			Kind:      kind,
			Name:      name.String,
			OpenTime:  openTime,
			CloseTime: closeTime,
			Number:    number.String,
		})
	}
	return markets, err
}

// UpdateMarketNumber - запись опубликованного числа рынка.
// Единственное поле рынка, которое система может менять.
func (s *MarketDatabase) UpdateMarketNumber(ctx context.Context, kind string, id string, number string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateMarketNumber, kind, id, number)
	if err != nil {
		return fmt.Errorf("failed to update market number: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMarketNotFound
	}
	return nil
}
