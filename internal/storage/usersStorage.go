package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/matka-admin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	GetUserBalance = `SELECT COALESCE(balance, 0) FROM USERS WHERE id=$1;`
	// сервер сам прибавляет дельту: чтение старого значения не требуется,
	// параллельные записи не теряют обновлений этого поля
	UpdateUserBalance = `UPDATE USERS
						SET balance = balance + $1
						WHERE id = $2;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

// GetUserBalance - получение текущего баланса игрока.
// Отсутствие значения баланса у существующей записи читается как 0.
func (s *UserDatabase) GetUserBalance(ctx context.Context, userID string) (*models.UserBalance, error) {
	var balance decimal.Decimal

	err := s.DB.Pool.QueryRow(ctx, GetUserBalance, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user balance: %w", err)
	}

	return &models.UserBalance{
		UserID:  userID,
		Balance: balance,
	}, nil
}

// AdjustUserBalance - атомарное изменение баланса игрока на дельту
// (для списания дельта передаётся отрицательной)
func (s *UserDatabase) AdjustUserBalance(ctx context.Context, userID string, delta decimal.Decimal) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateUserBalance, delta, userID)
	if err != nil {
		return fmt.Errorf("failed to update user balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
