package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/matka-admin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	GetPendingWithdrawals = `SELECT id, user_id, amount, type, upi_id, status, created_at, updated_at, approved_on
							FROM WITHDRAWAL_REQUESTS
							WHERE status='Pending'
							ORDER BY created_at DESC;`
	GetWithdrawal = `SELECT id, user_id, amount, type, upi_id, status, created_at, updated_at, approved_on
					FROM WITHDRAWAL_REQUESTS
					WHERE id=$1;`
	UpdateWithdrawalStatus = `UPDATE WITHDRAWAL_REQUESTS
							SET status = $2,
							    updated_at = $3
							WHERE id = $1;`
	ApproveWithdrawal = `UPDATE WITHDRAWAL_REQUESTS
						SET status = 'Approved',
						    approved_on = $2,
						    updated_at = $3
						WHERE id = $1;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

func (s *WithdrawalDatabase) GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalRequestData, error) {
	var withdrawals []models.WithdrawalRequestData
	rows, err := s.DB.Pool.Query(ctx, GetPendingWithdrawals)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal requests: %w", err)
	}
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, err
}

func (s *WithdrawalDatabase) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequestData, error) {
	row := s.DB.Pool.QueryRow(ctx, GetWithdrawal, id)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return withdrawal, nil
}

func scanWithdrawal(row pgx.Row) (*models.WithdrawalRequestData, error) {
	var (
		id          string
		userID      string
		amount      decimal.Decimal
		requestType string
		upiID       string
		status      string
		createdAt   time.Time
		updatedAt   sql.NullInt64
		approvedOn  sql.NullString
	)
	err := row.Scan(
		&id,
		&userID,
		&amount,
		&requestType,
		&upiID,
		&status,
		&createdAt,
		&updatedAt,
		&approvedOn,
	)
	if err != nil {
		return nil, err
	}
	return &models.WithdrawalRequestData{
		ID:         id,
		UserID:     userID,
		Amount:     amount,
		Type:       requestType,
		UpiID:      upiID,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt.Int64,
		ApprovedOn: approvedOn.String,
	}, nil
}

func (s *WithdrawalDatabase) UpdateWithdrawalStatus(ctx context.Context, id string, status string, updatedAt int64) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateWithdrawalStatus, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// ApproveWithdrawal - запись статуса Approved, отметки одобрения и времени
// обновления. Статус заявки пишется отдельно от списания баланса: порядок и
// несвязанность двух записей сохранены от исходной схемы.
func (s *WithdrawalDatabase) ApproveWithdrawal(ctx context.Context, id string, approvedOn string, updatedAt int64) error {
	tag, err := s.DB.Pool.Exec(ctx, ApproveWithdrawal, id, approvedOn, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to approve withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}
