package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/denmor86/matka-admin/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// заявки читаются с фильтром по статусу и в порядке убывания времени подачи
	GetPendingWalletRequests = `SELECT id, user_id, amount, status, created_at, submitted_at, approved_on
								FROM ADD_MONEY_REQUESTS
								WHERE status='Pending'
								ORDER BY created_at DESC;`
	GetApprovedWalletRequests = `SELECT id, user_id, amount, status, created_at, submitted_at, approved_on
								FROM ADD_MONEY_REQUESTS
								WHERE status='Approved';`
	// отклонение пишет только статус, отметка одобрения не трогается
	UpdateWalletRequestStatus = `UPDATE ADD_MONEY_REQUESTS
								SET status = $2
								WHERE id = $1;`
	ApproveWalletRequest = `UPDATE ADD_MONEY_REQUESTS
							SET status = 'Approved',
							    approved_on = $2
							WHERE id = $1;`
)

type WalletDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWalletStorage(db *Database) WalletStorage {
	return &WalletDatabase{DB: db}
}

func (s *WalletDatabase) GetPendingRequests(ctx context.Context) ([]models.WalletRequestData, error) {
	return s.getRequests(ctx, GetPendingWalletRequests)
}

func (s *WalletDatabase) GetApprovedRequests(ctx context.Context) ([]models.WalletRequestData, error) {
	return s.getRequests(ctx, GetApprovedWalletRequests)
}

func (s *WalletDatabase) getRequests(ctx context.Context, query string) ([]models.WalletRequestData, error) {
	var requests []models.WalletRequestData
	rows, err := s.DB.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet requests: %w", err)
	}
	for rows.Next() {
		var (
			id          string
			userID      string
			amount      decimal.Decimal
			status      string
			createdAt   time.Time
			submittedAt sql.NullTime
			approvedOn  sql.NullString
		)
		err := rows.Scan(
			&id,
			&userID,
			&amount,
			&status,
			&createdAt,
			&submittedAt,
			&approvedOn,
		)
		if err != nil {
			return requests, fmt.Errorf("failed scan wallet request data: %w", err)
		}
		requests = append(requests, models.WalletRequestData{
			ID:          id,
			UserID:      userID,
			Amount:      amount,
			Status:      status,
			CreatedAt:   createdAt,
			SubmittedAt: submittedAt.Time,
			ApprovedOn:  approvedOn.String,
		})
	}
	return requests, err
}

func (s *WalletDatabase) UpdateRequestStatus(ctx context.Context, id string, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateWalletRequestStatus, id, status)
	if err != nil {
		return fmt.Errorf("failed to update wallet request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// ApproveRequest - запись статуса Approved вместе с отметкой одобрения
func (s *WalletDatabase) ApproveRequest(ctx context.Context, id string, approvedOn string) error {
	tag, err := s.DB.Pool.Exec(ctx, ApproveWalletRequest, id, approvedOn)
	if err != nil {
		return fmt.Errorf("failed to approve wallet request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}
