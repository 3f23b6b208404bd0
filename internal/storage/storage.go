package storage

import (
	"context"
	"errors"

	"github.com/denmor86/matka-admin/internal/models"
	"github.com/shopspring/decimal"
)

type MarketsStorage interface {
	GetMarkets(ctx context.Context, kind string) ([]models.MarketData, error)
	UpdateMarketNumber(ctx context.Context, kind string, id string, number string) error
}

type WalletStorage interface {
	GetPendingRequests(ctx context.Context) ([]models.WalletRequestData, error)
	GetApprovedRequests(ctx context.Context) ([]models.WalletRequestData, error)
	UpdateRequestStatus(ctx context.Context, id string, status string) error
	ApproveRequest(ctx context.Context, id string, approvedOn string) error
}

type WithdrawalsStorage interface {
	GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalRequestData, error)
	GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequestData, error)
	UpdateWithdrawalStatus(ctx context.Context, id string, status string, updatedAt int64) error
	ApproveWithdrawal(ctx context.Context, id string, approvedOn string, updatedAt int64) error
}

type UsersStorage interface {
	GetUserBalance(ctx context.Context, userID string) (*models.UserBalance, error)
	AdjustUserBalance(ctx context.Context, userID string, delta decimal.Decimal) error
}

type OperatorsStorage interface {
	AddOperator(ctx context.Context, login string, password string) error
	GetOperator(ctx context.Context, login string) (*models.OperatorData, error)
}

type Storage struct {
	Markets     MarketsStorage
	Wallet      WalletStorage
	Withdrawals WithdrawalsStorage
	Users       UsersStorage
	Operators   OperatorsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Markets:     NewMarketsStorage(db),
		Wallet:      NewWalletStorage(db),
		Withdrawals: NewWithdrawalsStorage(db),
		Users:       NewUsersStorage(db),
		Operators:   NewOperatorsStorage(db),
	}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrOperatorNotFound = errors.New("operator not found")
	ErrMarketNotFound   = errors.New("market not found")
	ErrRequestNotFound  = errors.New("request not found")

	ErrAlreadyExists = errors.New("already exists")
)
