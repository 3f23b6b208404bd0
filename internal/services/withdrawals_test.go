package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/matka-admin/internal/config"
	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/denmor86/matka-admin/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"go.uber.org/mock/gomock"
)

func TestWithdrawalsService_GetRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockWithdrawals, mockUsers)

	createdAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		Name             string
		SetupMocks       func()
		ExpectedError    error
		ExpectedResponse *models.WithdrawalsResponse
	}{
		{
			Name: "Error. Failed get withdrawals #1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetPendingWithdrawals(gomock.Any()).Return(nil, errors.New("failed to get withdrawals"))
			},
			ExpectedError: errors.New("failed to get withdrawals"),
		},
		{
			Name: "Success. Pending list with stats #2",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetPendingWithdrawals(gomock.Any()).Return([]models.WithdrawalRequestData{
					{ID: "w1", UserID: "u1", Amount: decimal.NewFromInt(500), Type: "upi", UpiID: "u1@upi", Status: models.RequestStatusPending, CreatedAt: createdAt},
					{ID: "w2", UserID: "u2", Amount: decimal.NewFromInt(300), Type: "bank", Status: models.RequestStatusPending, CreatedAt: createdAt},
				}, nil)
			},
			ExpectedResponse: &models.WithdrawalsResponse{
				Requests: []models.WithdrawalResponse{
					{ID: "w1", UserID: "u1", Amount: 500, Type: "upi", UpiID: "u1@upi", Status: models.RequestStatusPending, CreatedAt: createdAt.Format(time.RFC3339)},
					{ID: "w2", UserID: "u2", Amount: 300, Type: "bank", Status: models.RequestStatusPending, CreatedAt: createdAt.Format(time.RFC3339)},
				},
				Stats: models.WithdrawalsStats{PendingCount: 2, PendingAmount: 800},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			response, err := withdrawals.GetRequests(ctx)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedResponse, response)
			if len(diff) != 0 {
				t.Errorf("expected response mismatch:\n %s", diff)
			}
		})
	}
}

func TestWithdrawalsService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockWithdrawals, mockUsers)

	request := &models.WithdrawalRequestData{
		ID:     "w1",
		UserID: "u1",
		Amount: decimal.NewFromInt(500),
		Status: models.RequestStatusPending,
	}

	testCases := []struct {
		Name           string
		ID             string
		Confirmed      bool
		SetupMocks     func()
		ExpectedError  error
		ExpectedReason string
	}{
		{
			Name: "Error. Request not found #1",
			ID:   "missing",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "missing").Return(nil, storage.ErrRequestNotFound)
			},
			ExpectedError: storage.ErrRequestNotFound,
		},
		{
			Name: "Success. Sufficient balance deducted #2",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(&models.UserBalance{UserID: "u1", Balance: decimal.NewFromInt(1000)}, nil)
				mockUsers.EXPECT().AdjustUserBalance(gomock.Any(), "u1", decimal.NewFromInt(-500)).Return(nil)
				mockWithdrawals.EXPECT().ApproveWithdrawal(gomock.Any(), "w1", gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			// без подтверждения ни списания, ни одобрения не происходит
			Name: "Confirmation. Insufficient funds, not confirmed #3",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(&models.UserBalance{UserID: "u1", Balance: decimal.NewFromInt(100)}, nil)
			},
			ExpectedReason: ConfirmReasonInsufficientFunds,
		},
		{
			// подтверждено: списание уводит баланс в минус
			Name:      "Success. Insufficient funds confirmed #4",
			ID:        "w1",
			Confirmed: true,
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(&models.UserBalance{UserID: "u1", Balance: decimal.NewFromInt(100)}, nil)
				mockUsers.EXPECT().AdjustUserBalance(gomock.Any(), "u1", decimal.NewFromInt(-500)).Return(nil)
				mockWithdrawals.EXPECT().ApproveWithdrawal(gomock.Any(), "w1", gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Confirmation. User record missing, not confirmed #5",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedReason: ConfirmReasonUserNotFound,
		},
		{
			// подтверждено: одобрение без списания
			Name:      "Success. User record missing confirmed #6",
			ID:        "w1",
			Confirmed: true,
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(nil, storage.ErrUserNotFound)
				mockWithdrawals.EXPECT().ApproveWithdrawal(gomock.Any(), "w1", gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Confirmation. Balance read failed, not confirmed #7",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(nil, errors.New("connection reset"))
			},
			ExpectedReason: ConfirmReasonBalanceUpdateFailed,
		},
		{
			Name: "Confirmation. Balance write failed, not confirmed #8",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(&models.UserBalance{UserID: "u1", Balance: decimal.NewFromInt(1000)}, nil)
				mockUsers.EXPECT().AdjustUserBalance(gomock.Any(), "u1", decimal.NewFromInt(-500)).Return(errors.New("connection reset"))
			},
			ExpectedReason: ConfirmReasonBalanceUpdateFailed,
		},
		{
			// подтверждено: одобрение несмотря на несостоявшееся списание
			Name:      "Success. Balance write failed confirmed #9",
			ID:        "w1",
			Confirmed: true,
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(&models.UserBalance{UserID: "u1", Balance: decimal.NewFromInt(1000)}, nil)
				mockUsers.EXPECT().AdjustUserBalance(gomock.Any(), "u1", decimal.NewFromInt(-500)).Return(errors.New("connection reset"))
				mockWithdrawals.EXPECT().ApproveWithdrawal(gomock.Any(), "w1", gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			// списание уже прошло, статус не записался - списание не откатывается
			Name: "Error. Status write failed after deduction #10",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetWithdrawal(gomock.Any(), "w1").Return(request, nil)
				mockUsers.EXPECT().GetUserBalance(gomock.Any(), "u1").Return(&models.UserBalance{UserID: "u1", Balance: decimal.NewFromInt(1000)}, nil)
				mockUsers.EXPECT().AdjustUserBalance(gomock.Any(), "u1", decimal.NewFromInt(-500)).Return(nil)
				mockWithdrawals.EXPECT().ApproveWithdrawal(gomock.Any(), "w1", gomock.Any(), gomock.Any()).Return(errors.New("failed to approve"))
			},
			ExpectedError: errors.New("failed to approve"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := withdrawals.Approve(ctx, tc.ID, tc.Confirmed)

			if tc.ExpectedReason != "" {
				var confirmation *ConfirmationError
				if !errors.As(err, &confirmation) {
					t.Fatalf("Expected confirmation error, got: '%v'", err)
				}
				if confirmation.Reason != tc.ExpectedReason {
					t.Errorf("Expected reason '%s', got: '%s'", tc.ExpectedReason, confirmation.Reason)
				}
				if confirmation.Prompt == "" {
					t.Errorf("Expected non-empty operator prompt")
				}
				return
			}

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestWithdrawalsService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockWithdrawals, mockUsers)

	testCases := []struct {
		Name          string
		ID            string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Error. Request not found #1",
			ID:   "missing",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().UpdateWithdrawalStatus(gomock.Any(), "missing", models.RequestStatusRejected, gomock.Any()).Return(storage.ErrRequestNotFound)
			},
			ExpectedError: storage.ErrRequestNotFound,
		},
		{
			// баланс игрока при отклонении не затрагивается
			Name: "Success. Capitalized Rejected status #2",
			ID:   "w1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().UpdateWithdrawalStatus(gomock.Any(), "w1", "Rejected", gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := withdrawals.Reject(ctx, tc.ID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}
