package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявок. Регистр различается между типами заявок: страница
// пополнений исторически пишет отклонение в нижнем регистре, страница
// выводов - с заглавной. Расхождение сохранено как есть, поведение каждого
// потока не меняется.
const (
	RequestStatusPending        = "Pending"
	RequestStatusApproved       = "Approved"
	RequestStatusRejected       = "Rejected" // вывод средств
	RequestStatusWalletRejected = "rejected" // пополнение кошелька
)

// WalletRequestData - модель заявки на пополнение кошелька из хранилища
type WalletRequestData struct {
	ID          string
	UserID      string
	Amount      decimal.Decimal
	Status      string
	CreatedAt   time.Time
	SubmittedAt time.Time // нулевое значение - время не было передано
	ApprovedOn  string    // человекочитаемая отметка одобрения
}

// WithdrawalRequestData - модель заявки на вывод средств из хранилища
type WithdrawalRequestData struct {
	ID         string
	UserID     string
	Amount     decimal.Decimal
	Type       string
	UpiID      string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  int64 // миллисекунды эпохи, 0 - обновления не было
	ApprovedOn string
}

// WalletRequestResponse - заявка на пополнение для выдачи
type WalletRequestResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	SubmittedAt string  `json:"submitted_at,omitempty"`
}

// WalletStats - статистика по заявкам на пополнение
type WalletStats struct {
	PendingCount  int     `json:"pending_count"`
	PendingAmount float64 `json:"pending_amount"`
	ApprovedToday float64 `json:"approved_today"`
}

// WalletRequestsResponse - список заявок на пополнение и статистика
type WalletRequestsResponse struct {
	Requests []WalletRequestResponse `json:"requests"`
	Stats    WalletStats             `json:"stats"`
}

// WithdrawalResponse - заявка на вывод для выдачи
type WithdrawalResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	UpiID     string  `json:"upi_id"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// WithdrawalsStats - статистика по заявкам на вывод
type WithdrawalsStats struct {
	PendingCount  int     `json:"pending_count"`
	PendingAmount float64 `json:"pending_amount"`
}

// WithdrawalsResponse - список заявок на вывод и статистика
type WithdrawalsResponse struct {
	Requests []WithdrawalResponse `json:"requests"`
	Stats    WithdrawalsStats     `json:"stats"`
}

// ApproveRequest - модель запроса одобрения вывода, приходит извне.
// Confirm выставляется при повторной отправке после вопроса оператору.
type ApproveRequest struct {
	Confirm bool `json:"confirm"`
}

// ConfirmationResponse - ответ с вопросом, требующим решения оператора
type ConfirmationResponse struct {
	Reason  string  `json:"reason"`
	Prompt  string  `json:"prompt"`
	Balance float64 `json:"balance,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}
