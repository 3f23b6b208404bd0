package models

import "github.com/shopspring/decimal"

// OperatorRequest - модель для регистрации и аутентификации оператора, приходит извне
type OperatorRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// OperatorData - модель оператора из хранилища
type OperatorData struct {
	OperatorID   string
	Login        string
	PasswordHash string
}

// UserBalance - баланс игрока. Баланс меняется только как побочный эффект
// одобрения заявки на вывод средств.
type UserBalance struct {
	UserID  string
	Balance decimal.Decimal
}
