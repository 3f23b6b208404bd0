package models

// DashboardSnapshot - кэшированный срез статистики для панели оператора.
// Собирается фоновым воркером с фиксированным интервалом, отставание до
// интервала обновления считается допустимым.
type DashboardSnapshot struct {
	MainMarkets     MarketsStats     `json:"main_markets"`
	StarlineMarkets MarketsStats     `json:"starline_markets"`
	Wallet          WalletStats      `json:"wallet"`
	Withdrawals     WithdrawalsStats `json:"withdrawals"`
	RefreshedAt     string           `json:"refreshed_at,omitempty"`
}
