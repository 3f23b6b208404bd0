package models

// Виды рынков (исходные коллекции документов)
const (
	MarketKindMain     = "main"     // основные рынки ("buttons")
	MarketKindStarline = "starline" // рынки Starline ("button_play")
)

// MarketData - модель рынка из хранилища
type MarketData struct {
	ID        string
	Kind      string
	Name      string
	OpenTime  string
	CloseTime string
	Number    string // опубликованное число, пустая строка - число не выставлено
}

// DisplayName - имя рынка для отображения, идентификатор если имя не задано
func (m *MarketData) DisplayName() string {
	if m.Name == "" {
		return m.ID
	}
	return m.Name
}

// MarketResponse - модель рынка для выдачи
type MarketResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Number    string `json:"number,omitempty"`
	Open      bool   `json:"open"`
}

// MarketsStats - статистика по рынкам
type MarketsStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Closed int `json:"closed"`
}

// MarketsResponse - список рынков и статистика для выдачи
type MarketsResponse struct {
	Markets []MarketResponse `json:"markets"`
	Stats   MarketsStats     `json:"stats"`
}

// UpdateNumberRequest - модель запроса обновления числа рынка, приходит извне
type UpdateNumberRequest struct {
	Number string `json:"number"`
}
