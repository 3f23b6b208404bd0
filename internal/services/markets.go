package services

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/storage"
	"go.uber.org/zap"
)

var ErrUnknownMarketKind = errors.New("unknown market kind")

type MarketsService interface {
	GetMarkets(ctx context.Context, kind string, search string) (*models.MarketsResponse, error)
	UpdateNumber(ctx context.Context, kind string, id string, number string) error
}

type Markets struct {
	Storage storage.MarketsStorage
}

// Создание сервиса
func NewMarkets(storage storage.MarketsStorage) MarketsService {
	return &Markets{Storage: storage}
}

func checkMarketKind(kind string) error {
	if kind != models.MarketKindMain && kind != models.MarketKindStarline {
		return ErrUnknownMarketKind
	}
	return nil
}

// GetMarkets возвращает рынки коллекции с признаком открытости и статистикой.
// Поиск фильтрует список по вхождению подстроки в отображаемое имя,
// статистика всегда считается по всем рынкам коллекции.
func (s *Markets) GetMarkets(ctx context.Context, kind string, search string) (*models.MarketsResponse, error) {
	if err := checkMarketKind(kind); err != nil {
		return nil, err
	}

	markets, err := s.Storage.GetMarkets(ctx, kind)
	if err != nil {
		logger.Error("Failed to get markets", zap.Error(err))
		return nil, err
	}

	response := &models.MarketsResponse{}
	search = strings.ToLower(strings.TrimSpace(search))

	for _, market := range markets {
		open := IsMarketOpen(market.OpenTime, market.CloseTime)

		response.Stats.Total++
		if open {
			response.Stats.Active++
		} else {
			response.Stats.Closed++
		}

		if search != "" && !strings.Contains(strings.ToLower(market.DisplayName()), search) {
			continue
		}

		response.Markets = append(response.Markets, models.MarketResponse{
			ID:        market.ID,
			Name:      market.DisplayName(),
			OpenTime:  market.OpenTime,
			CloseTime: market.CloseTime,
			Number:    market.Number,
			Open:      open,
		})
	}

	return response, nil
}

// UpdateNumber - запись нового опубликованного числа рынка
func (s *Markets) UpdateNumber(ctx context.Context, kind string, id string, number string) error {
	if err := checkMarketKind(kind); err != nil {
		return err
	}

	if err := s.Storage.UpdateMarketNumber(ctx, kind, id, number); err != nil {
		if errors.Is(err, storage.ErrMarketNotFound) {
			logger.Warn("Market not found", kind, id)
			return err
		}
		logger.Error("Failed to update market number", zap.Error(err))
		return err
	}

	logger.Info("Market number updated", kind, id, number)
	return nil
}
