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

	"go.uber.org/mock/gomock"
)

func TestMarketsService_GetMarkets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMarkets := mocks.NewMockMarketsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	markets := NewMarkets(mockMarkets)

	// окно 00:00-23:59 покрывает любые сутки целиком, пустое окно всегда
	// закрыто - признак открытости не зависит от момента запуска теста
	alwaysOpen := models.MarketData{ID: "sridevi", Kind: models.MarketKindMain, Name: "SRIDEVI", OpenTime: "00:00", CloseTime: "23:59", Number: "128"}
	alwaysClosed := models.MarketData{ID: "kalyan", Kind: models.MarketKindMain, Name: "KALYAN"}
	unnamed := models.MarketData{ID: "time-bazar", Kind: models.MarketKindMain, OpenTime: "00:00", CloseTime: "23:59"}

	testCases := []struct {
		Name             string
		Kind             string
		Search           string
		SetupMocks       func()
		ExpectedError    error
		ExpectedResponse *models.MarketsResponse
	}{
		{
			Name:          "Error. Unknown market kind #1",
			Kind:          "jackpot",
			SetupMocks:    func() {},
			ExpectedError: ErrUnknownMarketKind,
		},
		{
			Name: "Error. Failed get markets #2",
			Kind: models.MarketKindMain,
			SetupMocks: func() {
				mockMarkets.EXPECT().GetMarkets(gomock.Any(), models.MarketKindMain).Return(nil, errors.New("failed to get markets"))
			},
			ExpectedError: errors.New("failed to get markets"),
		},
		{
			Name: "Success. Open flag and stats #3",
			Kind: models.MarketKindMain,
			SetupMocks: func() {
				mockMarkets.EXPECT().GetMarkets(gomock.Any(), models.MarketKindMain).Return([]models.MarketData{alwaysOpen, alwaysClosed, unnamed}, nil)
			},
			ExpectedResponse: &models.MarketsResponse{
				Markets: []models.MarketResponse{
					{ID: "sridevi", Name: "SRIDEVI", OpenTime: "00:00", CloseTime: "23:59", Number: "128", Open: true},
					{ID: "kalyan", Name: "KALYAN", Open: false},
					{ID: "time-bazar", Name: "time-bazar", OpenTime: "00:00", CloseTime: "23:59", Open: true},
				},
				Stats: models.MarketsStats{Total: 3, Active: 2, Closed: 1},
			},
		},
		{
			Name:   "Success. Search filters list, stats stay full #4",
			Kind:   models.MarketKindMain,
			Search: "  Kalyan ",
			SetupMocks: func() {
				mockMarkets.EXPECT().GetMarkets(gomock.Any(), models.MarketKindMain).Return([]models.MarketData{alwaysOpen, alwaysClosed, unnamed}, nil)
			},
			ExpectedResponse: &models.MarketsResponse{
				Markets: []models.MarketResponse{
					{ID: "kalyan", Name: "KALYAN", Open: false},
				},
				Stats: models.MarketsStats{Total: 3, Active: 2, Closed: 1},
			},
		},
		{
			Name:   "Success. Search matches identifier of unnamed market #5",
			Kind:   models.MarketKindStarline,
			Search: "bazar",
			SetupMocks: func() {
				mockMarkets.EXPECT().GetMarkets(gomock.Any(), models.MarketKindStarline).Return([]models.MarketData{unnamed}, nil)
			},
			ExpectedResponse: &models.MarketsResponse{
				Markets: []models.MarketResponse{
					{ID: "time-bazar", Name: "time-bazar", OpenTime: "00:00", CloseTime: "23:59", Open: true},
				},
				Stats: models.MarketsStats{Total: 1, Active: 1, Closed: 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			response, err := markets.GetMarkets(ctx, tc.Kind, tc.Search)

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

func TestMarketsService_UpdateNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMarkets := mocks.NewMockMarketsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	markets := NewMarkets(mockMarkets)

	testCases := []struct {
		Name          string
		Kind          string
		ID            string
		Number        string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Unknown market kind #1",
			Kind:          "buttons",
			ID:            "sridevi",
			Number:        "128",
			SetupMocks:    func() {},
			ExpectedError: ErrUnknownMarketKind,
		},
		{
			Name:   "Error. Market not found #2",
			Kind:   models.MarketKindMain,
			ID:     "missing",
			Number: "128",
			SetupMocks: func() {
				mockMarkets.EXPECT().UpdateMarketNumber(gomock.Any(), models.MarketKindMain, "missing", "128").Return(storage.ErrMarketNotFound)
			},
			ExpectedError: storage.ErrMarketNotFound,
		},
		{
			Name:   "Error. Failed update #3",
			Kind:   models.MarketKindMain,
			ID:     "sridevi",
			Number: "128",
			SetupMocks: func() {
				mockMarkets.EXPECT().UpdateMarketNumber(gomock.Any(), models.MarketKindMain, "sridevi", "128").Return(errors.New("failed to update market"))
			},
			ExpectedError: errors.New("failed to update market"),
		},
		{
			Name:   "Success. #4",
			Kind:   models.MarketKindStarline,
			ID:     "sridevi",
			Number: "550",
			SetupMocks: func() {
				mockMarkets.EXPECT().UpdateMarketNumber(gomock.Any(), models.MarketKindStarline, "sridevi", "550").Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := markets.UpdateNumber(ctx, tc.Kind, tc.ID, tc.Number)

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
