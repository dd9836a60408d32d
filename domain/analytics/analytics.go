package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
)

const (
	ModuleName        = "MarketPlaceAnalytics"
	DefaultSeriesDays = 30

	ViewMarketMetrics  = "get_market_metrics"
	ViewTimeSeriesData = "get_time_series_data"
)

type MarketMetrics struct {
	TotalVolume   nft.MinorUnits `json:"totalVolume"`
	TotalListings uint64         `json:"totalListings"`
	TotalSales    uint64         `json:"totalSales"`
	AveragePrice  nft.MinorUnits `json:"averagePrice"`
	UniqueSellers uint64         `json:"uniqueSellers"`
	UniqueBuyers  uint64         `json:"uniqueBuyers"`
}

type DailyMetric struct {
	Timestamp    int64          `json:"timestamp"`
	Volume       nft.MinorUnits `json:"volume"`
	Transactions uint64         `json:"transactions"`
}

type MintingConfig struct {
	Account     domain.Address  `json:"account,omitempty"`
	Fee         nft.MinorUnits  `json:"fee"`
	FeeMajor    decimal.Decimal `json:"feeMajor"`
	Whitelisted bool            `json:"whitelisted"`
}

type Usecase interface {
	Metrics(c ctx.Ctx) (*MarketMetrics, error)
	TimeSeries(c ctx.Ctx, days int) ([]*DailyMetric, error)
	// MintingConfig reports the fee, and the whitelist flag when account is set
	MintingConfig(c ctx.Ctx, account domain.Address) (*MintingConfig, error)
}
