package analytics

import (
	"encoding/json"

	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
)

// DecodeMetrics decodes the six values of get_market_metrics in order
// volume, listings, sales, average price, sellers, buyers.
func DecodeMetrics(vals []json.RawMessage) (*MarketMetrics, error) {
	if len(vals) != 6 {
		return nil, domain.NewDecodeError("metrics", domain.ErrUnexpectedShape)
	}
	var (
		volume, avg                      nft.MinorUnits
		listings, sales, sellers, buyers nft.U64
	)
	fields := []string{"total_volume", "total_listings", "total_sales", "average_price", "unique_sellers", "unique_buyers"}
	targets := []interface{}{&volume, &listings, &sales, &avg, &sellers, &buyers}
	for i, v := range vals {
		if err := json.Unmarshal(v, targets[i]); err != nil {
			return nil, domain.NewDecodeError(fields[i], domain.ErrInvalidNumberFormat)
		}
	}
	return &MarketMetrics{
		TotalVolume:   volume,
		TotalListings: uint64(listings),
		TotalSales:    uint64(sales),
		AveragePrice:  avg,
		UniqueSellers: uint64(sellers),
		UniqueBuyers:  uint64(buyers),
	}, nil
}

type rawDailyMetric struct {
	Timestamp    nft.U64        `json:"timestamp"`
	Volume       nft.MinorUnits `json:"volume"`
	Transactions nft.U64        `json:"transactions"`
}

// DecodeTimeSeries reads the vector in the first return value. An empty
// result is an empty series.
func DecodeTimeSeries(vals []json.RawMessage) ([]*DailyMetric, error) {
	if len(vals) == 0 {
		return []*DailyMetric{}, nil
	}
	raws := []rawDailyMetric{}
	if err := json.Unmarshal(vals[0], &raws); err != nil {
		return nil, domain.NewDecodeError("time_series", domain.ErrUnexpectedShape)
	}
	res := make([]*DailyMetric, len(raws))
	for i, r := range raws {
		res[i] = &DailyMetric{
			Timestamp:    int64(r.Timestamp),
			Volume:       r.Volume,
			Transactions: uint64(r.Transactions),
		}
	}
	return res, nil
}

func DecodeMintingFee(vals []json.RawMessage) (nft.MinorUnits, error) {
	var fee nft.MinorUnits
	if len(vals) == 0 {
		return 0, domain.NewDecodeError("minting_fee", domain.ErrUnexpectedShape)
	}
	if err := json.Unmarshal(vals[0], &fee); err != nil {
		return 0, domain.NewDecodeError("minting_fee", domain.ErrInvalidNumberFormat)
	}
	return fee, nil
}

func DecodeWhitelisted(vals []json.RawMessage) (bool, error) {
	var ok bool
	if len(vals) == 0 {
		return false, domain.NewDecodeError("is_whitelisted", domain.ErrUnexpectedShape)
	}
	if err := json.Unmarshal(vals[0], &ok); err != nil {
		return false, domain.NewDecodeError("is_whitelisted", domain.ErrUnexpectedShape)
	}
	return ok, nil
}
