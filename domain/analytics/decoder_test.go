package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/aptos-market/domain"
)

func raws(t *testing.T, s string) []json.RawMessage {
	vals := []json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(s), &vals))
	return vals
}

func TestDecodeMetrics(t *testing.T) {
	m, err := DecodeMetrics(raws(t, `["1250000000","12","5","250000000","4","3"]`))
	require.NoError(t, err)
	require.Equal(t, "12.5", m.TotalVolume.Major().String())
	require.Equal(t, uint64(12), m.TotalListings)
	require.Equal(t, uint64(5), m.TotalSales)
	require.Equal(t, "2.5", m.AveragePrice.Major().String())
	require.Equal(t, uint64(3), m.UniqueBuyers)

	_, err = DecodeMetrics(raws(t, `["1","2"]`))
	require.ErrorIs(t, err, domain.ErrUnexpectedShape)

	_, err = DecodeMetrics(raws(t, `["x","12","5","2","4","3"]`))
	require.True(t, domain.IsDecodeError(err))
	require.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
}

func TestDecodeTimeSeries(t *testing.T) {
	series, err := DecodeTimeSeries(raws(t, `[[{"timestamp":"1700000000","volume":"100000000","transactions":"2"},{"timestamp":"1700086400","volume":"0","transactions":"0"}]]`))
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, int64(1700000000), series[0].Timestamp)
	require.Equal(t, uint64(2), series[0].Transactions)

	series, err = DecodeTimeSeries(nil)
	require.NoError(t, err)
	require.Empty(t, series)

	_, err = DecodeTimeSeries(raws(t, `["nope"]`))
	require.ErrorIs(t, err, domain.ErrUnexpectedShape)
}

func TestDecodeMintingConfig(t *testing.T) {
	fee, err := DecodeMintingFee(raws(t, `["50000000"]`))
	require.NoError(t, err)
	require.Equal(t, "0.5", fee.Major().String())

	ok, err := DecodeWhitelisted(raws(t, `[true]`))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = DecodeWhitelisted(nil)
	require.Error(t, err)
}
