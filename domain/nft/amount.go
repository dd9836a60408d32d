package nft

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/aptos-market/domain"
)

const (
	// MinorUnitsPerMajor is the 8-decimal fixed point convention of the chain coin.
	MinorUnitsPerMajor = 100_000_000
	minorUnitsExp      = 8
)

// MinBidIncrement is the fixed step above the current bid, in major units.
var MinBidIncrement = decimal.New(1, -1)

// MinorUnits is an on-chain integer amount. It is the only representation
// ever submitted in a transaction.
type MinorUnits uint64

// Major converts to display units. The conversion is an exact decimal shift.
func (m MinorUnits) Major() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(m)), -minorUnitsExp)
}

// String renders the decimal string form used for transaction arguments.
func (m MinorUnits) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

func (m MinorUnits) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both the quoted u64 form the chain emits and a bare number.
func (m *MinorUnits) UnmarshalJSON(data []byte) error {
	v, err := parseU64JSON(data)
	if err != nil {
		return err
	}
	*m = MinorUnits(v)
	return nil
}

// ToMinorUnits converts a major unit amount, dropping anything below one minor unit.
func ToMinorUnits(major decimal.Decimal) (MinorUnits, error) {
	if major.IsNegative() {
		return 0, domain.ErrNegativeAmount
	}
	minor := major.Shift(minorUnitsExp).Truncate(0).BigInt()
	if !minor.IsUint64() {
		return 0, xerrors.Errorf("%s overflows u64: %w", major.String(), domain.ErrInvalidNumberFormat)
	}
	return MinorUnits(minor.Uint64()), nil
}

// ParseMajor parses user input such as "1.5" into minor units.
func ParseMajor(s string) (MinorUnits, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, xerrors.Errorf("%q: %w", s, domain.ErrInvalidNumberFormat)
	}
	return ToMinorUnits(d)
}

func ParseMinorUnits(s string) (MinorUnits, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("%q: %w", s, domain.ErrInvalidNumberFormat)
	}
	return MinorUnits(v), nil
}

// U64 is a chain u64 field. The REST API renders u64 as a JSON string.
type U64 uint64

func (u U64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *U64) UnmarshalJSON(data []byte) error {
	v, err := parseU64JSON(data)
	if err != nil {
		return err
	}
	*u = U64(v)
	return nil
}

func parseU64JSON(data []byte) (uint64, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		data = []byte(s)
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("%s: %w", string(data), domain.ErrInvalidNumberFormat)
	}
	return v, nil
}
