package nft

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/domain"
)

type NFTTestSuite struct {
	suite.Suite

	now time.Time
}

func (s *NFTTestSuite) SetupTest() {
	s.now = time.Unix(1_700_000_000, 0)
}

func (s *NFTTestSuite) TestAmountRoundTrip() {
	m := MinorUnits(250000000)
	s.True(decimal.RequireFromString("2.5").Equal(m.Major()))

	back, err := ToMinorUnits(m.Major())
	s.NoError(err)
	s.Equal(m, back)

	for _, v := range []uint64{0, 1, 7, 99_999_999, 100_000_001, 18446744073709551615} {
		back, err := ToMinorUnits(MinorUnits(v).Major())
		s.NoError(err)
		s.Equal(MinorUnits(v), back)
	}
}

func (s *NFTTestSuite) TestToMinorUnits() {
	m, err := ParseMajor("1.5")
	s.NoError(err)
	s.Equal(MinorUnits(150_000_000), m)

	m, err = ParseMajor("0.000000019")
	s.NoError(err)
	s.Equal(MinorUnits(1), m, "sub-minor precision is truncated")

	_, err = ParseMajor("-1")
	s.ErrorIs(err, domain.ErrNegativeAmount)

	_, err = ParseMajor("abc")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)

	_, err = ParseMajor("200000000000")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (s *NFTTestSuite) TestIsActionable() {
	tests := []struct {
		desc   string
		record NFTRecord
		exp    bool
	}{
		{"for sale", NFTRecord{ForSale: true}, true},
		{"running auction", NFTRecord{IsAuction: true, AuctionEnd: s.now.Unix() + 1}, true},
		{"auction ends now", NFTRecord{IsAuction: true, AuctionEnd: s.now.Unix()}, false},
		{"ended auction", NFTRecord{IsAuction: true, AuctionEnd: s.now.Unix() - 1}, false},
		{"ended auction still for sale", NFTRecord{ForSale: true, IsAuction: true, AuctionEnd: s.now.Unix() - 1}, true},
		{"not listed", NFTRecord{}, false},
	}
	for _, t := range tests {
		s.Equal(t.exp, t.record.IsActionable(s.now), t.desc)
	}
}

func (s *NFTTestSuite) TestAuctionState() {
	r := NFTRecord{IsAuction: true, AuctionEnd: s.now.Unix() + 10}
	s.Equal(AuctionStateActive, r.AuctionState(s.now))
	s.False(r.IsExpiredAuction(s.now))

	r.AuctionEnd = s.now.Unix()
	s.Equal(AuctionStateExpired, r.AuctionState(s.now))
	s.False(r.IsExpiredAuction(s.now), "sweep waits until strictly past the end")

	r.AuctionEnd = s.now.Unix() - 1
	s.True(r.IsExpiredAuction(s.now))

	r.IsAuction = false
	s.Equal(AuctionStateNone, r.AuctionState(s.now))
}

func (s *NFTTestSuite) TestMinimumNextBid() {
	r := NFTRecord{StartingBid: 100_000_000, HighestBid: 140_000_000}
	s.True(decimal.RequireFromString("1.5").Equal(r.MinimumNextBid()), r.MinimumNextBid().String())

	r = NFTRecord{StartingBid: 200_000_000}
	s.True(decimal.RequireFromString("2.1").Equal(r.MinimumNextBid()))
}

func (s *NFTTestSuite) TestComparisonPrice() {
	r := NFTRecord{Price: decimal.NewFromInt(3), HighestBid: 120_000_000}
	s.True(decimal.NewFromInt(3).Equal(r.ComparisonPrice()))

	r.IsAuction = true
	s.True(decimal.RequireFromString("1.2").Equal(r.ComparisonPrice()))
}

func (s *NFTTestSuite) TestOfferIsLive() {
	o := Offer{Status: OfferStatusPending, Expiration: s.now.Unix() + 60}
	s.True(o.IsLive(s.now))

	o.Expiration = s.now.Unix()
	s.False(o.IsLive(s.now))

	o.Expiration = s.now.Unix() + 60
	o.Status = OfferStatusAccepted
	s.False(o.IsLive(s.now))
}

func TestNFTTestSuite(t *testing.T) {
	suite.Run(t, new(NFTTestSuite))
}

func TestRarityLabels(t *testing.T) {
	req := require.New(t)
	req.Equal("Super Rare", RaritySuperRare.String())
	req.Equal("Common", RarityCommon.String())
	req.False(Rarity(5).IsValid())
	req.False(RarityAll.IsValid())
}

func TestRarityUnmarshalParam(t *testing.T) {
	req := require.New(t)

	var r Rarity = RarityRare
	req.NoError(r.UnmarshalParam("all"))
	req.Equal(RarityAll, r)

	req.NoError(r.UnmarshalParam("4"))
	req.Equal(RaritySuperRare, r)

	req.NoError(r.UnmarshalParam(""))
	req.Equal(RarityAll, r)

	req.ErrorIs(r.UnmarshalParam("legendary"), domain.ErrInvalidNumberFormat)
	req.ErrorIs(r.UnmarshalParam("256"), domain.ErrInvalidNumberFormat)
}
