package nft

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
)

const (
	owner  = "0xa256fddba13780914e70b6f74cf24af7548e796ad8dcbf331c85c93327f99ec4"
	bidder = "0x2"
)

type DecoderTestSuite struct {
	suite.Suite

	ctx ctx.Ctx
}

func (s *DecoderTestSuite) SetupTest() {
	s.ctx = ctx.Background()
}

func rawRecordJSON(id string, name string) json.RawMessage {
	return json.RawMessage(`{
		"id": "` + id + `",
		"owner": "` + owner + `",
		"name": "` + name + `",
		"description": "0x",
		"uri": "0x697066733a2f2f61",
		"price": "250000000",
		"for_sale": true,
		"rarity": 3,
		"is_auction": true,
		"auction_end": "1700000100",
		"highest_bid": "140000000",
		"highest_bidder": "` + bidder + `",
		"starting_bid": "100000000"
	}`)
}

func (s *DecoderTestSuite) TestDecodeHexText() {
	text, err := DecodeHexText(EncodeHexText("Sword"))
	s.NoError(err)
	s.Equal("Sword", text)
	s.Equal("0x53776f7264", EncodeHexText("Sword"))

	text, err = DecodeHexText("53776f7264")
	s.NoError(err)
	s.Equal("Sword", text)

	_, err = DecodeHexText("0x53776f726")
	s.ErrorIs(err, domain.ErrInvalidHex)

	_, err = DecodeHexText("0xzz")
	s.ErrorIs(err, domain.ErrInvalidHex)

	_, err = DecodeHexText("0xff")
	s.ErrorIs(err, domain.ErrInvalidUtf8)

	text, err = DecodeHexText("0x")
	s.NoError(err)
	s.Equal("", text)
}

func (s *DecoderTestSuite) TestDecodeRecord() {
	r, err := DecodeRecord(rawRecordJSON("7", "0x53776f7264"))
	s.Require().NoError(err)
	s.Equal(uint64(7), r.ID)
	s.Equal("Sword", r.Name)
	s.Equal("ipfs://a", r.URI)
	s.Equal("", r.Description)
	s.Equal(domain.Address(owner), r.Owner)
	s.True(decimal.RequireFromString("2.5").Equal(r.Price))
	s.Equal(RarityRare, r.Rarity)
	s.True(r.IsAuction)
	s.Equal(int64(1700000100), r.AuctionEnd)
	s.Equal(MinorUnits(140000000), r.HighestBid)
	s.Equal(domain.Address(bidder), r.HighestBidder)
	s.Equal(MinorUnits(100000000), r.StartingBid)
}

func (s *DecoderTestSuite) TestDecodeRecordShape() {
	_, err := DecodeRecord(json.RawMessage(`[1, 2]`))
	s.True(domain.IsDecodeError(err))

	_, err = DecodeRecord(json.RawMessage(`{"id": "1", "owner": "0x1"}`))
	s.True(domain.IsDecodeError(err))

	_, err = DecodeRecord(json.RawMessage(`{"id": true, "owner": "0x1", "name": "0x", "description": "0x", "uri": "0x", "price": "1", "for_sale": true, "rarity": 1}`))
	s.True(domain.IsDecodeError(err))

	_, err = DecodeRecord(json.RawMessage(`{"id": "1", "owner": "nobody", "name": "0x", "description": "0x", "uri": "0x", "price": "1", "for_sale": true, "rarity": 1}`))
	s.ErrorIs(err, domain.ErrInvalidAddress)

	for _, rarity := range []string{"0", "5", "9"} {
		_, err = DecodeRecord(json.RawMessage(`{"id": "1", "owner": "0x1", "name": "0x", "description": "0x", "uri": "0x", "price": "1", "for_sale": true, "rarity": ` + rarity + `}`))
		s.True(domain.IsDecodeError(err), rarity)
		s.ErrorIs(err, domain.ErrUnexpectedShape, rarity)
	}
}

func (s *DecoderTestSuite) TestDecodeAllDropsBadRecords() {
	records, errs := DecodeAll(s.ctx, []json.RawMessage{
		rawRecordJSON("1", "0x53776f7264"),
		rawRecordJSON("2", "0x53776f726"),
		rawRecordJSON("3", "0x536869656c64"),
	})
	s.Require().Len(records, 2)
	s.Equal(uint64(1), records[0].ID)
	s.Equal(uint64(3), records[1].ID)
	s.Equal("Shield", records[1].Name)
	s.Require().Len(errs, 1)
	s.True(domain.IsDecodeError(errs[0]))
}

func (s *DecoderTestSuite) TestDecodeMarketplace() {
	data := json.RawMessage(`{"nfts": [` + string(rawRecordJSON("1", "0x41")) + `]}`)
	records, errs, err := DecodeMarketplace(s.ctx, data)
	s.NoError(err)
	s.Empty(errs)
	s.Len(records, 1)

	_, _, err = DecodeMarketplace(s.ctx, json.RawMessage(`{"nfts": "nope"}`))
	s.True(domain.IsDecodeError(err))
}

func (s *DecoderTestSuite) TestDecodeDetails() {
	vals := []json.RawMessage{
		json.RawMessage(`"5"`),
		json.RawMessage(`"` + owner + `"`),
		json.RawMessage(`"0x53776f7264"`),
		json.RawMessage(`"0x"`),
		json.RawMessage(`"0x"`),
		json.RawMessage(`"250000000"`),
		json.RawMessage(`false`),
		json.RawMessage(`4`),
	}
	r, err := DecodeDetails(vals)
	s.Require().NoError(err)
	s.Equal(uint64(5), r.ID)
	s.Equal("Sword", r.Name)
	s.Equal(RaritySuperRare, r.Rarity)
	s.False(r.IsAuction)

	_, err = DecodeDetails(vals[:7])
	s.ErrorIs(err, domain.ErrUnexpectedShape)

	vals[7] = json.RawMessage(`7`)
	_, err = DecodeDetails(vals)
	s.ErrorIs(err, domain.ErrUnexpectedShape)
	vals[7] = json.RawMessage(`4`)

	vals[6] = json.RawMessage(`"false"`)
	_, err = DecodeDetails(vals)
	s.True(domain.IsDecodeError(err))
}

func (s *DecoderTestSuite) TestDecodeIDList() {
	ids, err := DecodeIDList([]json.RawMessage{json.RawMessage(`["1", "2", "10"]`)})
	s.NoError(err)
	s.Equal([]uint64{1, 2, 10}, ids)

	ids, err = DecodeIDList([]json.RawMessage{json.RawMessage(`"4"`), json.RawMessage(`5`)})
	s.NoError(err)
	s.Equal([]uint64{4, 5}, ids)

	_, err = DecodeIDList([]json.RawMessage{json.RawMessage(`{}`)})
	s.True(domain.IsDecodeError(err))
}

func (s *DecoderTestSuite) TestDecodeGift() {
	g, err := DecodeGift([]json.RawMessage{
		json.RawMessage(`true`),
		json.RawMessage(`"0x4861707079206269727468646179"`),
		json.RawMessage(`"0x3"`),
		json.RawMessage(`"1700000000"`),
	})
	s.Require().NoError(err)
	s.True(g.IsGift)
	s.Equal("Happy birthday", g.Message)
	s.Equal(domain.Address("0x3"), g.From)
	s.Equal(int64(1700000000), g.Timestamp)

	_, err = DecodeGift([]json.RawMessage{json.RawMessage(`true`)})
	s.True(domain.IsDecodeError(err))
}

func (s *DecoderTestSuite) TestDecodeOffers() {
	offers, err := DecodeOffers(s.ctx, []json.RawMessage{json.RawMessage(`[
		{"offer_id": "1", "nft_id": "9", "buyer": "0x4", "amount": "50000000", "expiration": "1700000500", "status": 0},
		{"offer_id": "2", "nft_id": "9", "buyer": "bad", "amount": "1", "expiration": "1", "status": 0},
		{"offer_id": "3", "nft_id": "9", "buyer": "0x5", "amount": "70000000", "expiration": "1700000500", "status": 1}
	]`)})
	s.Require().NoError(err)
	s.Require().Len(offers, 2)
	s.Equal(uint64(1), offers[0].OfferID)
	s.Equal(MinorUnits(50000000), offers[0].Amount)
	s.Equal(OfferStatusAccepted, offers[1].Status)

	offers, err = DecodeOffers(s.ctx, nil)
	s.NoError(err)
	s.Empty(offers)
}

func TestDecoderTestSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}
