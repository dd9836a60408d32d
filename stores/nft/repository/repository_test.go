package repository

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/mocks"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/service/cache"
	"github.com/x-xyz/aptos-market/service/cache/provider/primitive"
)

const (
	market = domain.Address("0xa256fddba13780914e70b6f74cf24af7548e796ad8dcbf331c85c93327f99ec4")
	owner  = domain.Address("0x3")
)

func fn(name string) string {
	return string(market) + "::NFTMarketplace::" + name
}

func raws(vals ...string) []json.RawMessage {
	res := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		res = append(res, json.RawMessage(v))
	}
	return res
}

func details(id string, name string) []json.RawMessage {
	return raws(`"`+id+`"`, `"`+string(owner)+`"`, `"`+name+`"`, `"0x"`, `"0x"`, `"100000000"`, `true`, `1`)
}

type RepositoryTestSuite struct {
	suite.Suite

	ctx    ctx.Ctx
	reader *mocks.ChainReader
	im     nft.Repository
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.reader = &mocks.ChainReader{}
	s.im = New(s.reader, Config{
		MarketAddress: market,
		Concurrency:   2,
		DetailsCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "nft",
			Cache: primitive.NewPrimitive("nft", 1),
		}),
	})
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.reader.AssertExpectations(s.T())
}

func (s *RepositoryTestSuite) TestFindAll() {
	data := json.RawMessage(`{"nfts": [
		{"id": "1", "owner": "0x3", "name": "0x53776f7264", "description": "0x", "uri": "0x", "price": "100000000", "for_sale": true, "rarity": 1},
		{"id": "2", "owner": "0x3", "name": "0x123", "description": "0x", "uri": "0x", "price": "100000000", "for_sale": true, "rarity": 1}
	]}`)
	s.reader.On("AccountResource", mock.Anything, market, fn("Marketplace")).Return(data, nil).Once()

	records, err := s.im.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("Sword", records[0].Name)
}

func (s *RepositoryTestSuite) TestFindAllFetchError() {
	s.reader.On("AccountResource", mock.Anything, market, fn("Marketplace")).Return(nil, errors.New("dial tcp")).Once()

	_, err := s.im.FindAll(s.ctx)
	s.True(domain.IsFetchError(err))
}

func (s *RepositoryTestSuite) TestFindAllMalformedResource() {
	s.reader.On("AccountResource", mock.Anything, market, fn("Marketplace")).Return(json.RawMessage(`[]`), nil).Once()

	_, err := s.im.FindAll(s.ctx)
	s.True(domain.IsFetchError(err))
	s.True(domain.IsDecodeError(err))
}

func (s *RepositoryTestSuite) TestFindOneNotFound() {
	s.reader.On("AccountResource", mock.Anything, market, fn("Marketplace")).Return(json.RawMessage(`{"nfts": []}`), nil).Once()

	_, err := s.im.FindOne(s.ctx, 9)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RepositoryTestSuite) TestFindByOwner() {
	s.reader.On("View", mock.Anything, fn("get_all_nfts_for_owner"), mock.Anything, string(market), string(owner), "100", "0").
		Return(raws(`["3", "1", "2"]`), nil).Once()
	s.reader.On("View", mock.Anything, fn("get_nft_details"), mock.Anything, string(market), "3").Return(details("3", "0x43"), nil).Once()
	s.reader.On("View", mock.Anything, fn("get_nft_details"), mock.Anything, string(market), "1").Return(details("1", "0x41"), nil).Once()
	s.reader.On("View", mock.Anything, fn("get_nft_details"), mock.Anything, string(market), "2").Return(nil, errors.New("timeout")).Once()

	records, err := s.im.FindByOwner(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(uint64(3), records[0].ID)
	s.Equal("C", records[0].Name)
	s.Equal(uint64(1), records[1].ID)

	// details are served from cache on the second call
	s.reader.On("View", mock.Anything, fn("get_all_nfts_for_owner"), mock.Anything, string(market), string(owner), "100", "0").
		Return(raws(`["1"]`), nil).Once()
	records, err = s.im.FindByOwner(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("A", records[0].Name)
}

func (s *RepositoryTestSuite) TestFindByOwnerInvalidAddress() {
	_, err := s.im.FindByOwner(s.ctx, "owner")
	s.True(domain.IsValidationError(err))
}

func (s *RepositoryTestSuite) TestFindGift() {
	s.reader.On("View", mock.Anything, fn("get_nft_gift_details"), mock.Anything, string(market), "4").
		Return(raws(`true`, `"0x6869"`, `"0x5"`, `"1700000000"`), nil).Once()

	gift, err := s.im.FindGift(s.ctx, 4)
	s.Require().NoError(err)
	s.Equal("hi", gift.Message)
}

func (s *RepositoryTestSuite) TestFindOffers() {
	s.reader.On("View", mock.Anything, fn("get_offers_for_nft"), mock.Anything, "4").
		Return(raws(`[{"offer_id": "1", "nft_id": "4", "buyer": "0x6", "amount": "10", "expiration": "1800000000", "status": 0}]`), nil).Once()

	offers, err := s.im.FindOffers(s.ctx, 4)
	s.Require().NoError(err)
	s.Require().Len(offers, 1)
	s.Equal(domain.Address("0x6"), offers[0].Buyer)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
