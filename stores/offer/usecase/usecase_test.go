package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/mocks"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

var now = time.Unix(1_700_000_000, 0)

type OfferUsecaseTestSuite struct {
	suite.Suite

	ctx  ctx.Ctx
	repo *mocks.NftRepository
	tx   *mocks.TransactionUsecase
	im   *impl
}

func (s *OfferUsecaseTestSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.repo = &mocks.NftRepository{}
	s.tx = &mocks.TransactionUsecase{}
	s.im = New(s.repo, s.tx, func() time.Time { return now }).(*impl)

	s.repo.On("FindOffers", mock.Anything, uint64(5)).Return([]*nft.Offer{
		{OfferID: 1, NftID: 5, Buyer: "0x2", Amount: 50_000_000, Expiration: now.Unix() + 60, Status: nft.OfferStatusPending},
		{OfferID: 2, NftID: 5, Buyer: "0x3", Amount: 90_000_000, Expiration: now.Unix() - 60, Status: nft.OfferStatusPending},
		{OfferID: 3, NftID: 5, Buyer: "0x4", Amount: 70_000_000, Expiration: now.Unix() + 60, Status: nft.OfferStatusPending},
		{OfferID: 4, NftID: 5, Buyer: "0x5", Amount: 99_000_000, Expiration: now.Unix() + 60, Status: nft.OfferStatusAccepted},
	}, nil)
}

func (s *OfferUsecaseTestSuite) TestFindBook() {
	book, err := s.im.FindBook(s.ctx, 5, false)
	s.Require().NoError(err)
	s.Len(book.Offers, 4)
	s.Require().NotNil(book.Best)
	s.Equal(uint64(3), book.Best.OfferID)
	s.True(book.Offers[1].Expired)
	s.Equal("0.7", book.Best.AmountMajor.String())

	book, err = s.im.FindBook(s.ctx, 5, true)
	s.Require().NoError(err)
	s.Len(book.Offers, 2)
}

func (s *OfferUsecaseTestSuite) TestAccept() {
	s.tx.On("AcceptOffer", mock.Anything, uint64(5), uint64(1)).Return(&transaction.Result{Hash: "0x9"}, nil).Once()
	res, err := s.im.Accept(s.ctx, 5, 1)
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0x9"), res.Hash)

	_, err = s.im.Accept(s.ctx, 5, 2)
	s.ErrorIs(err, domain.ErrOfferNotLive)

	_, err = s.im.Accept(s.ctx, 5, 8)
	s.ErrorIs(err, domain.ErrNotFound)
	s.tx.AssertExpectations(s.T())
}

func TestOfferUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(OfferUsecaseTestSuite))
}
