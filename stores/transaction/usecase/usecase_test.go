package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/mocks"
	"github.com/x-xyz/aptos-market/domain/nft"
)

const market = domain.Address("0xa256fddba13780914e70b6f74cf24af7548e796ad8dcbf331c85c93327f99ec4")

var now = time.Unix(1_700_000_000, 0)

type TransactionUsecaseTestSuite struct {
	suite.Suite

	ctx    ctx.Ctx
	repo   *mocks.NftRepository
	wallet *mocks.Wallet
	reader *mocks.ChainReader
	im     *impl
}

func (s *TransactionUsecaseTestSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.repo = &mocks.NftRepository{}
	s.wallet = &mocks.Wallet{}
	s.reader = &mocks.ChainReader{}
	s.im = New(s.repo, s.wallet, s.reader, Config{
		MarketAddress: market,
		Now:           func() time.Time { return now },
	}).(*impl)
}

func (s *TransactionUsecaseTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.wallet.AssertExpectations(s.T())
	s.reader.AssertExpectations(s.T())
}

func (s *TransactionUsecaseTestSuite) expectSubmit(function string, args ...interface{}) {
	payload := domain.EntryFunctionPayload{
		Type:          "entry_function_payload",
		Function:      string(market) + "::NFTMarketplace::" + function,
		TypeArguments: []string{},
		Arguments:     append([]interface{}{string(market)}, args...),
	}
	s.wallet.On("SignAndSubmit", mock.Anything, payload).Return(domain.TxHash("0xbeef"), nil).Once()
	s.reader.On("WaitForTransaction", mock.Anything, domain.TxHash("0xbeef")).
		Return(&domain.Transaction{Hash: "0xbeef", Type: "user_transaction", Success: true, Version: "42"}, nil).Once()
}

func (s *TransactionUsecaseTestSuite) TestPayloadArguments() {
	s.expectSubmit("end_auction", "7")
	res, err := s.im.EndAuction(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xbeef"), res.Hash)
	s.Equal("42", res.Version)

	s.expectSubmit("list_for_sale", "7", "250000000")
	_, err = s.im.ListForSale(s.ctx, 7, 250_000_000)
	s.NoError(err)

	s.expectSubmit("create_auction", "7", "100000000", "86400", "10000000")
	_, err = s.im.CreateAuction(s.ctx, 7, 100_000_000, 24*time.Hour)
	s.NoError(err)

	s.expectSubmit("transfer_nft_with_message", "7", "0x5", "0x53776f7264", true)
	_, err = s.im.TransferWithMessage(s.ctx, 7, "0x5", "Sword", true)
	s.NoError(err)

	s.expectSubmit("make_offer", "7", "50000000", "1700003600")
	_, err = s.im.MakeOffer(s.ctx, 7, 50_000_000, now.Add(time.Hour))
	s.NoError(err)

	s.expectSubmit("accept_offer", "7", "3")
	_, err = s.im.AcceptOffer(s.ctx, 7, 3)
	s.NoError(err)
}

func (s *TransactionUsecaseTestSuite) TestPurchaseUsesListedPrice() {
	s.repo.On("FindOne", mock.Anything, uint64(9)).Return(&nft.NFTRecord{
		ID:      9,
		Price:   decimal.RequireFromString("2.5"),
		ForSale: true,
	}, nil).Once()
	s.expectSubmit("purchase_nft", "9", "250000000")

	_, err := s.im.Purchase(s.ctx, 9)
	s.NoError(err)

	s.repo.On("FindOne", mock.Anything, uint64(10)).Return(&nft.NFTRecord{ID: 10}, nil).Once()
	_, err = s.im.Purchase(s.ctx, 10)
	s.ErrorIs(err, domain.ErrNotForSale)
}

func (s *TransactionUsecaseTestSuite) TestPlaceBid() {
	record := &nft.NFTRecord{
		ID:          3,
		IsAuction:   true,
		AuctionEnd:  now.Unix() + 60,
		StartingBid: 100_000_000,
		HighestBid:  140_000_000,
	}
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(record, nil).Times(3)

	_, err := s.im.PlaceBid(s.ctx, 3, 149_999_999)
	s.True(domain.IsValidationError(err))
	s.ErrorIs(err, domain.ErrBidTooLow)

	s.expectSubmit("place_bid", "3", "150000000")
	_, err = s.im.PlaceBid(s.ctx, 3, 150_000_000)
	s.NoError(err)

	record.AuctionEnd = now.Unix()
	_, err = s.im.PlaceBid(s.ctx, 3, 200_000_000)
	s.ErrorIs(err, domain.ErrAuctionEnded)

	s.repo.On("FindOne", mock.Anything, uint64(4)).Return(&nft.NFTRecord{ID: 4, ForSale: true}, nil).Once()
	_, err = s.im.PlaceBid(s.ctx, 4, 200_000_000)
	s.ErrorIs(err, domain.ErrNotOnAuction)
}

func (s *TransactionUsecaseTestSuite) TestValidationBeforeNetwork() {
	_, err := s.im.ListForSale(s.ctx, 1, 0)
	s.ErrorIs(err, domain.ErrNonPositive)

	_, err = s.im.CreateAuction(s.ctx, 1, 1, 500*time.Millisecond)
	s.ErrorIs(err, domain.ErrNonPositive)

	_, err = s.im.CreateAuction(s.ctx, 1, 0, time.Hour)
	s.ErrorIs(err, domain.ErrNonPositive)

	_, err = s.im.TransferWithMessage(s.ctx, 1, "alice", "hi", false)
	s.ErrorIs(err, domain.ErrInvalidAddress)

	_, err = s.im.MakeOffer(s.ctx, 1, 10, now)
	s.ErrorIs(err, domain.ErrExpirationPassed)

	_, err = s.im.MakeOffer(s.ctx, 1, 0, now.Add(time.Hour))
	s.ErrorIs(err, domain.ErrNonPositive)
}

func (s *TransactionUsecaseTestSuite) TestSubmissionFailures() {
	s.wallet.On("SignAndSubmit", mock.Anything, mock.Anything).Return(domain.TxHash(""), errors.New("user rejected")).Once()
	_, err := s.im.EndAuction(s.ctx, 1)
	s.True(domain.IsSubmissionError(err))

	s.wallet.On("SignAndSubmit", mock.Anything, mock.Anything).Return(domain.TxHash("0x1"), nil).Once()
	s.reader.On("WaitForTransaction", mock.Anything, domain.TxHash("0x1")).
		Return(&domain.Transaction{Hash: "0x1", Success: false, VmStatus: "Move abort: EAUCTION_NOT_ENDED"}, nil).Once()
	_, err = s.im.EndAuction(s.ctx, 1)
	s.True(domain.IsSubmissionError(err))
	s.ErrorIs(err, domain.ErrTxFailed)
	s.Contains(err.Error(), "EAUCTION_NOT_ENDED")

	s.wallet.On("SignAndSubmit", mock.Anything, mock.Anything).Return(domain.TxHash("0x2"), nil).Once()
	s.reader.On("WaitForTransaction", mock.Anything, domain.TxHash("0x2")).Return(nil, domain.ErrTxTimeout).Once()
	_, err = s.im.EndAuction(s.ctx, 1)
	s.True(domain.IsSubmissionError(err))
	s.ErrorIs(err, domain.ErrTxTimeout)
}

func (s *TransactionUsecaseTestSuite) TestSkipWait() {
	im := New(s.repo, s.wallet, s.reader, Config{MarketAddress: market, SkipWait: true})
	s.wallet.On("SignAndSubmit", mock.Anything, mock.Anything).Return(domain.TxHash("0x3"), nil).Once()

	res, err := im.EndAuction(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0x3"), res.Hash)
	s.Empty(res.Version)
}

func TestTransactionUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionUsecaseTestSuite))
}
