package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/base/ctx"
	bValidator "github.com/x-xyz/aptos-market/base/validator"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/mocks"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/transaction"
	offerUsecase "github.com/x-xyz/aptos-market/stores/offer/usecase"
)

type HandlerTestSuite struct {
	suite.Suite

	e    *echo.Echo
	repo *mocks.NftRepository
	tu   *mocks.TransactionUsecase
	now  time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.repo = &mocks.NftRepository{}
	s.tu = &mocks.TransactionUsecase{}
	s.now = time.Unix(1_700_000_000, 0)
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(bValidator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, offerUsecase.New(s.repo, s.tu, func() time.Time { return s.now }))
}

func (s *HandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestBookAndAccept() {
	s.repo.On("FindOffers", mock.Anything, uint64(5)).Return([]*nft.Offer{
		{OfferID: 1, NftID: 5, Buyer: "0x2", Amount: 50_000_000, Expiration: s.now.Unix() + 60},
		{OfferID: 2, NftID: 5, Buyer: "0x3", Amount: 90_000_000, Expiration: s.now.Unix() - 60},
	}, nil)

	rec := s.do(http.MethodGet, "/nfts/5/offers?live=true", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"offerId":1`)
	s.NotContains(rec.Body.String(), `"offerId":2`)

	s.tu.On("AcceptOffer", mock.Anything, uint64(5), uint64(1)).Return(&transaction.Result{Hash: "0xa"}, nil).Once()
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/nfts/5/offers/1/accept", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/nfts/5/offers/2/accept", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/nfts/5/offers/9/accept", "").Code)
	s.tu.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestMake() {
	s.tu.On("MakeOffer", mock.Anything, uint64(5), nft.MinorUnits(50_000_000), time.Unix(1_700_003_600, 0)).
		Return(&transaction.Result{Hash: "0xb"}, nil).Once()
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/nfts/5/offers", `{"amount":"0.5","expiration":1700003600}`).Code)

	s.tu.On("MakeOffer", mock.Anything, uint64(5), nft.MinorUnits(50_000_000), time.Unix(1, 0)).
		Return(nil, domain.NewValidationError("expiration", domain.ErrExpirationPassed)).Once()
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/nfts/5/offers", `{"amount":"0.5","expiration":1}`).Code)
	s.tu.AssertExpectations(s.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
