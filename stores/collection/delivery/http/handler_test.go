package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/aptos-market/base/ctx"
	bValidator "github.com/x-xyz/aptos-market/base/validator"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/mocks"
	"github.com/x-xyz/aptos-market/domain/nft"
	collectionUsecase "github.com/x-xyz/aptos-market/stores/collection/usecase"
)

func TestGetOwned(t *testing.T) {
	repo := &mocks.NftRepository{}
	e := echo.New()
	e.Validator = bValidator.NewCustomValidator(bValidator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, collectionUsecase.New(repo, collectionUsecase.Config{}))

	owner := domain.Address("0x5")
	repo.On("FindByOwner", mock.Anything, owner).Return([]*nft.NFTRecord{
		{ID: 1, Owner: owner, Name: "Sword", Price: decimal.Zero, Rarity: nft.RarityCommon},
		{ID: 2, Owner: owner, Name: "Bow", Price: decimal.Zero, Rarity: nft.RarityRare},
	}, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owners/0x5/nfts?rarity=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total":1`)
	require.Contains(t, rec.Body.String(), "Bow")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owners/bob/nfts", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertExpectations(t)
}
