package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/aptos-market/base/ctx"
)

func TestIsValidAddress(t *testing.T) {
	e := echo.New()
	m := InitMiddleware()
	e.Use(m.AddContext())
	e.GET("/owners/:owner", func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		require.True(t, ok)
		return c.String(http.StatusOK, c.Param("owner"))
	}, IsValidAddress("owner"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owners/0x1a", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0x1a", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owners/alice", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"fail"`)
}
