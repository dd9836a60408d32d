package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/aptos-market/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// StatusOf maps the error taxonomy onto an http status, fallback is used for
// anything unclassified.
func StatusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsValidationError(err), errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case domain.IsFetchError(err), domain.IsSubmissionError(err), domain.IsDecodeError(err):
		return http.StatusBadGateway
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// ErrorResponse carries the error message alongside whatever is still worth
// showing, such as a stale snapshot.
type ErrorResponse struct {
	Error string      `json:"error"`
	Data  interface{} `json:"data,omitempty"`
}

// MakeErrorWithData responds with err's status while keeping data in the body.
func MakeErrorWithData(c echo.Context, err error, data interface{}) error {
	return c.JSON(StatusOf(err, http.StatusInternalServerError), JsonResponse{
		Data:   ErrorResponse{Error: err.Error(), Data: data},
		Status: JsonResponseStatusFail,
	})
}
