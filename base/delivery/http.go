package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/service/query"
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

var errStatus = []struct {
	errs   []error
	status int
}{
	{[]error{domain.ErrNotFound, query.ErrNotFound}, http.StatusNotFound},
	{[]error{domain.ErrInvalidToken, domain.ErrInvalidSignature}, http.StatusUnauthorized},
	{[]error{domain.ErrUnauthorized, domain.ErrNotOwner, domain.ErrNotApproved}, http.StatusForbidden},
	{[]error{domain.ErrConflict, domain.ErrAlreadySold, domain.ErrLockNotAcquired}, http.StatusConflict},
	{[]error{domain.ErrInsufficientPayment, domain.ErrInsufficientFunds}, http.StatusPaymentRequired},
	{[]error{
		domain.ErrBadParamInput,
		domain.ErrInvalidAddress,
		domain.ErrInvalidRoyaltyTotal,
		domain.ErrFullOwnershipUnavailable,
	}, http.StatusBadRequest},
}

// StatusOf returns the http status of a domain error, fallback otherwise
func StatusOf(err error, fallback int) int {
	for _, es := range errStatus {
		for _, e := range es.errs {
			if errors.Is(err, e) {
				return es.status
			}
		}
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
