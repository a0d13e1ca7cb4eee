package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/royaltymarket/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrNotApproved, http.StatusForbidden},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrAlreadySold, http.StatusConflict},
		{domain.ErrInsufficientPayment, http.StatusPaymentRequired},
		{domain.ErrInvalidRoyaltyTotal, http.StatusBadRequest},
		{xerrors.Errorf("buy: %w", domain.ErrAlreadySold), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusOf(tc.err, http.StatusInternalServerError), tc.err.Error())
	}
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, MakeJsonResp(c, http.StatusInternalServerError, domain.ErrAlreadySold))
	assert.Equal(t, http.StatusConflict, rec.Code)

	res := JsonResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, JsonResponseStatusFail, res.Status)
	assert.Equal(t, domain.ErrAlreadySold.Error(), res.Data)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, MakeJsonResp(c, http.StatusOK, "ok"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":"ok"}`, rec.Body.String())
}
