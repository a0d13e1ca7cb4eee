package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	bValidator "github.com/x-xyz/royaltymarket/base/validator"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/purchase"
	"github.com/x-xyz/royaltymarket/domain/purchase/mocks"
)

const buyer = domain.Address("0x00000000000000000000000000000000000000b1")

type handlerSuite struct {
	suite.Suite

	e        *echo.Echo
	purchase *mocks.UseCase
	h        *handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(validator.New())
	s.purchase = mocks.NewUseCase(s.T())
	s.h = &handler{s.purchase}
}

func (s *handlerSuite) newContext(id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set("ctx", ctx.Background())
	c.Set("address", buyer)
	return c, rec
}

func (s *handlerSuite) TestBuy() {
	receipt := &purchase.Receipt{ListingId: 7, Buyer: buyer, Price: "100", Paid: "120", Refund: "20"}
	s.purchase.On("BuyFromListing", mock.Anything, buyer, int64(7), "120").Return(receipt, nil).Once()

	c, rec := s.newContext("7", `{"paidAmount":"120"}`)
	s.Require().NoError(s.h.buy(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"refund":"20"`)
}

func (s *handlerSuite) TestBuyFullMapsDomainErrors() {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrAlreadySold, http.StatusConflict},
		{domain.ErrInsufficientPayment, http.StatusPaymentRequired},
		{domain.ErrFullOwnershipUnavailable, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrLockNotAcquired, http.StatusConflict},
	}
	for _, tc := range cases {
		s.purchase.On("BuyFullOwnership", mock.Anything, buyer, int64(3), "100").Return(nil, tc.err).Once()

		c, rec := s.newContext("3", `{"paidAmount":"100"}`)
		s.Require().NoError(s.h.buyFull(c))
		s.Equal(tc.status, rec.Code, tc.err.Error())
	}
}

func (s *handlerSuite) TestBadInput() {
	c, rec := s.newContext("abc", `{"paidAmount":"100"}`)
	s.Require().NoError(s.h.buy(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	c, rec = s.newContext("1", `{}`)
	s.Require().NoError(s.h.buy(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	s.purchase.AssertNotCalled(s.T(), "BuyFromListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
