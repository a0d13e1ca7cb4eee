package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/ledger"
	"github.com/x-xyz/royaltymarket/middleware"
	authMiddleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
)

const defaultLimit = 50

type handler struct {
	ledger ledger.UseCase
}

func New(e *echo.Group, ledger ledger.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{ledger}

	g := e.Group("/ledger")
	g.POST("/deposits", h.deposit, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.GET("/balances/:address", h.balance, middleware.IsValidAddress("address"))
	g.GET("/transfers/:address", h.transfers, middleware.IsValidAddress("address"))
}

type depositParams struct {
	To     domain.Address `json:"to" validate:"required,address"`
	Amount string         `json:"amount" validate:"required,amount" example:"1000000000000000000"`
}

// deposit
//
//	@Summary		Deposit
//	@Description	Admin only. Credits an account.
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.depositParams	true	"params"
//	@Success		201		{object}	object{data=ledger.Balance}
//	@Failure		400
//	@Failure		403
//	@Router			/ledger/deposits [post]
func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &depositParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if res, err := h.ledger.Deposit(ctx, caller, p.To, p.Amount); err != nil {
		ctx.WithField("err", err).Warn("ledger.Deposit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

// balance
//
//	@Summary		Get balance
//	@Tags			ledger
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Success		200		{object}	object{data=ledger.Balance}
//	@Router			/ledger/balances/{address} [get]
func (h *handler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.ledger.GetBalance(ctx, domain.Address(c.Param("address"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// transfers
//
//	@Summary		List transfers
//	@Description	Credits paid or received by the address, newest first
//	@Tags			ledger
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]ledger.Transfer}
//	@Failure		400
//	@Router			/ledger/transfers/{address} [get]
func (h *handler) transfers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address"`
		Offset  int            `query:"offset"`
		Limit   int            `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}

	if res, err := h.ledger.FindTransfers(ctx, p.Address, p.Offset, p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
