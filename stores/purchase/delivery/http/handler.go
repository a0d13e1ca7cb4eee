package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/purchase"
	authMiddleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	purchase purchase.UseCase
}

func New(e *echo.Group, purchase purchase.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{purchase}

	g := e.Group("/listings")
	g.POST("/:id/buy", h.buy, authMiddleware.Auth())
	g.POST("/:id/buy-full", h.buyFull, authMiddleware.Auth())
}

type buyParams struct {
	PaidAmount string `json:"paidAmount" validate:"required" example:"1000000000000000000"`
}

type buyFunc func(c ctx.Ctx, buyer domain.Address, listingId int64, paidAmount string) (*purchase.Receipt, error)

// buy
//
//	@Summary		Buy listing
//	@Description	Pays the price out of the caller's balance, split between royalty recipients and the seller. Custody stays with the seller.
//	@Tags			purchase
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id		path		int				true	"listing id"
//	@Param			params	body		http.buyParams	true	"params"
//	@Success		200		{object}	object{data=purchase.Receipt}
//	@Failure		400
//	@Failure		402
//	@Failure		404
//	@Failure		409
//	@Router			/listings/{id}/buy [post]
func (h *handler) buy(c echo.Context) error {
	return h.do(c, h.purchase.BuyFromListing)
}

// buyFull
//
//	@Summary		Buy full ownership
//	@Description	Same as buy, custody of the asset moves to the caller
//	@Tags			purchase
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id		path		int				true	"listing id"
//	@Param			params	body		http.buyParams	true	"params"
//	@Success		200		{object}	object{data=purchase.Receipt}
//	@Failure		400
//	@Failure		402
//	@Failure		404
//	@Failure		409
//	@Router			/listings/{id}/buy-full [post]
func (h *handler) buyFull(c echo.Context) error {
	return h.do(c, h.purchase.BuyFullOwnership)
}

func (h *handler) do(c echo.Context, fn buyFunc) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := &buyParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if res, err := fn(ctx, buyer, id, p.PaidAmount); err != nil {
		ctx.WithFields(log.Fields{"listingId": id, "err": err}).Warn("purchase failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
