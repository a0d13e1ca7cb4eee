package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/middleware"
	authMiddleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	authority authority.UseCase
}

func New(e *echo.Group, authority authority.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{authority}

	g := e.Group("/royalty-managers")
	g.GET("", h.getAll)
	g.GET("/:address", h.isManager, middleware.IsValidAddress("address"))
	g.POST("", h.grant, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.POST("/transfer", h.transfer, authMiddleware.Auth())
}

type principalParams struct {
	Address domain.Address `json:"address" validate:"required,address"`
}

// getAll
//
//	@Summary		List royalty managers
//	@Tags			authority
//	@Produce		json
//	@Success		200	{object}	object{data=[]authority.Manager}
//	@Router			/royalty-managers [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.authority.FindAll(ctx); err != nil {
		ctx.WithField("err", err).Error("authority.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// isManager
//
//	@Summary		Check royalty manager membership
//	@Tags			authority
//	@Produce		json
//	@Param			address	path		string	true	"address"
//	@Success		200		{object}	object{data=bool}
//	@Router			/royalty-managers/{address} [get]
func (h *handler) isManager(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.authority.IsManager(ctx, domain.Address(c.Param("address"))); err != nil {
		ctx.WithField("err", err).Error("authority.IsManager failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// grant
//
//	@Summary		Grant royalty manager
//	@Description	Admin only
//	@Tags			authority
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.principalParams	true	"params"
//	@Success		201
//	@Failure		400
//	@Failure		403
//	@Router			/royalty-managers [post]
func (h *handler) grant(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &principalParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.authority.AdminGrant(ctx, caller, p.Address); err != nil {
		ctx.WithField("err", err).Warn("authority.AdminGrant failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

// transfer
//
//	@Summary		Transfer royalty manager
//	@Description	Moves the caller's membership to the given successor
//	@Tags			authority
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.principalParams	true	"successor"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Router			/royalty-managers/transfer [post]
func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &principalParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.authority.Transfer(ctx, caller, p.Address); err != nil {
		ctx.WithField("err", err).Warn("authority.Transfer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
