package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/asset"
	"github.com/x-xyz/royaltymarket/middleware"
	authMiddleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	asset asset.UseCase
}

func New(e *echo.Group, asset asset.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{asset}

	g := e.Group("/assets")
	g.POST("", h.register, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.GET("/:collection/:tokenId", h.get, middleware.IsValidAddress("collection"))
	g.POST("/:collection/:tokenId/approve", h.approve, middleware.IsValidAddress("collection"), authMiddleware.Auth())
}

type registerParams struct {
	Collection domain.Address   `json:"collection" validate:"required,address"`
	TokenId    domain.TokenId   `json:"tokenId" validate:"required"`
	Holder     domain.Address   `json:"holder" validate:"required,address"`
	Recipients []domain.Address `json:"recipients"`
	Shares     []int64          `json:"shares" validate:"dive,gt=0,lte=10000"`
}

type approveParams struct {
	Collection domain.Address `param:"collection"`
	TokenId    domain.TokenId `param:"tokenId"`
	Operator   domain.Address `json:"operator" validate:"required,address"`
}

// register
//
//	@Summary		Register asset
//	@Description	Admin only. Seeds custody and the royalty table of a new asset.
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.registerParams	true	"params"
//	@Success		201		{object}	object{data=asset.Asset}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/assets [post]
func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &registerParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	id := domain.AssetId{Collection: p.Collection, TokenId: p.TokenId}
	if res, err := h.asset.Register(ctx, caller, id, p.Holder, p.Recipients, p.Shares); err != nil {
		ctx.WithField("err", err).Warn("asset.Register failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

// get
//
//	@Summary		Get asset custody
//	@Tags			asset
//	@Produce		json
//	@Param			collection	path		string	true	"collection address"
//	@Param			tokenId		path		string	true	"token id"
//	@Success		200			{object}	object{data=asset.Asset}
//	@Failure		404
//	@Router			/assets/{collection}/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := domain.AssetId{Collection: domain.Address(c.Param("collection")), TokenId: domain.TokenId(c.Param("tokenId"))}

	if res, err := h.asset.Get(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// approve
//
//	@Summary		Approve operator
//	@Description	Holder only. Lets operator move the asset, the marketplace operator must be approved before listing.
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			collection	path	string				true	"collection address"
//	@Param			tokenId		path	string				true	"token id"
//	@Param			params		body	http.approveParams	true	"params"
//	@Success		200
//	@Failure		403
//	@Failure		404
//	@Router			/assets/{collection}/{tokenId}/approve [post]
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &approveParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	id := domain.AssetId{Collection: p.Collection, TokenId: p.TokenId}
	if err := h.asset.Approve(ctx, caller, id, p.Operator); err != nil {
		ctx.WithField("err", err).Warn("asset.Approve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
