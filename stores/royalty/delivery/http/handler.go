package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	"github.com/x-xyz/royaltymarket/middleware"
	authMiddleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	royalty royalty.UseCase
}

func New(e *echo.Group, royalty royalty.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{royalty}

	g := e.Group("/royalty-tables")
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("/:collection/:tokenId", h.get, middleware.IsValidAddress("collection"))
	g.POST("/:collection/:tokenId/entries", h.addEntries, middleware.IsValidAddress("collection"), authMiddleware.Auth(), authMiddleware.IsManager())
	g.DELETE("/:collection/:tokenId/entries", h.removeEntries, middleware.IsValidAddress("collection"), authMiddleware.Auth(), authMiddleware.IsManager())
}

type createParams struct {
	Collection    domain.Address   `json:"collection" validate:"required,address"`
	TokenId       domain.TokenId   `json:"tokenId" validate:"required"`
	InitialHolder domain.Address   `json:"initialHolder" validate:"required,address"`
	Recipients    []domain.Address `json:"recipients"`
	Shares        []int64          `json:"shares" validate:"dive,gt=0,lte=10000"`
}

type entriesParams struct {
	Collection domain.Address   `param:"collection"`
	TokenId    domain.TokenId   `param:"tokenId"`
	Recipients []domain.Address `json:"recipients"`
	Shares     []int64          `json:"shares" validate:"dive,gt=0,lte=10000"`
}

// create
//
//	@Summary		Create royalty table
//	@Description	Admin only. Stores the table and grants royalty manager to the initial holder.
//	@Tags			royalty
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.createParams	true	"params"
//	@Success		201		{object}	object{data=royalty.Table}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/royalty-tables [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &createParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	id := domain.AssetId{Collection: p.Collection, TokenId: p.TokenId}
	if res, err := h.royalty.CreateTable(ctx, caller, id, p.InitialHolder, p.Recipients, p.Shares); err != nil {
		ctx.WithField("err", err).Warn("royalty.CreateTable failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

// get
//
//	@Summary		Get royalty table
//	@Tags			royalty
//	@Produce		json
//	@Param			collection	path		string	true	"collection address"
//	@Param			tokenId		path		string	true	"token id"
//	@Success		200			{object}	object{data=royalty.Table}
//	@Failure		404
//	@Router			/royalty-tables/{collection}/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := domain.AssetId{Collection: domain.Address(c.Param("collection")), TokenId: domain.TokenId(c.Param("tokenId"))}

	if res, err := h.royalty.GetTable(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// addEntries
//
//	@Summary		Add royalty recipients
//	@Description	Royalty manager only. Existing recipients are rejected, the total may not exceed 10000 basis points.
//	@Tags			royalty
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			collection	path		string				true	"collection address"
//	@Param			tokenId		path		string				true	"token id"
//	@Param			params		body		http.entriesParams	true	"params"
//	@Success		200			{object}	object{data=royalty.Table}
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Router			/royalty-tables/{collection}/{tokenId}/entries [post]
func (h *handler) addEntries(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &entriesParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	id := domain.AssetId{Collection: p.Collection, TokenId: p.TokenId}
	if res, err := h.royalty.AddEntries(ctx, caller, id, p.Recipients, p.Shares); err != nil {
		ctx.WithField("err", err).Warn("royalty.AddEntries failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// removeEntries
//
//	@Summary		Remove royalty recipients
//	@Description	Royalty manager only. Unknown recipients are ignored.
//	@Tags			royalty
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			collection	path		string				true	"collection address"
//	@Param			tokenId		path		string				true	"token id"
//	@Param			params		body		http.entriesParams	true	"params"
//	@Success		200			{object}	object{data=royalty.Table}
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Router			/royalty-tables/{collection}/{tokenId}/entries [delete]
func (h *handler) removeEntries(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &entriesParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	id := domain.AssetId{Collection: p.Collection, TokenId: p.TokenId}
	if res, err := h.royalty.RemoveEntries(ctx, caller, id, p.Recipients); err != nil {
		ctx.WithField("err", err).Warn("royalty.RemoveEntries failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
