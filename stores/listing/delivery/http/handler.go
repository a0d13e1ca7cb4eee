package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/listing"
	authMiddleware "github.com/x-xyz/royaltymarket/stores/auth/delivery/http/middleware"
)

const defaultLimit = 50

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Group, listing listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listing}

	g := e.Group("/listings")
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("", h.search)
	g.GET("/:id", h.get)
}

type createParams struct {
	Collection             domain.Address `json:"collection" validate:"required,address"`
	TokenId                domain.TokenId `json:"tokenId" validate:"required"`
	Price                  string         `json:"price" validate:"required,amount" example:"1000000000000000000"`
	FullOwnershipAvailable bool           `json:"fullOwnershipAvailable"`
}

type searchParams struct {
	Seller     *domain.Address `query:"seller"`
	Collection *domain.Address `query:"collection"`
	TokenId    *domain.TokenId `query:"tokenId"`
	Sold       *bool           `query:"sold"`
	Offset     *int            `query:"offset"`
	Limit      *int            `query:"limit"`
	SortDir    *string         `query:"sortDir" enums:"asc,desc"`
}

// create
//
//	@Summary		Create listing
//	@Description	The caller must hold the asset and approve the marketplace operator on it
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.createParams	true	"params"
//	@Success		201		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		403
//	@Router			/listings [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	p := &createParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	id := domain.AssetId{Collection: p.Collection, TokenId: p.TokenId}
	if res, err := h.listing.CreateListing(ctx, seller, id, p.Price, p.FullOwnershipAvailable); err != nil {
		ctx.WithField("err", err).Warn("listing.CreateListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

// search
//
//	@Summary		Search listings
//	@Tags			listing
//	@Produce		json
//	@Param			seller		query		string	false	"seller address"
//	@Param			collection	query		string	false	"collection address"
//	@Param			tokenId		query		string	false	"token id, needs collection"
//	@Param			sold		query		bool	false	"sold state"
//	@Param			offset		query		int		false	"offset"
//	@Param			limit		query		int		false	"limit"
//	@Param			sortDir		query		string	false	"listing id order"	Enums(asc, desc)
//	@Success		200			{object}	object{data=[]listing.Listing}
//	@Failure		400
//	@Router			/listings [get]
func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &searchParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	offset, limit := 0, defaultLimit
	if p.Offset != nil {
		offset = *p.Offset
	}
	if p.Limit != nil {
		limit = *p.Limit
	}
	opts := []listing.FindAllOptionsFunc{listing.WithPagination(offset, limit)}
	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}
	if p.Collection != nil {
		id := domain.AssetId{Collection: *p.Collection}
		if p.TokenId != nil {
			id.TokenId = *p.TokenId
		}
		opts = append(opts, listing.WithAsset(id))
	}
	if p.Sold != nil {
		opts = append(opts, listing.WithSold(*p.Sold))
	}
	if p.SortDir != nil && *p.SortDir == "desc" {
		opts = append(opts, listing.WithSort("listingId", domain.SortDirDesc))
	}

	if res, err := h.listing.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// get
//
//	@Summary		Get listing
//	@Tags			listing
//	@Produce		json
//	@Param			id	path		int	true	"listing id"
//	@Success		200	{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		404
//	@Router			/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if res, err := h.listing.GetListing(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
