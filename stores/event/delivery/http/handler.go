package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain/event"
)

type handler struct {
	event event.UseCase
}

func New(e *echo.Group, event event.UseCase) {
	h := &handler{event}

	e.GET("/events", h.search)
}

// search
//
//	@Summary		Replay events
//	@Description	Marketplace events in sequence order, resume with the last seen seq
//	@Tags			event
//	@Produce		json
//	@Param			afterSeq	query		int		false	"only events with a greater seq"
//	@Param			limit		query		int		false	"limit, 100 by default"
//	@Param			type		query		string	false	"event type"	Enums(ListingCreated, ListingBought)
//	@Success		200			{object}	object{data=[]event.Event}
//	@Failure		400
//	@Router			/events [get]
func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		AfterSeq *int64      `query:"afterSeq"`
		Limit    *int        `query:"limit"`
		Type     *event.Type `query:"type"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	opts := []event.FindAllOptionsFunc{}
	if p.AfterSeq != nil {
		opts = append(opts, event.WithAfterSeq(*p.AfterSeq))
	}
	if p.Limit != nil {
		opts = append(opts, event.WithLimit(*p.Limit))
	}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}

	if res, err := h.event.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
