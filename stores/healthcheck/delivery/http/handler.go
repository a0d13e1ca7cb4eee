package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	hcdomain "github.com/x-xyz/royaltymarket/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Group, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary		Health check
//	@Description	Ping mongo and redis
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	object{data=string}
//	@Failure		503
//	@Router			/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err.Error())
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
