package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Group, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/message", handler.getSignMessage)
}

type signParams struct {
	Address   domain.Address `json:"address" validate:"required,address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"`
	Signature string         `json:"signature" validate:"required" example:"0x..."`
}

// sign
//
//	@Summary		Get access token
//	@Description	Exchange a personal_sign of the login message for an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.signParams	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		401
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &signParams{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address, p.Signature); err != nil {
		ctx.WithField("err", err).Warn("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// getSignMessage
//
//	@Summary		Get login message
//	@Description	The message a wallet signs to obtain an access token
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{data=string}
//	@Router			/auth/message [get]
func (h *authHandler) getSignMessage(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.auth.SignMessage())
}
