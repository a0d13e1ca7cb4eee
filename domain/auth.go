package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/royaltymarket/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken verifies a wallet signature of the login message and issues a token
	SignToken(c ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(c ctx.Ctx, token string) (Address, error)
	// SignMessage is the text a wallet has to sign to log in
	SignMessage() string
}
