package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/ethereum"
	"github.com/x-xyz/royaltymarket/base/validator"
	"github.com/x-xyz/royaltymarket/domain"
)

const defaultTTL = 24 * time.Hour

type AuthUseCaseCfg struct {
	JwtSecret   string
	TTL         time.Duration
	SignMessage string
}

type impl struct {
	jwtSecret   []byte
	ttl         time.Duration
	signMessage string
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &impl{
		jwtSecret:   []byte(cfg.JwtSecret),
		ttl:         ttl,
		signMessage: cfg.SignMessage,
	}
}

func (im *impl) SignMessage() string {
	return im.signMessage
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	if ok, err := ethereum.ValidateMsgSignature([]byte(im.signMessage), signature, string(address)); err != nil {
		c.WithField("err", err).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid && claims.Address != "" {
		return domain.Address(claims.Address), nil
	}
	return "", domain.ErrInvalidToken
}
