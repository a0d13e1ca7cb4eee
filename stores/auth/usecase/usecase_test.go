package usecase_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/stores/auth/usecase"
)

const message = "sign in to royalty market"

func signer(t *testing.T, msg string) (domain.Address, string) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	require.NoError(t, err)
	return domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()), hexutil.Encode(sig)
}

func TestSignAndParseToken(t *testing.T) {
	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{JwtSecret: "jwt-secret", SignMessage: message})
	address, sig := signer(t, message)

	tkn, err := u.SignToken(c, address, sig)
	require.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(c, tkn)
	assert.NoError(t, err)
	assert.Equal(t, address.ToLower(), ads)
}

func TestSignTokenRejectsBadSignature(t *testing.T) {
	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{JwtSecret: "jwt-secret", SignMessage: message})
	address, _ := signer(t, message)
	_, otherSig := signer(t, message)

	_, err := u.SignToken(c, address, otherSig)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, wrongMsgSig := signer(t, "something else")
	_, err = u.SignToken(c, address, wrongMsgSig)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = u.SignToken(c, address, "0xdeadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = u.SignToken(c, "not-an-address", otherSig)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestParseTokenRejects(t *testing.T) {
	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{JwtSecret: "jwt-secret", SignMessage: message})

	_, err := u.ParseToken(c, "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.JwtCustomClaims{
		Address:        "0xabc",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})
	forged, err := other.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = u.ParseToken(c, forged)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.JwtCustomClaims{
		Address:        "0xabc",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()},
	})
	old, err := expired.SignedString([]byte("jwt-secret"))
	require.NoError(t, err)
	_, err = u.ParseToken(c, old)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
