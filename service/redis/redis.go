package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
)

// Forever is the expire value for keys without ttl
const Forever = time.Duration(-1)

var (
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("redis: key already exists")
)

// Service is the redis subset the marketplace uses
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX returns ErrNotSet if key already exists
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	// CompareAndDel deletes key only while it still holds val
	CompareAndDel(c ctx.Ctx, key string, val []byte) (bool, error)
	Publish(c ctx.Ctx, channel string, payload []byte) error
	Ping(c ctx.Ctx) error
}
