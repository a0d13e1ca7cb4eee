package mutex

import (
	"github.com/x-xyz/royaltymarket/base/ctx"
)

// Service is a lock shared by every api replica
type Service interface {
	// Lock blocks until key is acquired and returns the token needed to
	// release it. domain.ErrLockNotAcquired is returned once the wait limit,
	// never shorter than the lock ttl, is exceeded.
	Lock(c ctx.Ctx, key string) (token string, err error)
	// Unlock releases key if it is still held with token
	Unlock(c ctx.Ctx, key, token string) error
}
