package mutex

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/royaltymarket/base/backoff"
	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/service/redis"
)

type Config struct {
	Redis redis.Service
	// TTL bounds how long a crashed holder can keep the lock
	TTL time.Duration
	// MaxWait bounds how long Lock keeps retrying. It is raised to TTL when
	// shorter, a waiter outlives any holder that does not release.
	MaxWait    time.Duration
	RetryStart time.Duration
	RetryLimit time.Duration
}

type impl struct {
	redis      redis.Service
	ttl        time.Duration
	maxWait    time.Duration
	retryStart time.Duration
	retryLimit time.Duration
}

func New(cfg *Config) Service {
	maxWait := cfg.MaxWait
	if maxWait < cfg.TTL {
		maxWait = cfg.TTL
	}
	return &impl{
		redis:      cfg.Redis,
		ttl:        cfg.TTL,
		maxWait:    maxWait,
		retryStart: cfg.RetryStart,
		retryLimit: cfg.RetryLimit,
	}
}

func (im *impl) Lock(c ctx.Ctx, key string) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(im.maxWait)
	b := backoff.NewExponential(im.retryStart, im.retryLimit)
	for {
		err := im.redis.SetNX(c, key, []byte(token), im.ttl)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, redis.ErrNotSet) {
			c.WithFields(log.Fields{"key": key, "err": err}).Error("redis.SetNX failed")
			return "", err
		}
		if time.Now().Add(b.NextDuration).After(deadline) {
			return "", domain.ErrLockNotAcquired
		}
		if err := b.Backoff(c); err != nil {
			return "", err
		}
	}
}

func (im *impl) Unlock(c ctx.Ctx, key, token string) error {
	released, err := im.redis.CompareAndDel(c, key, []byte(token))
	if err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Error("redis.CompareAndDel failed")
		return err
	}
	if !released {
		// ttl expired while the holder was still working
		c.WithField("key", key).Warn("lock was not held anymore")
	}
	return nil
}
