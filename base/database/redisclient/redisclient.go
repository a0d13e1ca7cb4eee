package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/royaltymarket/base/backoff"
	"github.com/x-xyz/royaltymarket/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
)

// Config is the connection setting of one redis instance
type Config struct {
	URI      string
	Password string
	// PoolMultiplier scales the pool size by the number of cpus, 0 keeps the defaults
	PoolMultiplier float64
	// DialRetries is how many times a failed first dial is retried
	DialRetries int
}

// MustConnectRedis panics if the connection fails
func MustConnectRedis(cfg Config) *redis.Pool {
	p, err := ConnectRedis(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

func newPool(cfg Config) *redis.Pool {
	maxIdle := 200
	maxActive := 1024
	if cfg.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * cfg.PoolMultiplier / 4)
		maxActive = int(cpu * cfg.PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.URI, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis builds a pool and makes sure one connection can be opened
func ConnectRedis(cfg Config) (*redis.Pool, error) {
	p := newPool(cfg)
	b := backoff.NewExponential(time.Second, 8*time.Second)

	var err error
	for i := 0; i <= cfg.DialRetries; i++ {
		if i > 0 {
			if err := b.Backoff(context.Background()); err != nil {
				return nil, err
			}
		}
		if err = ping(p); err == nil {
			log.Log().WithField("redisURI", cfg.URI).Info("redis connected")
			return p, nil
		}
		log.Log().WithFields(log.Fields{
			"redisURI": cfg.URI,
			"err":      err,
			"retry":    i,
		}).Error("fail to dial Redis")
	}
	return nil, err
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
