package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/metrics"
	"github.com/x-xyz/royaltymarket/domain/keys"
)

var (
	compareAndDelScript = redis.NewScript(1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New wraps pool, name tags the metrics of this cluster
func New(name string, metrics metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  metrics,
		pool: pool,
	}
}

func (r *redImpl) getConn(c ctx.Ctx) (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()
	conn, err := r.pool.GetContext(c)
	if err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(c ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn(c)
	if err != nil {
		return nil, err
	}
	// close asap so the pool can hand the connection to someone else
	defer func() {
		if err := conn.Close(); err != nil {
			r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
		}
	}()
	return conn.Do(commandName, args...)
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	defer r.met.BumpTime("time", r.tags("get", key)...).End()
	return redis.Bytes(r.connDo(c, "GET", key))
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(c, "SET", key, val)
	} else {
		_, err = r.connDo(c, "SET", key, val, "PX", int64(expire/time.Millisecond))
	}
	if err != nil {
		c.WithField("err", err).Error("SET redis failed")
	}
	return err
}

func (r *redImpl) SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	defer r.met.BumpTime("time", r.tags("setnx", key)...).End()

	var err error
	if expire == Forever {
		_, err = redis.String(r.connDo(c, "SET", key, val, "NX"))
	} else {
		_, err = redis.String(r.connDo(c, "SET", key, val, "NX", "PX", int64(expire/time.Millisecond)))
	}
	if err == redis.ErrNil {
		return ErrNotSet
	}
	return err
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}
	defer r.met.BumpTime("time", r.tags("del", ks[0])...).End()

	res, err := redis.Int(r.connDo(c, "DEL", redis.Args{}.AddFlat(ks)...))
	if err != nil {
		c.WithField("err", err).Error("DEL redis failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) CompareAndDel(c ctx.Ctx, key string, val []byte) (bool, error) {
	defer r.met.BumpTime("time", r.tags("compareanddel", key)...).End()

	conn, err := r.getConn(c)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	n, err := redis.Int(compareAndDelScript.Do(conn, key, val))
	if err != nil {
		c.WithField("err", err).Error("compareAndDel script failed")
		return false, err
	}
	return n == 1, nil
}

func (r *redImpl) Publish(c ctx.Ctx, channel string, payload []byte) error {
	defer r.met.BumpTime("time", "func", "publish", "cluster", r.name, "channel", channel).End()
	if _, err := r.connDo(c, "PUBLISH", channel, payload); err != nil {
		c.WithField("err", err).Error("PUBLISH redis failed")
		return err
	}
	return nil
}

func (r *redImpl) Ping(c ctx.Ctx) error {
	_, err := r.connDo(c, "PING")
	return err
}
