package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/database/mongoclient"
	hcdomain "github.com/x-xyz/royaltymarket/domain/healthcheck"
	"github.com/x-xyz/royaltymarket/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient *mongoclient.Client
	redis     redis.Service
}

func New(mgoClient *mongoclient.Client, redis redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
		redis:     redis,
	}
}

func (im *impl) PingDB(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(tc, readpref.Primary()); err != nil {
		c.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingRedis(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	if err := im.redis.Ping(tc); err != nil {
		c.WithField("err", err).Error("ping redis error")
		return err
	}
	return nil
}
