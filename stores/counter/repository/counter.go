package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/counter"
	"github.com/x-xyz/royaltymarket/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) counter.Repo {
	return &impl{q}
}

func (im *impl) Next(c ctx.Ctx, name string) (int64, error) {
	res := counter.Counter{}
	if err := im.q.Increment(c, domain.TableCounters, bson.M{"name": name}, &res, "seq", int64(1)); err != nil {
		c.WithFields(log.Fields{"name": name, "err": err}).Error("q.Increment failed")
		return 0, err
	}
	return res.Seq, nil
}
