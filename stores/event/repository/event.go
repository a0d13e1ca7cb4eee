package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/database/mongoclient"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/counter"
	"github.com/x-xyz/royaltymarket/domain/event"
	"github.com/x-xyz/royaltymarket/service/query"
)

const defaultLimit = 100

type impl struct {
	q        query.Mongo
	counters counter.Repo
}

func New(q query.Mongo, counters counter.Repo) event.Repo {
	return &impl{q: q, counters: counters}
}

func (im *impl) NextSeq(c ctx.Ctx) (int64, error) {
	return im.counters.Next(c, counter.NameEventSeq)
}

func (im *impl) Append(c ctx.Ctx, value event.Event) error {
	if err := im.q.Insert(c, domain.TableEvents, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{"seq": value.Seq, "err": err}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("event.GetFindAllOptions failed")
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithFields(log.Fields{"opts": opts, "err": err}).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	afterSeq := int64(0)
	if opts.AfterSeq != nil {
		afterSeq = *opts.AfterSeq
	}
	qry["seq"] = bson.M{"$gt": afterSeq}

	limit := defaultLimit
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}

	res := []*event.Event{}
	if err := im.q.Search(c, domain.TableEvents, 0, limit, "seq", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
