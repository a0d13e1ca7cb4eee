package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	"github.com/x-xyz/royaltymarket/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) royalty.Repo {
	return &impl{q}
}

func selector(id domain.AssetId) bson.M {
	id = id.Normalize()
	return bson.M{"collection": id.Collection, "tokenId": id.TokenId}
}

func (im *impl) FindOne(c ctx.Ctx, id domain.AssetId) (*royalty.Table, error) {
	res := &royalty.Table{}
	if err := im.q.FindOne(c, domain.TableRoyaltyTables, selector(id), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, table royalty.Table) error {
	if err := im.q.Insert(c, domain.TableRoyaltyTables, table); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) UpdateEntries(c ctx.Ctx, id domain.AssetId, version int64, entries []royalty.Entry) error {
	slr := selector(id)
	slr["version"] = version
	update := bson.M{
		"entries":   entries,
		"version":   version + 1,
		"updatedAt": time.Now(),
	}
	if err := im.q.Patch(c, domain.TableRoyaltyTables, slr, update); err == query.ErrNotFound {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("q.Patch failed")
		return err
	}
	return nil
}
