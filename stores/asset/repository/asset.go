package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/asset"
	"github.com/x-xyz/royaltymarket/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) asset.Repo {
	return &impl{q}
}

func selector(id domain.AssetId) bson.M {
	id = id.Normalize()
	return bson.M{"collection": id.Collection, "tokenId": id.TokenId}
}

func (im *impl) FindOne(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	res := &asset.Asset{}
	if err := im.q.FindOne(c, domain.TableAssets, selector(id), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value asset.Asset) error {
	id := value.AssetId().Normalize()
	value.Collection = id.Collection
	value.TokenId = id.TokenId
	value.Holder = value.Holder.ToLower()
	value.ApprovedOperator = value.ApprovedOperator.ToLower()
	if err := im.q.Insert(c, domain.TableAssets, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) SetApprovedOperator(c ctx.Ctx, id domain.AssetId, holder, operator domain.Address) error {
	return im.patchHeld(c, id, holder, bson.M{
		"approvedOperator": operator.ToLower(),
		"updatedAt":        time.Now(),
	})
}

func (im *impl) SetHolder(c ctx.Ctx, id domain.AssetId, from, to domain.Address) error {
	return im.patchHeld(c, id, from, bson.M{
		"holder":           to.ToLower(),
		"approvedOperator": domain.Address(""),
		"updatedAt":        time.Now(),
	})
}

// patchHeld applies update only while holder still holds the asset
func (im *impl) patchHeld(c ctx.Ctx, id domain.AssetId, holder domain.Address, update bson.M) error {
	slr := selector(id)
	slr["holder"] = holder.ToLower()
	if err := im.q.Patch(c, domain.TableAssets, slr, update); err == query.ErrNotFound {
		return domain.ErrNotOwner
	} else if err != nil {
		c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("q.Patch failed")
		return err
	}
	return nil
}
