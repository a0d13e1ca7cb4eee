package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) authority.Repo {
	return &impl{q}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*authority.Manager, error) {
	res := []*authority.Manager{}

	// to prevent scancol error
	qry := bson.M{"address": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableRoyaltyManagers, 0, 0, "grantedAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*authority.Manager, error) {
	res := &authority.Manager{}
	if err := im.q.FindOne(c, domain.TableRoyaltyManagers, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value authority.Manager) error {
	value.Address = value.Address.ToLower()
	if err := im.q.Insert(c, domain.TableRoyaltyManagers, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, address domain.Address) error {
	if err := im.q.Remove(c, domain.TableRoyaltyManagers, bson.M{"address": address.ToLower()}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
