package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/database/mongoclient"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/counter"
	"github.com/x-xyz/royaltymarket/domain/listing"
	"github.com/x-xyz/royaltymarket/service/query"
)

type impl struct {
	q        query.Mongo
	counters counter.Repo
}

func New(q query.Mongo, counters counter.Repo) listing.Repo {
	return &impl{q: q, counters: counters}
}

func (im *impl) NextId(c ctx.Ctx) (int64, error) {
	return im.counters.Next(c, counter.NameListingId)
}

func (im *impl) Create(c ctx.Ctx, value listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, listingId int64) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"listingId": listingId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	var (
		offset = 0
		limit  = 0
		sort   = "listingId"
	)
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}
	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithFields(log.Fields{"opts": opts, "err": err}).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := []*listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) MarkSold(c ctx.Ctx, listingId int64, buyer domain.Address, soldAt time.Time) error {
	slr := bson.M{"listingId": listingId, "sold": false}
	update := bson.M{
		"sold":   true,
		"buyer":  buyer.ToLower(),
		"soldAt": soldAt,
	}
	if err := im.q.Patch(c, domain.TableListings, slr, update); err == query.ErrNotFound {
		return domain.ErrAlreadySold
	} else if err != nil {
		c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("q.Patch failed")
		return err
	}
	return nil
}
