package usecase

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/base/priceformatter"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/asset"
	"github.com/x-xyz/royaltymarket/domain/event"
	"github.com/x-xyz/royaltymarket/domain/listing"
	"github.com/x-xyz/royaltymarket/service/query"
)

type ListingUseCaseCfg struct {
	Repo           listing.Repo
	Registry       asset.Registry
	Event          event.UseCase
	Transactor     query.Transactor
	PriceFormatter priceformatter.PriceFormatter
	// Operator is the marketplace principal sellers approve on their assets
	Operator domain.Address
}

type impl struct {
	repo           listing.Repo
	registry       asset.Registry
	event          event.UseCase
	transactor     query.Transactor
	priceFormatter priceformatter.PriceFormatter
	operator       domain.Address
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:           cfg.Repo,
		registry:       cfg.Registry,
		event:          cfg.Event,
		transactor:     cfg.Transactor,
		priceFormatter: cfg.PriceFormatter,
		operator:       cfg.Operator.ToLower(),
	}
}

func (im *impl) CreateListing(c ctx.Ctx, seller domain.Address, id domain.AssetId, price string, fullOwnershipAvailable bool) (*listing.Listing, error) {
	if seller.IsEmpty() || id.Collection.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	p, err := domain.ParseAmount(price)
	if err != nil {
		return nil, err
	}
	id = id.Normalize()

	if holder, err := im.registry.CurrentHolder(c, id); err != nil {
		c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("registry.CurrentHolder failed")
		return nil, err
	} else if !holder.Equals(seller) {
		return nil, domain.ErrNotOwner
	}

	if ok, err := im.registry.IsApprovedOperator(c, id, im.operator); err != nil {
		c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("registry.IsApprovedOperator failed")
		return nil, err
	} else if !ok {
		return nil, domain.ErrNotApproved
	}

	var (
		value    listing.Listing
		recorded *event.Event
	)
	err = im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		listingId, err := im.repo.NextId(c)
		if err != nil {
			c.WithField("err", err).Error("repo.NextId failed")
			return err
		}
		value = listing.Listing{
			ListingId:              listingId,
			Collection:             id.Collection,
			TokenId:                id.TokenId,
			Price:                  p.String(),
			Seller:                 seller.ToLower(),
			FullOwnershipAvailable: fullOwnershipAvailable,
			CreatedAt:              time.Now(),
		}
		if err := im.repo.Create(c, value); err != nil {
			c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("repo.Create failed")
			return err
		}
		recorded, err = im.event.Record(c, event.ListingCreated(listingId, value.Seller, value.Price))
		if err != nil {
			c.WithFields(log.Fields{"listingId": listingId, "err": err}).Error("event.Record failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	im.event.Publish(c, recorded)
	c.WithFields(log.Fields{"listingId": value.ListingId, "seller": value.Seller, "price": value.Price}).Info("listing created")
	return im.withDisplayPrice(&value), nil
}

func (im *impl) GetListing(c ctx.Ctx, listingId int64) (*listing.Listing, error) {
	res, err := im.repo.FindOne(c, listingId)
	if err != nil {
		return nil, err
	}
	return im.withDisplayPrice(res), nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	for _, l := range res {
		im.withDisplayPrice(l)
	}
	return res, nil
}

func (im *impl) MarkSold(c ctx.Ctx, listingId int64, buyer domain.Address) error {
	return im.repo.MarkSold(c, listingId, buyer, time.Now())
}

func (im *impl) withDisplayPrice(l *listing.Listing) *listing.Listing {
	if im.priceFormatter != nil {
		l.DisplayPrice = im.priceFormatter.FormatString(l.Price)
	}
	return l
}
