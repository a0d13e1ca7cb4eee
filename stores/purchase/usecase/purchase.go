package usecase

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/base/metrics"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/asset"
	"github.com/x-xyz/royaltymarket/domain/event"
	"github.com/x-xyz/royaltymarket/domain/keys"
	"github.com/x-xyz/royaltymarket/domain/ledger"
	"github.com/x-xyz/royaltymarket/domain/listing"
	"github.com/x-xyz/royaltymarket/domain/purchase"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	"github.com/x-xyz/royaltymarket/service/mutex"
	"github.com/x-xyz/royaltymarket/service/query"
)

var met = metrics.New("purchase")

type PurchaseUseCaseCfg struct {
	Listing    listing.UseCase
	Royalty    royalty.UseCase
	Ledger     ledger.Ledger
	Registry   asset.Registry
	Event      event.UseCase
	Mutex      mutex.Service
	Transactor query.Transactor
}

type impl struct {
	listing    listing.UseCase
	royalty    royalty.UseCase
	ledger     ledger.Ledger
	registry   asset.Registry
	event      event.UseCase
	mutex      mutex.Service
	transactor query.Transactor
}

func New(cfg *PurchaseUseCaseCfg) purchase.UseCase {
	return &impl{
		listing:    cfg.Listing,
		royalty:    cfg.Royalty,
		ledger:     cfg.Ledger,
		registry:   cfg.Registry,
		event:      cfg.Event,
		mutex:      cfg.Mutex,
		transactor: cfg.Transactor,
	}
}

func (im *impl) BuyFromListing(c ctx.Ctx, buyer domain.Address, listingId int64, paidAmount string) (*purchase.Receipt, error) {
	return im.buy(c, purchase.ModeRoyalty, buyer, listingId, paidAmount)
}

func (im *impl) BuyFullOwnership(c ctx.Ctx, buyer domain.Address, listingId int64, paidAmount string) (*purchase.Receipt, error) {
	return im.buy(c, purchase.ModeFullOwnership, buyer, listingId, paidAmount)
}

func (im *impl) buy(c ctx.Ctx, mode purchase.Mode, buyer domain.Address, listingId int64, paidAmount string) (_ *purchase.Receipt, err error) {
	defer met.BumpTime("buy.time", "mode", string(mode)).End()
	defer func() {
		if err != nil {
			met.BumpSum("buy.err", 1, "mode", string(mode))
		}
	}()

	if buyer.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	paid, err := domain.ParseBalance(paidAmount)
	if err != nil {
		return nil, err
	}

	c = ctx.WithValues(c, map[string]interface{}{"listingId": listingId, "buyer": buyer, "mode": mode})

	key := keys.RedisKey(keys.PfxListingLock, strconv.FormatInt(listingId, 10))
	token, err := im.mutex.Lock(c, key)
	if err != nil {
		c.WithField("err", err).Error("mutex.Lock failed")
		return nil, err
	}
	defer func() {
		if err := im.mutex.Unlock(c, key, token); err != nil {
			c.WithField("err", err).Warn("mutex.Unlock failed")
		}
	}()

	var (
		receipt  *purchase.Receipt
		recorded *event.Event
	)
	err = im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.listing.GetListing(c, listingId)
		if err != nil {
			return err
		}
		if l.Sold {
			return domain.ErrAlreadySold
		}
		full := mode == purchase.ModeFullOwnership
		if full && !l.FullOwnershipAvailable {
			return domain.ErrFullOwnershipUnavailable
		}
		price, err := l.PriceInt()
		if err != nil {
			c.WithFields(log.Fields{"price": l.Price, "err": err}).Error("listing.PriceInt failed")
			return err
		}
		if paid.Cmp(price) < 0 {
			return domain.ErrInsufficientPayment
		}

		entries, err := im.entries(c, l.AssetId())
		if err != nil {
			return err
		}
		split := royalty.ComputeSplit(price, entries)

		payments := make([]ledger.Payment, 0, len(split.Royalties)+1)
		for _, s := range split.Royalties {
			payments = append(payments, ledger.Payment{To: s.Recipient, Amount: s.Amount})
		}
		payments = append(payments, ledger.Payment{To: l.Seller, Amount: split.SellerShare})
		memo := fmt.Sprintf("listing:%d", listingId)
		if err := im.ledger.AtomicSplit(c, buyer, payments, memo); err != nil {
			c.WithField("err", err).Error("ledger.AtomicSplit failed")
			return err
		}

		if full {
			if err := im.registry.Transfer(c, l.AssetId(), l.Seller, buyer); err != nil {
				c.WithField("err", err).Error("registry.Transfer failed")
				return err
			}
		}

		if err := im.listing.MarkSold(c, listingId, buyer); err != nil {
			c.WithField("err", err).Error("listing.MarkSold failed")
			return err
		}

		recorded, err = im.event.Record(c, event.ListingBought(listingId, buyer, l.Price, full))
		if err != nil {
			c.WithField("err", err).Error("event.Record failed")
			return err
		}

		receipt = newReceipt(l, buyer, paid, price, entries, split, full)
		return nil
	})
	if err != nil {
		return nil, err
	}

	im.event.Publish(c, recorded)
	met.BumpSum("buy.count", 1, "mode", string(mode))
	c.WithFields(log.Fields{"price": receipt.Price, "refund": receipt.Refund}).Info("listing bought")
	return receipt, nil
}

// entries reads the royalty table of id, an asset without a table pays
// everything to the seller
func (im *impl) entries(c ctx.Ctx, id domain.AssetId) ([]royalty.Entry, error) {
	t, err := im.royalty.GetTable(c, id)
	if err == domain.ErrNotFound {
		c.WithField("id", id.String()).Warn("no royalty table")
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("royalty.GetTable failed")
		return nil, err
	}
	return t.Entries, nil
}

func newReceipt(l *listing.Listing, buyer domain.Address, paid, price *big.Int, entries []royalty.Entry, split royalty.Split, full bool) *purchase.Receipt {
	royalties := make([]purchase.Payment, 0, len(split.Royalties))
	for i, s := range split.Royalties {
		royalties = append(royalties, purchase.Payment{
			Recipient:   s.Recipient,
			BasisPoints: entries[i].BasisPoints,
			Amount:      s.Amount.String(),
		})
	}
	return &purchase.Receipt{
		ListingId:     l.ListingId,
		Buyer:         buyer.ToLower(),
		Seller:        l.Seller,
		Price:         price.String(),
		Paid:          paid.String(),
		Refund:        new(big.Int).Sub(paid, price).String(),
		Royalties:     royalties,
		SellerShare:   split.SellerShare.String(),
		FullOwnership: full,
	}
}
