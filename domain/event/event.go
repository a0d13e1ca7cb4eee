package event

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/ptr"
	"github.com/x-xyz/royaltymarket/domain"
)

type Type string

const (
	TypeListingCreated Type = "ListingCreated"
	TypeListingBought  Type = "ListingBought"
)

// Event is an entry of the append-only marketplace log
type Event struct {
	Id            string         `json:"id" bson:"id"`
	Seq           int64          `json:"seq" bson:"seq"`
	Type          Type           `json:"type" bson:"type"`
	ListingId     int64          `json:"listingId" bson:"listingId"`
	Seller        domain.Address `json:"seller,omitempty" bson:"seller,omitempty"`
	Buyer         domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Price         string         `json:"price" bson:"price"`
	FullOwnership bool           `json:"fullOwnership" bson:"fullOwnership"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
}

func ListingCreated(listingId int64, seller domain.Address, price string) Event {
	return Event{Type: TypeListingCreated, ListingId: listingId, Seller: seller, Price: price}
}

func ListingBought(listingId int64, buyer domain.Address, price string, fullOwnership bool) Event {
	return Event{Type: TypeListingBought, ListingId: listingId, Buyer: buyer, Price: price, FullOwnership: fullOwnership}
}

type FindAllOptions struct {
	AfterSeq *int64 `bson:"-"`
	Limit    *int   `bson:"-"`
	Type     *Type  `bson:"type,omitempty"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithAfterSeq(seq int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AfterSeq = ptr.Int64(seq)
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Limit = ptr.Int(limit)
		return nil
	}
}

func WithType(typ Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &typ
		return nil
	}
}

type Repo interface {
	NextSeq(c ctx.Ctx) (int64, error)
	Append(c ctx.Ctx, value Event) error
	// FindAll returns events in sequence order
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}

// Publisher fans events out to live subscribers
type Publisher interface {
	Publish(c ctx.Ctx, channel string, payload []byte) error
}

type UseCase interface {
	// Record appends e to the log within the caller's transaction
	Record(c ctx.Ctx, e Event) (*Event, error)
	// Publish fans e out after commit, failures are only logged
	Publish(c ctx.Ctx, e *Event)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}
