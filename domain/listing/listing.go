package listing

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/ptr"
	"github.com/x-xyz/royaltymarket/domain"
)

// Listing is a sale offer. It is created unsold and can be sold once.
type Listing struct {
	ListingId              int64           `json:"listingId" bson:"listingId"`
	Collection             domain.Address  `json:"collection" bson:"collection"`
	TokenId                domain.TokenId  `json:"tokenId" bson:"tokenId"`
	Price                  string          `json:"price" bson:"price"`
	DisplayPrice           decimal.Decimal `json:"displayPrice" bson:"-"`
	Seller                 domain.Address  `json:"seller" bson:"seller"`
	FullOwnershipAvailable bool            `json:"fullOwnershipAvailable" bson:"fullOwnershipAvailable"`
	Sold                   bool            `json:"sold" bson:"sold"`
	Buyer                  domain.Address  `json:"buyer,omitempty" bson:"buyer,omitempty"`
	CreatedAt              time.Time       `json:"createdAt" bson:"createdAt"`
	SoldAt                 *time.Time      `json:"soldAt,omitempty" bson:"soldAt,omitempty"`
}

func (l *Listing) AssetId() domain.AssetId {
	return domain.AssetId{Collection: l.Collection, TokenId: l.TokenId}
}

// PriceInt parses the stored price
func (l *Listing) PriceInt() (*big.Int, error) {
	return domain.ParseAmount(l.Price)
}

type FindAllOptions struct {
	SortBy     *string         `bson:"-"`
	SortDir    *domain.SortDir `bson:"-"`
	Offset     *int            `bson:"-"`
	Limit      *int            `bson:"-"`
	Seller     *domain.Address `bson:"seller,omitempty"`
	Collection *domain.Address `bson:"collection,omitempty"`
	TokenId    *domain.TokenId `bson:"tokenId,omitempty"`
	Sold       *bool           `bson:"sold,omitempty"`
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

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		s := seller.ToLower()
		options.Seller = &s
		return nil
	}
}

func WithAsset(id domain.AssetId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		id = id.Normalize()
		if !id.Collection.IsEmpty() {
			options.Collection = &id.Collection
		}
		// an empty token id searches the whole collection
		if id.TokenId != "" {
			options.TokenId = &id.TokenId
		}
		return nil
	}
}

func WithSold(sold bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sold = ptr.Bool(sold)
		return nil
	}
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = ptr.Int(offset)
		options.Limit = ptr.Int(limit)
		return nil
	}
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = ptr.String(sortBy)
		options.SortDir = &sortDir
		return nil
	}
}

type Repo interface {
	// NextId allocates the next listing id, starting at 1
	NextId(c ctx.Ctx) (int64, error)
	Create(c ctx.Ctx, value Listing) error
	// FindOne returns domain.ErrNotFound for an unknown id
	FindOne(c ctx.Ctx, listingId int64) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	// MarkSold flips sold to true, returns domain.ErrAlreadySold if the
	// listing is not unsold anymore
	MarkSold(c ctx.Ctx, listingId int64, buyer domain.Address, soldAt time.Time) error
}

type UseCase interface {
	CreateListing(c ctx.Ctx, seller domain.Address, id domain.AssetId, price string, fullOwnershipAvailable bool) (*Listing, error)
	GetListing(c ctx.Ctx, listingId int64) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	MarkSold(c ctx.Ctx, listingId int64, buyer domain.Address) error
}
