package royalty

import (
	"math/big"
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
)

// MaxBasisPoints is 100% in basis points
const MaxBasisPoints = 10000

var bigMaxBasisPoints = big.NewInt(MaxBasisPoints)

type Entry struct {
	Recipient   domain.Address `json:"recipient" bson:"recipient"`
	BasisPoints int64          `json:"basisPoints" bson:"basisPoints"`
}

// Table is the royalty table of one asset. Entries keep insertion order.
type Table struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Entries    []Entry        `json:"entries" bson:"entries"`
	Version    int64          `json:"version" bson:"version"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (t *Table) AssetId() domain.AssetId {
	return domain.AssetId{Collection: t.Collection, TokenId: t.TokenId}
}

func (t *Table) TotalBasisPoints() int64 {
	return sum(t.Entries)
}

func (t *Table) Has(recipient domain.Address) bool {
	for _, e := range t.Entries {
		if e.Recipient.Equals(recipient) {
			return true
		}
	}
	return false
}

// WithAdded returns the entries of t followed by added. A recipient already in
// the table or a total above MaxBasisPoints is rejected; t is not modified.
func (t *Table) WithAdded(added []Entry) ([]Entry, error) {
	for _, e := range added {
		if !inRange(e.BasisPoints) || t.Has(e.Recipient) {
			return nil, domain.ErrInvalidRoyaltyTotal
		}
	}
	if t.TotalBasisPoints()+sum(added) > MaxBasisPoints {
		return nil, domain.ErrInvalidRoyaltyTotal
	}
	res := make([]Entry, 0, len(t.Entries)+len(added))
	res = append(res, t.Entries...)
	return append(res, added...), nil
}

// WithRemoved returns the entries of t without the given recipients, survivors
// keep their order. Unknown recipients are ignored.
func (t *Table) WithRemoved(recipients []domain.Address) []Entry {
	drop := make(map[domain.Address]bool, len(recipients))
	for _, r := range recipients {
		drop[r.ToLower()] = true
	}
	res := make([]Entry, 0, len(t.Entries))
	for _, e := range t.Entries {
		if !drop[e.Recipient.ToLower()] {
			res = append(res, e)
		}
	}
	return res
}

// NewEntries pairs recipients with shares. Lengths must match, every share
// must be in (0, MaxBasisPoints], recipients must be distinct and the sum must not exceed
// MaxBasisPoints.
func NewEntries(recipients []domain.Address, shares []int64) ([]Entry, error) {
	if len(recipients) != len(shares) {
		return nil, domain.ErrInvalidRoyaltyTotal
	}
	seen := make(map[domain.Address]bool, len(recipients))
	entries := make([]Entry, 0, len(recipients))
	for i, r := range recipients {
		if r.IsEmpty() {
			return nil, domain.ErrInvalidAddress
		}
		r = r.ToLower()
		if !inRange(shares[i]) || seen[r] {
			return nil, domain.ErrInvalidRoyaltyTotal
		}
		seen[r] = true
		entries = append(entries, Entry{Recipient: r, BasisPoints: shares[i]})
	}
	if sum(entries) > MaxBasisPoints {
		return nil, domain.ErrInvalidRoyaltyTotal
	}
	return entries, nil
}

// inRange bounds a single share so sums of a table's shares can not overflow
func inRange(bp int64) bool {
	return bp > 0 && bp <= MaxBasisPoints
}

func sum(entries []Entry) int64 {
	total := int64(0)
	for _, e := range entries {
		total += e.BasisPoints
	}
	return total
}

// Share is the amount one recipient gets out of a sale
type Share struct {
	Recipient domain.Address
	Amount    *big.Int
}

// Split is the distribution of a sale price
type Split struct {
	Royalties   []Share
	SellerShare *big.Int
}

// ComputeSplit gives each entry floor(price * basisPoints / 10000) and the
// seller whatever is left, so the shares always add up to price.
func ComputeSplit(price *big.Int, entries []Entry) Split {
	split := Split{
		Royalties:   make([]Share, 0, len(entries)),
		SellerShare: new(big.Int).Set(price),
	}
	for _, e := range entries {
		amount := new(big.Int).Mul(price, big.NewInt(e.BasisPoints))
		amount.Quo(amount, bigMaxBasisPoints)
		split.Royalties = append(split.Royalties, Share{Recipient: e.Recipient, Amount: amount})
		split.SellerShare.Sub(split.SellerShare, amount)
	}
	return split
}

type Repo interface {
	// FindOne returns domain.ErrNotFound for an unknown asset
	FindOne(c ctx.Ctx, id domain.AssetId) (*Table, error)
	// Create returns domain.ErrConflict if the asset already has a table
	Create(c ctx.Ctx, table Table) error
	// UpdateEntries replaces the entries if the stored version still equals
	// version, otherwise it returns domain.ErrConflict
	UpdateEntries(c ctx.Ctx, id domain.AssetId, version int64, entries []Entry) error
}

type UseCase interface {
	CreateTable(c ctx.Ctx, caller domain.Address, id domain.AssetId, initialHolder domain.Address, recipients []domain.Address, shares []int64) (*Table, error)
	AddEntries(c ctx.Ctx, caller domain.Address, id domain.AssetId, recipients []domain.Address, shares []int64) (*Table, error)
	RemoveEntries(c ctx.Ctx, caller domain.Address, id domain.AssetId, recipients []domain.Address) (*Table, error)
	GetTable(c ctx.Ctx, id domain.AssetId) (*Table, error)
}
