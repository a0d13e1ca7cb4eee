package purchase

import (
	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
)

type Mode string

const (
	ModeRoyalty       Mode = "royalty"
	ModeFullOwnership Mode = "full"
)

type Payment struct {
	Recipient   domain.Address `json:"recipient"`
	BasisPoints int64          `json:"basisPoints"`
	Amount      string         `json:"amount"`
}

// Receipt describes a completed purchase. Only Price is taken from the buyer,
// Refund is the part of Paid that was never moved.
type Receipt struct {
	ListingId     int64          `json:"listingId"`
	Buyer         domain.Address `json:"buyer"`
	Seller        domain.Address `json:"seller"`
	Price         string         `json:"price"`
	Paid          string         `json:"paid"`
	Refund        string         `json:"refund"`
	Royalties     []Payment      `json:"royalties"`
	SellerShare   string         `json:"sellerShare"`
	FullOwnership bool           `json:"fullOwnership"`
}

type UseCase interface {
	BuyFromListing(c ctx.Ctx, buyer domain.Address, listingId int64, paidAmount string) (*Receipt, error)
	BuyFullOwnership(c ctx.Ctx, buyer domain.Address, listingId int64, paidAmount string) (*Receipt, error)
}
