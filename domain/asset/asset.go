package asset

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
)

// Asset is the custody record of one token
type Asset struct {
	Collection       domain.Address `json:"collection" bson:"collection"`
	TokenId          domain.TokenId `json:"tokenId" bson:"tokenId"`
	Holder           domain.Address `json:"holder" bson:"holder"`
	ApprovedOperator domain.Address `json:"approvedOperator,omitempty" bson:"approvedOperator"`
	UpdatedAt        time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (a *Asset) AssetId() domain.AssetId {
	return domain.AssetId{Collection: a.Collection, TokenId: a.TokenId}
}

type Repo interface {
	// FindOne returns domain.ErrNotFound for an unregistered asset
	FindOne(c ctx.Ctx, id domain.AssetId) (*Asset, error)
	// Create returns domain.ErrConflict for a registered asset
	Create(c ctx.Ctx, value Asset) error
	SetApprovedOperator(c ctx.Ctx, id domain.AssetId, holder, operator domain.Address) error
	// SetHolder moves custody if from still holds the asset and clears the
	// approval, otherwise it returns domain.ErrNotOwner
	SetHolder(c ctx.Ctx, id domain.AssetId, from, to domain.Address) error
}

// Registry is the custody view the marketplace depends on
type Registry interface {
	CurrentHolder(c ctx.Ctx, id domain.AssetId) (domain.Address, error)
	IsApprovedOperator(c ctx.Ctx, id domain.AssetId, operator domain.Address) (bool, error)
	// Transfer fails with domain.ErrNotOwner if from is not the current holder
	Transfer(c ctx.Ctx, id domain.AssetId, from, to domain.Address) error
}

type UseCase interface {
	Registry

	// Register seeds custody and the royalty table of a new asset, admin only
	Register(c ctx.Ctx, caller domain.Address, id domain.AssetId, holder domain.Address, recipients []domain.Address, shares []int64) (*Asset, error)
	// Approve lets operator move the asset, caller must be the holder
	Approve(c ctx.Ctx, caller domain.Address, id domain.AssetId, operator domain.Address) error
	Get(c ctx.Ctx, id domain.AssetId) (*Asset, error)
}
