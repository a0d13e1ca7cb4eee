package usecase

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/asset"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	"github.com/x-xyz/royaltymarket/service/query"
)

type AssetUseCaseCfg struct {
	Repo       asset.Repo
	Royalty    royalty.UseCase
	Gate       authority.Gate
	Transactor query.Transactor
}

type impl struct {
	repo       asset.Repo
	royalty    royalty.UseCase
	gate       authority.Gate
	transactor query.Transactor
}

func New(cfg *AssetUseCaseCfg) asset.UseCase {
	return &impl{
		repo:       cfg.Repo,
		royalty:    cfg.Royalty,
		gate:       cfg.Gate,
		transactor: cfg.Transactor,
	}
}

func (im *impl) Get(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	return im.repo.FindOne(c, id.Normalize())
}

func (im *impl) Register(c ctx.Ctx, caller domain.Address, id domain.AssetId, holder domain.Address, recipients []domain.Address, shares []int64) (*asset.Asset, error) {
	if !im.gate.IsAdmin(caller) {
		return nil, domain.ErrUnauthorized
	}
	if id.Collection.IsEmpty() || holder.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if len(id.TokenId) == 0 {
		return nil, domain.ErrBadParamInput
	}

	id = id.Normalize()
	value := asset.Asset{
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Holder:     holder.ToLower(),
		UpdatedAt:  time.Now(),
	}

	err := im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.Create(c, value); err != nil {
			c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("repo.Create failed")
			return err
		}
		if _, err := im.royalty.CreateTable(c, caller, id, holder, recipients, shares); err != nil {
			c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("royalty.CreateTable failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (im *impl) Approve(c ctx.Ctx, caller domain.Address, id domain.AssetId, operator domain.Address) error {
	id = id.Normalize()
	a, err := im.repo.FindOne(c, id)
	if err != nil {
		return err
	}
	if !a.Holder.Equals(caller) {
		return domain.ErrNotOwner
	}
	if err := im.repo.SetApprovedOperator(c, id, caller, operator); err != nil {
		c.WithFields(log.Fields{"id": id.String(), "operator": operator, "err": err}).Error("repo.SetApprovedOperator failed")
		return err
	}
	return nil
}

func (im *impl) CurrentHolder(c ctx.Ctx, id domain.AssetId) (domain.Address, error) {
	a, err := im.repo.FindOne(c, id.Normalize())
	if err != nil {
		return "", err
	}
	return a.Holder, nil
}

func (im *impl) IsApprovedOperator(c ctx.Ctx, id domain.AssetId, operator domain.Address) (bool, error) {
	a, err := im.repo.FindOne(c, id.Normalize())
	if err != nil {
		return false, err
	}
	return !a.ApprovedOperator.IsEmpty() && a.ApprovedOperator.Equals(operator), nil
}

func (im *impl) Transfer(c ctx.Ctx, id domain.AssetId, from, to domain.Address) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if err := im.repo.SetHolder(c, id.Normalize(), from, to); err != nil {
		c.WithFields(log.Fields{"id": id.String(), "from": from, "to": to, "err": err}).Error("repo.SetHolder failed")
		return err
	}
	return nil
}
