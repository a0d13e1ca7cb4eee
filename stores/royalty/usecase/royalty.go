package usecase

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/domain/royalty"
	"github.com/x-xyz/royaltymarket/service/query"
)

type RoyaltyUseCaseCfg struct {
	Repo       royalty.Repo
	Authority  authority.UseCase
	Gate       authority.Gate
	Transactor query.Transactor
}

type impl struct {
	repo       royalty.Repo
	authority  authority.UseCase
	gate       authority.Gate
	transactor query.Transactor
}

func New(cfg *RoyaltyUseCaseCfg) royalty.UseCase {
	return &impl{
		repo:       cfg.Repo,
		authority:  cfg.Authority,
		gate:       cfg.Gate,
		transactor: cfg.Transactor,
	}
}

func (im *impl) GetTable(c ctx.Ctx, id domain.AssetId) (*royalty.Table, error) {
	return im.repo.FindOne(c, id.Normalize())
}

func (im *impl) CreateTable(c ctx.Ctx, caller domain.Address, id domain.AssetId, initialHolder domain.Address, recipients []domain.Address, shares []int64) (*royalty.Table, error) {
	if !im.gate.IsAdmin(caller) {
		return nil, domain.ErrUnauthorized
	}
	if initialHolder.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	entries, err := royalty.NewEntries(recipients, shares)
	if err != nil {
		return nil, err
	}

	id = id.Normalize()
	now := time.Now()
	table := royalty.Table{
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Entries:    entries,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.Create(c, table); err != nil {
			c.WithFields(log.Fields{"id": id.String(), "err": err}).Error("repo.Create failed")
			return err
		}
		if err := im.authority.Grant(c, initialHolder, caller); err != nil {
			c.WithFields(log.Fields{"holder": initialHolder, "err": err}).Error("authority.Grant failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (im *impl) AddEntries(c ctx.Ctx, caller domain.Address, id domain.AssetId, recipients []domain.Address, shares []int64) (*royalty.Table, error) {
	if err := im.requireManager(c, caller); err != nil {
		return nil, err
	}
	added, err := royalty.NewEntries(recipients, shares)
	if err != nil {
		return nil, err
	}
	return im.update(c, id, func(t *royalty.Table) ([]royalty.Entry, error) {
		return t.WithAdded(added)
	})
}

func (im *impl) RemoveEntries(c ctx.Ctx, caller domain.Address, id domain.AssetId, recipients []domain.Address) (*royalty.Table, error) {
	if err := im.requireManager(c, caller); err != nil {
		return nil, err
	}
	return im.update(c, id, func(t *royalty.Table) ([]royalty.Entry, error) {
		return t.WithRemoved(recipients), nil
	})
}

func (im *impl) requireManager(c ctx.Ctx, caller domain.Address) error {
	if ok, err := im.authority.IsManager(c, caller); err != nil {
		c.WithField("err", err).Error("authority.IsManager failed")
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// update applies mutate to the stored table and writes the result only if no
// other writer bumped the version in between
func (im *impl) update(c ctx.Ctx, id domain.AssetId, mutate func(*royalty.Table) ([]royalty.Entry, error)) (*royalty.Table, error) {
	id = id.Normalize()
	table, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	entries, err := mutate(table)
	if err != nil {
		return nil, err
	}
	if err := im.repo.UpdateEntries(c, id, table.Version, entries); err != nil {
		c.WithFields(log.Fields{"id": id.String(), "version": table.Version, "err": err}).Error("repo.UpdateEntries failed")
		return nil, err
	}
	table.Entries = entries
	table.Version++
	table.UpdatedAt = time.Now()
	return table, nil
}
