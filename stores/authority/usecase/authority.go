package usecase

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/service/query"
)

type AuthorityUseCaseCfg struct {
	Repo       authority.Repo
	Gate       authority.Gate
	Transactor query.Transactor
}

type impl struct {
	repo       authority.Repo
	gate       authority.Gate
	transactor query.Transactor
}

func New(cfg *AuthorityUseCaseCfg) authority.UseCase {
	return &impl{
		repo:       cfg.Repo,
		gate:       cfg.Gate,
		transactor: cfg.Transactor,
	}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*authority.Manager, error) {
	return im.repo.FindAll(c)
}

func (im *impl) IsManager(c ctx.Ctx, principal domain.Address) (bool, error) {
	if principal.IsEmpty() {
		return false, nil
	}
	if res, err := im.repo.FindOne(c, principal); err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return false, err
	} else {
		return res != nil, nil
	}
}

// Grant is a no-op for a current member. The membership read comes first
// because a failed insert aborts the surrounding transaction.
func (im *impl) Grant(c ctx.Ctx, principal, grantedBy domain.Address) error {
	if principal.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if ok, err := im.IsManager(c, principal); err != nil {
		return err
	} else if ok {
		return nil
	}
	value := authority.Manager{
		Address:   principal.ToLower(),
		GrantedBy: grantedBy.ToLower(),
		GrantedAt: time.Now(),
	}
	if err := im.repo.Create(c, value); err == domain.ErrConflict {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{"principal": principal, "err": err}).Error("repo.Create failed")
		return err
	}
	c.WithFields(log.Fields{"principal": principal, "grantedBy": grantedBy}).Info("royalty manager granted")
	return nil
}

func (im *impl) Revoke(c ctx.Ctx, principal domain.Address) error {
	if err := im.repo.Delete(c, principal); err != nil {
		c.WithFields(log.Fields{"principal": principal, "err": err}).Error("repo.Delete failed")
		return err
	}
	c.WithField("principal", principal).Info("royalty manager revoked")
	return nil
}

func (im *impl) Transfer(c ctx.Ctx, caller, successor domain.Address) error {
	if successor.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	return im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		if ok, err := im.IsManager(c, caller); err != nil {
			return err
		} else if !ok {
			return domain.ErrUnauthorized
		}
		if caller.Equals(successor) {
			return nil
		}
		if err := im.Revoke(c, caller); err != nil {
			return err
		}
		return im.Grant(c, successor, caller)
	})
}

func (im *impl) AdminGrant(c ctx.Ctx, caller, principal domain.Address) error {
	if !im.gate.IsAdmin(caller) {
		return domain.ErrUnauthorized
	}
	return im.Grant(c, principal, caller)
}
