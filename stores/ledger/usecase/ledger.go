package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
	"github.com/x-xyz/royaltymarket/domain/ledger"
	"github.com/x-xyz/royaltymarket/service/query"
)

const memoDeposit = "deposit"

type LedgerUseCaseCfg struct {
	Repo       ledger.Repo
	Gate       authority.Gate
	Transactor query.Transactor
}

type impl struct {
	repo       ledger.Repo
	gate       authority.Gate
	transactor query.Transactor
}

func New(cfg *LedgerUseCaseCfg) ledger.UseCase {
	return &impl{
		repo:       cfg.Repo,
		gate:       cfg.Gate,
		transactor: cfg.Transactor,
	}
}

// aggregate merges payments to the same recipient and drops zero amounts,
// first-seen order is kept
func aggregate(payments []ledger.Payment) ([]ledger.Payment, *big.Int, error) {
	total := new(big.Int)
	index := map[domain.Address]int{}
	res := []ledger.Payment{}
	for _, p := range payments {
		if p.Amount == nil || p.Amount.Sign() == 0 {
			continue
		}
		if p.Amount.Sign() < 0 || p.To.IsEmpty() {
			return nil, nil, domain.ErrBadParamInput
		}
		total.Add(total, p.Amount)
		to := p.To.ToLower()
		if i, ok := index[to]; ok {
			res[i].Amount.Add(res[i].Amount, p.Amount)
			continue
		}
		index[to] = len(res)
		res = append(res, ledger.Payment{To: to, Amount: new(big.Int).Set(p.Amount)})
	}
	return res, total, nil
}

func (im *impl) AtomicSplit(c ctx.Ctx, payer domain.Address, payments []ledger.Payment, memo string) error {
	merged, total, err := aggregate(payments)
	if err != nil {
		return err
	}
	if total.Sign() == 0 {
		return nil
	}

	return im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.add(c, payer, new(big.Int).Neg(total)); err != nil {
			return err
		}
		now := time.Now()
		for _, p := range merged {
			if err := im.add(c, p.To, p.Amount); err != nil {
				return err
			}
			if err := im.repo.InsertTransfer(c, ledger.Transfer{
				Id:        uuid.NewString(),
				Payer:     payer,
				Recipient: p.To,
				Amount:    p.Amount.String(),
				Memo:      memo,
				CreatedAt: now,
			}); err != nil {
				c.WithField("err", err).Error("repo.InsertTransfer failed")
				return err
			}
		}
		return nil
	})
}

// add moves the balance of address by delta, a result below zero fails with
// domain.ErrInsufficientFunds
func (im *impl) add(c ctx.Ctx, address domain.Address, delta *big.Int) error {
	bal, err := im.repo.FindBalance(c, address)
	if err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("repo.FindBalance failed")
		return err
	}
	amount, err := domain.ParseBalance(bal.Amount)
	if err != nil {
		return xerrors.Errorf("corrupted balance of %s: %w", address, err)
	}
	amount.Add(amount, delta)
	if amount.Sign() < 0 {
		return domain.ErrInsufficientFunds
	}
	if err := im.repo.SetBalance(c, address, amount); err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("repo.SetBalance failed")
		return err
	}
	return nil
}

func (im *impl) Deposit(c ctx.Ctx, caller, to domain.Address, amount string) (*ledger.Balance, error) {
	if !im.gate.IsAdmin(caller) {
		return nil, domain.ErrUnauthorized
	}
	if to.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	value, err := domain.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	err = im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.add(c, to, value); err != nil {
			return err
		}
		return im.repo.InsertTransfer(c, ledger.Transfer{
			Id:        uuid.NewString(),
			Payer:     domain.EmptyAddress,
			Recipient: to,
			Amount:    value.String(),
			Memo:      memoDeposit,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return im.repo.FindBalance(c, to)
}

func (im *impl) GetBalance(c ctx.Ctx, address domain.Address) (*ledger.Balance, error) {
	return im.repo.FindBalance(c, address)
}

func (im *impl) FindTransfers(c ctx.Ctx, address domain.Address, offset, limit int) ([]*ledger.Transfer, error) {
	return im.repo.FindTransfers(c, address, offset, limit)
}
