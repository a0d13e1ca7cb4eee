package repository

import (
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/ledger"
	"github.com/x-xyz/royaltymarket/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) ledger.Repo {
	return &impl{q}
}

func (im *impl) FindBalance(c ctx.Ctx, address domain.Address) (*ledger.Balance, error) {
	res := &ledger.Balance{}
	if err := im.q.FindOne(c, domain.TableBalances, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return &ledger.Balance{Address: address.ToLower(), Amount: "0"}, nil
	} else if err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) SetBalance(c ctx.Ctx, address domain.Address, amount *big.Int) error {
	value := ledger.Balance{
		Address:   address.ToLower(),
		Amount:    amount.String(),
		UpdatedAt: time.Now(),
	}
	if err := im.q.Upsert(c, domain.TableBalances, bson.M{"address": value.Address}, value); err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) InsertTransfer(c ctx.Ctx, value ledger.Transfer) error {
	value.Payer = value.Payer.ToLower()
	value.Recipient = value.Recipient.ToLower()
	if err := im.q.Insert(c, domain.TableLedgerTransfers, value); err != nil {
		c.WithFields(log.Fields{"transfer": value, "err": err}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindTransfers(c ctx.Ctx, address domain.Address, offset, limit int) ([]*ledger.Transfer, error) {
	if offset < 0 || limit < 0 {
		return nil, domain.ErrBadParamInput
	}
	addr := address.ToLower()
	qry := bson.M{"$or": bson.A{bson.M{"payer": addr}, bson.M{"recipient": addr}}}
	res := []*ledger.Transfer{}
	if err := im.q.Search(c, domain.TableLedgerTransfers, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
