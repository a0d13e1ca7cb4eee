package ledger

import (
	"math/big"
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
)

// Balance of an account in base units
type Balance struct {
	Address   domain.Address `json:"address" bson:"address"`
	Amount    string         `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Transfer is one credit recorded by the ledger
type Transfer struct {
	Id        string         `json:"id" bson:"id"`
	Payer     domain.Address `json:"payer" bson:"payer"`
	Recipient domain.Address `json:"recipient" bson:"recipient"`
	Amount    string         `json:"amount" bson:"amount"`
	Memo      string         `json:"memo" bson:"memo"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Payment asks the ledger to move Amount to To
type Payment struct {
	To     domain.Address
	Amount *big.Int
}

// Ledger moves value between accounts
type Ledger interface {
	// AtomicSplit debits payer by the sum of payments and credits every
	// payment, either all of them apply or none does
	AtomicSplit(c ctx.Ctx, payer domain.Address, payments []Payment, memo string) error
}

type Repo interface {
	// FindBalance returns a zero balance for an unknown address
	FindBalance(c ctx.Ctx, address domain.Address) (*Balance, error)
	SetBalance(c ctx.Ctx, address domain.Address, amount *big.Int) error
	InsertTransfer(c ctx.Ctx, value Transfer) error
	FindTransfers(c ctx.Ctx, address domain.Address, offset, limit int) ([]*Transfer, error)
}

type UseCase interface {
	Ledger

	// Deposit credits to out of thin air, admin only
	Deposit(c ctx.Ctx, caller, to domain.Address, amount string) (*Balance, error)
	GetBalance(c ctx.Ctx, address domain.Address) (*Balance, error)
	FindTransfers(c ctx.Ctx, address domain.Address, offset, limit int) ([]*Transfer, error)
}
