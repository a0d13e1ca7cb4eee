package authority

import (
	"time"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
)

// Manager is a principal allowed to mutate every royalty table
type Manager struct {
	Address   domain.Address `json:"address" bson:"address"`
	GrantedBy domain.Address `json:"grantedBy" bson:"grantedBy"`
	GrantedAt time.Time      `json:"grantedAt" bson:"grantedAt"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Manager, error)
	// FindOne returns nil, nil when address is not a manager
	FindOne(c ctx.Ctx, address domain.Address) (*Manager, error)
	// Create returns domain.ErrConflict if address is already a manager
	Create(c ctx.Ctx, value Manager) error
	// Delete returns domain.ErrNotFound if address is not a manager
	Delete(c ctx.Ctx, address domain.Address) error
}

type UseCase interface {
	// Grant is idempotent
	Grant(c ctx.Ctx, principal, grantedBy domain.Address) error
	Revoke(c ctx.Ctx, principal domain.Address) error
	// Transfer moves the caller's membership to successor
	Transfer(c ctx.Ctx, caller, successor domain.Address) error
	IsManager(c ctx.Ctx, principal domain.Address) (bool, error)
	// AdminGrant lets the administrator grant membership directly
	AdminGrant(c ctx.Ctx, caller, principal domain.Address) error
	FindAll(c ctx.Ctx) ([]*Manager, error)
}

// Gate knows the single administrator principal
type Gate interface {
	IsAdmin(principal domain.Address) bool
	Admin() domain.Address
}

type gate struct {
	admin domain.Address
}

// NewGate panics on an empty admin, a gate nobody can pass is a misconfiguration
func NewGate(admin domain.Address) Gate {
	if admin.IsEmpty() {
		panic("authority: empty admin address")
	}
	return &gate{admin: admin.ToLower()}
}

func (g *gate) IsAdmin(principal domain.Address) bool {
	return !principal.IsEmpty() && g.admin.Equals(principal)
}

func (g *gate) Admin() domain.Address {
	return g.admin
}
