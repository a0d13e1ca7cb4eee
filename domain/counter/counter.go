package counter

import (
	"github.com/x-xyz/royaltymarket/base/ctx"
)

const (
	NameListingId = "listingId"
	NameEventSeq  = "eventSeq"
)

// Counter is a named monotonic sequence
type Counter struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

type Repo interface {
	// Next increments the counter and returns the new value, the first call returns 1
	Next(c ctx.Ctx, name string) (int64, error)
}
