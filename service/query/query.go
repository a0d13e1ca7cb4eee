/*
Package query wraps https://github.com/mongodb/mongo-go-driver for the
repositories. Errors of the driver are translated to ErrNotFound and
ErrDuplicateKey so callers never import the driver for error handling.
*/
package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// Transactor runs a function inside a mongo transaction
type Transactor interface {
	// RunWithTransaction commits if run returns nil and aborts otherwise.
	// Calls nested in a running transaction join it.
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}

// Mongo abstract the mongo layer.
type Mongo interface {
	Transactor

	// Insert inserts a new document to the table
	Insert(c ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table, ErrNotFound if nothing matches
	FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error)

	// Upsert replaces the document matching selector, or inserts it
	Upsert(c ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and the MongoDB does not guarantee the order of query results.
	Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(c ctx.Ctx, table domain.Table, selector interface{}) error

	// Patch sets the fields of update on the entry matching selector
	// Return ErrNotFound if selector does not match any documents
	Patch(c ctx.Ctx, table domain.Table, selector, update interface{}) error

	// CustomPatch patch an entry with customized mongo update operators
	// Return ErrNotFound if upsert is false and selector does not match any documents,
	CustomPatch(c ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// Increment let you increase a field number and decodes the updated document.
	// If entry not exist, insert it.
	Increment(c ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error
}
