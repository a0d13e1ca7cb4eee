package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/database/mongoclient"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/base/metrics"
	"github.com/x-xyz/royaltymarket/domain"
)

const (
	queryMaxTime      = 20 * time.Second
	slowLogThreshold  = 500 * time.Millisecond
	maxConcurrentTxns = 10
)

var (
	met = metrics.New("mongo")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	tokens     chan struct{}
}

// New initializes an impl. checkIndex explains every query and rejects
// collection scans, it is meant for development only.
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		tokens:     make(chan struct{}, maxConcurrentTxns),
	}
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) logerr(c ctx.Ctx, msg string, err error) {
	met.BumpSum("err", 1, "msg", msg)
	c.WithField("err", err).Error(msg)
}

func (im *impl) Insert(c ctx.Ctx, table domain.Table, insert interface{}) error {
	defer met.BumpTime("time", "func", "insert", "table", string(table)).End()
	defer slowLog(c, table, "insert", nil)()

	if _, err := im.collection(table).InsertOne(c, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(ctx.WithValue(c, "table", table), "Insert: InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(c, table, "findone", query)()

	c = ctx.WithValues(c, map[string]interface{}{"table": table, "query": query})
	if err := im.checkQueryIndex(c, table, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}

	res := im.collection(table).FindOne(c, query, options.FindOne().SetMaxTime(queryMaxTime))
	if err := res.Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(c, "FindOne: Decode failed", err)
		return err
	}
	return nil
}

func (im *impl) Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer met.BumpTime("time", "func", "count", "table", string(table)).End()
	defer slowLog(c, table, "count", selector)()

	c = ctx.WithValues(c, map[string]interface{}{"table": table, "selector": selector})
	if err := im.checkQueryIndex(c, table, "count", bson.E{Key: "query", Value: selector}); err != nil {
		return 0, err
	}

	count, err := im.collection(table).CountDocuments(c, selector, options.Count().SetMaxTime(queryMaxTime))
	if err != nil {
		im.logerr(c, "Count: CountDocuments failed", err)
		return 0, err
	}
	return int(count), nil
}

func (im *impl) Upsert(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer met.BumpTime("time", "func", "upsert", "table", string(table)).End()
	defer slowLog(c, table, "upsert", selector)()

	opts := options.Replace().SetUpsert(true)
	if _, err := im.collection(table).ReplaceOne(c, selector, update, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(ctx.WithValues(c, map[string]interface{}{"table": table, "selector": selector}), "Upsert: ReplaceOne failed", err)
		return err
	}
	return nil
}

func sortOption(sort string) bson.D {
	switch {
	case sort == "":
		return nil
	case sort[0] == '-':
		return bson.D{{Key: sort[1:], Value: -1}}
	default:
		return bson.D{{Key: sort, Value: 1}}
	}
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(c, table, "search", query)()

	c = ctx.WithValues(c, map[string]interface{}{"table": table, "query": query})
	if err := im.checkQueryIndex(c, table, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}

	opts := options.Find().SetMaxTime(queryMaxTime).SetLimit(int64(limit)).SetSkip(int64(offset))
	if s := sortOption(sort); s != nil {
		opts.SetSort(s)
	}
	cursor, err := im.collection(table).Find(c, query, opts)
	if err != nil {
		im.logerr(c, "Search: Find failed", err)
		return err
	}
	defer cursor.Close(c)

	if err := cursor.All(c, results); err != nil {
		im.logerr(c, "Search: cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, table domain.Table, selector interface{}) error {
	defer met.BumpTime("time", "func", "remove", "table", string(table)).End()
	defer slowLog(c, table, "remove", selector)()

	res, err := im.collection(table).DeleteOne(c, selector)
	if err != nil {
		im.logerr(ctx.WithValues(c, map[string]interface{}{"table": table, "selector": selector}), "Remove: DeleteOne failed", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	return im.update(c, table, "patch", selector, bson.M{"$set": update}, false)
}

func (im *impl) CustomPatch(c ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error {
	return im.update(c, table, "custompatch", selector, update, upsert)
}

func (im *impl) update(c ctx.Ctx, table domain.Table, action string, selector, updater interface{}, upsert bool) error {
	defer met.BumpTime("time", "func", action, "table", string(table)).End()
	defer slowLog(c, table, action, selector)()

	res, err := im.collection(table).UpdateOne(c, selector, updater, options.Update().SetUpsert(upsert))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(ctx.WithValues(c, map[string]interface{}{"table": table, "selector": selector, "action": action}), "UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 && res.ModifiedCount == 0 && res.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Increment(c ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error {
	defer met.BumpTime("time", "func", "increment", "table", string(table)).End()
	defer slowLog(c, table, "increment", selector)()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)
	res := im.collection(table).FindOneAndUpdate(c, selector, bson.M{"$inc": bson.M{field: inc}}, opts)
	if err := res.Decode(result); err != nil {
		im.logerr(ctx.WithValues(c, map[string]interface{}{"table": table, "selector": selector}), "Increment: FindOneAndUpdate failed", err)
		return err
	}
	return nil
}

func (im *impl) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	// already inside a transaction, join it
	if mongo.SessionFromContext(c) != nil {
		return run(c)
	}

	// explain command is not supported in transaction
	if im.checkIndex {
		return run(c)
	}

	select {
	case <-c.Done():
		return c.Err()
	case im.tokens <- struct{}{}:
	}
	defer func() { <-im.tokens }()

	defer met.BumpTime("time", "func", "transaction").End()

	session, err := im.client.StartSession()
	if err != nil {
		im.logerr(c, "StartSession failed", err)
		return err
	}
	defer session.EndSession(c)

	_, err = session.WithTransaction(c, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.From(sessCtx, c))
	})
	return err
}

func slowLog(c ctx.Ctx, table domain.Table, action string, query interface{}) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		if elapsed >= slowLogThreshold {
			met.BumpSum("slowlog", 1, "table", string(table), "action", action)
			c.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsed.Milliseconds(),
				"query":      query,
			}).Warn("mongo slowlog")
		}
	}
}

func (im *impl) checkQueryIndex(c ctx.Ctx, table domain.Table, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	// reference: https://docs.mongodb.com/manual/reference/command/explain/
	res := im.client.Database(im.client.DbName).RunCommand(c, bson.D{
		{Key: "explain", Value: bson.D{{Key: action, Value: string(table)}, query}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		c.WithField("err", err).Warn("checkQueryIndex decode failed")
		return nil
	}

	// the plan layout differs between server versions, look for the stage name anywhere
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		c.WithField("query", query).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
