package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/log"
	"github.com/x-xyz/royaltymarket/domain/event"
	"github.com/x-xyz/royaltymarket/domain/keys"
)

const publishTimeout = 3 * time.Second

type EventUseCaseCfg struct {
	Repo      event.Repo
	Publisher event.Publisher
	// Channel defaults to keys.ChannelEvents
	Channel string
}

type impl struct {
	repo       event.Repo
	publisher  event.Publisher
	channel    string
	workerPool *goroutines.Pool
}

func New(cfg *EventUseCaseCfg) event.UseCase {
	channel := cfg.Channel
	if channel == "" {
		channel = keys.ChannelEvents
	}
	return &impl{
		repo:       cfg.Repo,
		publisher:  cfg.Publisher,
		channel:    channel,
		workerPool: goroutines.NewPool(16, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(4)),
	}
}

func (im *impl) Record(c ctx.Ctx, e event.Event) (*event.Event, error) {
	seq, err := im.repo.NextSeq(c)
	if err != nil {
		c.WithField("err", err).Error("repo.NextSeq failed")
		return nil, err
	}
	e.Id = uuid.NewString()
	e.Seq = seq
	e.Seller = e.Seller.ToLower()
	e.Buyer = e.Buyer.ToLower()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if err := im.repo.Append(c, e); err != nil {
		c.WithFields(log.Fields{"seq": seq, "type": e.Type, "err": err}).Error("repo.Append failed")
		return nil, err
	}
	return &e, nil
}

func (im *impl) Publish(c ctx.Ctx, e *event.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		c.WithFields(log.Fields{"seq": e.Seq, "err": err}).Error("json.Marshal failed")
		return
	}

	// the request context is gone by the time the task runs
	bg := ctx.From(context.Background(), c)
	err = im.workerPool.ScheduleWithTimeout(publishTimeout, func() {
		tc, cancel := ctx.WithTimeout(bg, publishTimeout)
		defer cancel()
		if err := im.publisher.Publish(tc, im.channel, payload); err != nil {
			bg.WithFields(log.Fields{"seq": e.Seq, "type": e.Type, "err": err}).Error("publisher.Publish failed")
		}
	})
	if err != nil {
		c.WithFields(log.Fields{"seq": e.Seq, "err": err}).Error("workerPool.ScheduleWithTimeout failed")
	}
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	return im.repo.FindAll(c, opts...)
}
