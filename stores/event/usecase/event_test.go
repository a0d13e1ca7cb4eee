package usecase

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/event"
	"github.com/x-xyz/royaltymarket/domain/event/mocks"
	"github.com/x-xyz/royaltymarket/domain/keys"
)

type eventSuite struct {
	suite.Suite
	repo      *mocks.Repo
	publisher *mocks.Publisher
	uc        event.UseCase
}

func (s *eventSuite) SetupTest() {
	s.repo = mocks.NewRepo(s.T())
	s.publisher = mocks.NewPublisher(s.T())
	s.uc = New(&EventUseCaseCfg{Repo: s.repo, Publisher: s.publisher})
}

func (s *eventSuite) TestRecord() {
	s.repo.On("NextSeq", mock.Anything).Return(int64(7), nil).Once()
	s.repo.On("Append", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Seq == 7 && e.Id != "" && e.Type == event.TypeListingCreated && !e.CreatedAt.IsZero()
	})).Return(nil).Once()

	res, err := s.uc.Record(ctx.Background(), event.ListingCreated(1, "0xAA", "100"))
	s.Require().NoError(err)
	s.Equal(int64(7), res.Seq)
	s.Equal(domain.Address("0xaa"), res.Seller)
}

func (s *eventSuite) TestRecordAppendFails() {
	s.repo.On("NextSeq", mock.Anything).Return(int64(8), nil).Once()
	s.repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	_, err := s.uc.Record(ctx.Background(), event.ListingBought(1, "0xbb", "100", true))
	s.Error(err)
}

func (s *eventSuite) TestPublish() {
	e := &event.Event{Seq: 3, Type: event.TypeListingBought, ListingId: 1, Price: "100"}
	done := make(chan struct{})
	s.publisher.On("Publish", mock.Anything, keys.ChannelEvents, mock.MatchedBy(func(payload []byte) bool {
		got := event.Event{}
		return json.Unmarshal(payload, &got) == nil && got.Seq == 3 && got.ListingId == 1
	})).Run(func(mock.Arguments) { close(done) }).Return(errors.New("redis down")).Once()

	s.uc.Publish(ctx.Background(), e)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("event not published")
	}
}

func TestEventSuite(t *testing.T) {
	suite.Run(t, new(eventSuite))
}
