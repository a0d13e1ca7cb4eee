package mutex

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/service/redis"
	"github.com/x-xyz/royaltymarket/service/redis/mocks"
)

const (
	key = "lock:listing:1"
	ttl = 40 * time.Millisecond
)

type mutexSuite struct {
	suite.Suite
	redis *mocks.Service
	mu    Service
}

func (s *mutexSuite) SetupTest() {
	s.redis = mocks.NewService(s.T())
	s.mu = New(&Config{
		Redis:      s.redis,
		TTL:        ttl,
		MaxWait:    20 * time.Millisecond,
		RetryStart: time.Millisecond,
		RetryLimit: 4 * time.Millisecond,
	})
}

func (s *mutexSuite) TestLockUnlock() {
	var token []byte
	s.redis.On("SetNX", mock.Anything, key, mock.Anything, ttl).
		Run(func(args mock.Arguments) { token = args.Get(2).([]byte) }).
		Return(nil).Once()

	got, err := s.mu.Lock(ctx.Background(), key)
	s.Require().NoError(err)
	s.Equal(string(token), got)

	s.redis.On("CompareAndDel", mock.Anything, key, []byte(got)).Return(true, nil).Once()
	s.NoError(s.mu.Unlock(ctx.Background(), key, got))
}

func (s *mutexSuite) TestLockRetries() {
	s.redis.On("SetNX", mock.Anything, key, mock.Anything, ttl).Return(redis.ErrNotSet).Twice()
	s.redis.On("SetNX", mock.Anything, key, mock.Anything, ttl).Return(nil).Once()

	_, err := s.mu.Lock(ctx.Background(), key)
	s.NoError(err)
}

func (s *mutexSuite) TestLockWaitsOutHolder() {
	// the holder keeps the key past MaxWait but within its ttl
	released := time.Now().Add(30 * time.Millisecond)
	s.redis.On("SetNX", mock.Anything, key, mock.Anything, ttl).Return(
		func(ctx.Ctx, string, []byte, time.Duration) error {
			if time.Now().Before(released) {
				return redis.ErrNotSet
			}
			return nil
		})

	_, err := s.mu.Lock(ctx.Background(), key)
	s.NoError(err)
}

func (s *mutexSuite) TestLockTimesOutAfterTTL() {
	s.redis.On("SetNX", mock.Anything, key, mock.Anything, ttl).Return(redis.ErrNotSet)

	start := time.Now()
	_, err := s.mu.Lock(ctx.Background(), key)
	s.ErrorIs(err, domain.ErrLockNotAcquired)
	s.GreaterOrEqual(time.Since(start), ttl-5*time.Millisecond)
}

func (s *mutexSuite) TestLockRedisError() {
	boom := errors.New("boom")
	s.redis.On("SetNX", mock.Anything, key, mock.Anything, ttl).Return(boom).Once()

	_, err := s.mu.Lock(ctx.Background(), key)
	s.ErrorIs(err, boom)
}

func (s *mutexSuite) TestUnlockExpired() {
	s.redis.On("CompareAndDel", mock.Anything, key, []byte("stale")).Return(false, nil).Once()

	s.NoError(s.mu.Unlock(ctx.Background(), key, "stale"))
}

func TestMutexSuite(t *testing.T) {
	suite.Run(t, new(mutexSuite))
}
