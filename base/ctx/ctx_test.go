package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxSuite struct {
	suite.Suite
}

func TestCtxSuite(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (s *ctxSuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"listingId": int64(7),
		"buyer":     "0xabc",
	})
	s.Equal(int64(7), c.Value("listingId"))
	s.Equal("0xabc", c.Value("buyer"))
}

func (s *ctxSuite) TestFromKeepsLogger() {
	parent := WithValue(Background(), "requestId", "r-1")
	c := From(context.WithValue(context.Background(), "k", "v"), parent)
	s.Equal("v", c.Value("k"))
	s.Nil(c.Value("requestId"))
	s.Equal(parent.Logger, c.Logger)
}

func (s *ctxSuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	cancel()
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		s.Fail("context not cancelled")
	}
	s.ErrorIs(c.Err(), context.Canceled)
}

func (s *ctxSuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	<-c.Done()
	s.ErrorIs(c.Err(), context.DeadlineExceeded)
}
