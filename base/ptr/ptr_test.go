package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	s.Equal("abc123", *String("abc123"))
	s.Equal(123, *Int(123))
	s.Equal(int64(891011), *Int64(891011))
	s.Equal(false, *Bool(false))
}

func (s *pointerSuite) TestDistinct() {
	a, b := Int64(1), Int64(1)
	s.NotSame(a, b)
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
