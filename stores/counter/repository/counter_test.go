package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/counter"
	"github.com/x-xyz/royaltymarket/service/query/mocks"
)

func TestNext(t *testing.T) {
	q := mocks.NewMongo(t)
	q.On("Increment", mock.Anything, domain.TableCounters, bson.M{"name": counter.NameListingId}, mock.Anything, "seq", int64(1)).
		Run(func(args mock.Arguments) {
			args.Get(3).(*counter.Counter).Seq = 3
		}).Return(nil).Once()

	seq, err := New(q).Next(ctx.Background(), counter.NameListingId)
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)
}

func TestNextFailed(t *testing.T) {
	q := mocks.NewMongo(t)
	q.On("Increment", mock.Anything, domain.TableCounters, mock.Anything, mock.Anything, "seq", int64(1)).
		Return(errors.New("boom")).Once()

	_, err := New(q).Next(ctx.Background(), counter.NameEventSeq)
	assert.Error(t, err)
}
