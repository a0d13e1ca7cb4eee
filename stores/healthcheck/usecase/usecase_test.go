package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/royaltymarket/base/ctx"
)

type fakeRepo struct {
	db, redis error
	calls     []string
}

func (f *fakeRepo) PingDB(ctx.Ctx) error {
	f.calls = append(f.calls, "db")
	return f.db
}

func (f *fakeRepo) PingRedis(ctx.Ctx) error {
	f.calls = append(f.calls, "redis")
	return f.redis
}

func TestCheck(t *testing.T) {
	repo := &fakeRepo{}
	assert.NoError(t, New(repo).Check(ctx.Background()))
	assert.Equal(t, []string{"db", "redis"}, repo.calls)

	boom := errors.New("boom")
	repo = &fakeRepo{db: boom}
	assert.ErrorIs(t, New(repo).Check(ctx.Background()), boom)
	assert.Equal(t, []string{"db"}, repo.calls)

	repo = &fakeRepo{redis: boom}
	assert.ErrorIs(t, New(repo).Check(ctx.Background()), boom)
}
