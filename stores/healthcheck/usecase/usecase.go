package usecase

import (
	"github.com/x-xyz/royaltymarket/base/ctx"
	hcdomain "github.com/x-xyz/royaltymarket/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(c ctx.Ctx) error {
	if err := im.repo.PingDB(c); err != nil {
		return err
	}
	return im.repo.PingRedis(c)
}
