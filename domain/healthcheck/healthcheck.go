package healthcheck

import (
	"github.com/x-xyz/royaltymarket/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}

// HealthCheckRepo pings every backing store
type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
	PingRedis(c ctx.Ctx) error
}
