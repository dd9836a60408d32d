package healthcheck

import (
	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*domain.LedgerInfo, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingNode(context ctx.Ctx) (*domain.LedgerInfo, error)
}
