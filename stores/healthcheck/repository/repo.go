package repository

import (
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	hcdomain "github.com/x-xyz/aptos-market/domain/healthcheck"
)

const pingTimeout = 2 * time.Second

type impl struct {
	reader domain.ChainReader
}

// New creates new HealthCheckRepo backed by the fullnode
func New(reader domain.ChainReader) hcdomain.HealthCheckRepo {
	return &impl{
		reader: reader,
	}
}

func (im *impl) PingNode(context ctx.Ctx) (*domain.LedgerInfo, error) {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	info, err := im.reader.LedgerInfo(ctx)
	if err != nil {
		context.WithField("err", err).Error("ping fullnode error")
		return nil, domain.NewFetchError("ledger_info", err)
	}
	return info, nil
}
