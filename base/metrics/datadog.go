package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/x-xyz/aptos-market/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// DdPort is the dogstatsd port of the agent
	DdPort = 8125

	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	ddOnce    sync.Once
	ddClients []statsCli
	ddErr     error
)

// ddPool spreads bumps over a fixed set of buffered statsd clients by round robin.
type ddPool struct {
	idx int32
}

func datadogClient(host string) statsCli {
	ddOnce.Do(func() {
		addr := fmt.Sprintf("%s:%d", host, DdPort)
		ddClients = make([]statsCli, ddClientsSize)
		for i := 0; i < ddClientsSize; i++ {
			log.Log().WithFields(log.Fields{"addr": addr, "idx": i}).Info("connecting to datadog agent")
			c, err := statsd.NewBuffered(addr, bufferMetrics)
			if err != nil {
				ddErr = err
				return
			}
			ddClients[i] = c
		}
	})
	if ddErr != nil {
		log.Log().WithField("err", ddErr).Error("can't talk to datadog agent, fallback to log")
		return &LogClient{}
	}
	return &ddPool{}
}

func (p *ddPool) next() statsCli {
	i := atomic.AddInt32(&p.idx, 1) & ddClientsIdxMask
	return ddClients[i]
}

func (p *ddPool) Gauge(name string, value float64, tags []string, rate float64) error {
	return p.next().Gauge(name, value, tags, rate)
}

func (p *ddPool) Count(name string, value int64, tags []string, rate float64) error {
	return p.next().Count(name, value, tags, rate)
}

func (p *ddPool) Histogram(name string, value float64, tags []string, rate float64) error {
	return p.next().Histogram(name, value, tags, rate)
}

func (p *ddPool) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return p.next().TimeInMilliseconds(name, value, tags, rate)
}
