package metrics

import (
	"github.com/x-xyz/aptos-market/base/log"
)

// LogClient stands in for the statsd client when no agent is configured,
// every metric becomes a debug log line.
type LogClient struct{}

func (lc *LogClient) emit(kind, name string, value interface{}, tags []string) {
	log.Log().WithFields(log.Fields{"metric": name, "kind": kind, "val": value, "tags": tags}).Debug("metric")
}

func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	lc.emit("gauge", name, value, tags)
	return nil
}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	lc.emit("count", name, value, tags)
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	lc.emit("histogram", name, value, tags)
	return nil
}

// TimeInMilliseconds values are already in ms.
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	lc.emit("time_ms", name, value, tags)
	return nil
}
