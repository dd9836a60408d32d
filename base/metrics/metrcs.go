/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/x-xyz/aptos-market/base/env"
	"github.com/x-xyz/aptos-market/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix. Without a
// configured datadog agent the metrics are written to the debug log.
func New(pkgName string) Service {
	ddTags := []string{
		"host:", // remove unused host tag
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}

	var cli statsCli
	if host := viper.GetString("datadog_host"); host != "" {
		cli = datadogClient(host)
	} else {
		cli = &LogClient{}
	}

	return &Metrics{
		pkgName: pkgName,
		tags:    ddTags,
		cli:     cli,
	}
}

// Metrics prefixes every key with the package name and appends the common tags.
type Metrics struct {
	pkgName string
	tags    []string
	cli     statsCli
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

const sampleRate = 1.0

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) allTags(tags []string) []string {
	return append(append([]string{}, mt.tags...), parseTag(tags)...)
}

// recoverBump keeps a malformed tag list from taking the caller down.
func (mt *Metrics) recoverBump(key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"key":  mt.key(key),
			"tags": strings.Join(tags, "#"),
			"err":  err,
		}).Error("bump panic")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	if err := mt.cli.Gauge(mt.key(key), val, mt.allTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	if err := mt.cli.Count(mt.key(key), int64(val), mt.allTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	if err := mt.cli.Histogram(mt.key(key), val, mt.allTags(tags), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer, End() records it:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		end: func(ms float64) {
			defer mt.recoverBump(key, tags)
			if err := mt.cli.TimeInMilliseconds(mt.key(key), ms, mt.allTags(tags), sampleRate); err != nil {
				log.Log().WithFields(log.Fields{"err": err, "key": key, "val": ms, "func": "BumpTime"}).Error("Bump fail")
			}
		},
	}
}

type timeTracker struct {
	start time.Time
	end   func(ms float64)
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	t.end(float64(msec) + float64(nsec)*1e-6)
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
