package scheduler

import (
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	bCtx "github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
)

var (
	ErrDuplicateTask = errors.New("task already scheduled")
	ErrStopped       = errors.New("scheduler stopped")
)

// Job is run on every tick with the scheduler's context. The context is
// cancelled by Stop, so a job that is still running can observe teardown.
type Job func(ctx bCtx.Ctx)

// Scheduler owns a set of named fixed-interval tasks. Ticks of the same task
// are not serialized: a slow job may overlap with its next tick.
type Scheduler struct {
	cron   *cron.Cron
	ctx    bCtx.Ctx
	cancel func()

	mu      sync.Mutex
	entries map[string]cron.EntryID
	stopped bool
}

func New(parent bCtx.Ctx) *Scheduler {
	ctx, cancel := bCtx.WithCancel(parent)
	logger := cronLogger{parent.Logger}
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger))),
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]cron.EntryID),
	}
}

// Every registers job to run each interval. Intervals below one second are
// rounded up to one second.
func (s *Scheduler) Every(name string, interval time.Duration, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	if _, ok := s.entries[name]; ok {
		return ErrDuplicateTask
	}
	taskCtx := bCtx.WithValue(s.ctx, "task", name)
	id := s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() {
		if taskCtx.Err() != nil {
			return
		}
		job(taskCtx)
	}))
	s.entries[name] = id
	return nil
}

// Cancel removes a single task; ticks already running are not interrupted.
func (s *Scheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.entries[name]; ok {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
}

// Tasks lists the names of the scheduled tasks.
func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.entries))
	for n := range s.entries {
		names = append(names, n)
	}
	return names
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop clears every task, cancels the jobs' context and waits for running
// jobs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for name, id := range s.entries {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
	s.mu.Unlock()

	s.cancel()
	<-s.cron.Stop().Done()
}

// Context is cancelled once Stop is called.
func (s *Scheduler) Context() bCtx.Ctx {
	return s.ctx
}

type cronLogger struct {
	logger log.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(toFields(keysAndValues)).WithField("err", err).Error(msg)
}

func toFields(kvs []interface{}) log.Fields {
	fields := log.Fields{}
	for i := 0; i+1 < len(kvs); i += 2 {
		if k, ok := kvs[i].(string); ok {
			fields[k] = kvs[i+1]
		}
	}
	return fields
}
