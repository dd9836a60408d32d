package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/aptos-market/base/ctx"
)

type schedulerSuite struct {
	suite.Suite
	s *Scheduler
}

func TestScheduler(t *testing.T) {
	suite.Run(t, new(schedulerSuite))
}

func (ts *schedulerSuite) SetupTest() {
	ts.s = New(bCtx.Background())
}

func (ts *schedulerSuite) TearDownTest() {
	ts.s.Stop()
}

func (ts *schedulerSuite) TestRunsEveryInterval() {
	var n int32
	ts.NoError(ts.s.Every("tick", time.Second, func(ctx bCtx.Ctx) {
		ts.Equal("tick", ctx.Value("task"))
		atomic.AddInt32(&n, 1)
	}))
	ts.s.Start()
	ts.Eventually(func() bool { return atomic.LoadInt32(&n) >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func (ts *schedulerSuite) TestDuplicateName() {
	noop := func(bCtx.Ctx) {}
	ts.NoError(ts.s.Every("refresh", time.Second, noop))
	ts.Equal(ErrDuplicateTask, ts.s.Every("refresh", time.Second, noop))
	ts.ElementsMatch([]string{"refresh"}, ts.s.Tasks())
}

func (ts *schedulerSuite) TestCancelRemovesTask() {
	ts.NoError(ts.s.Every("sweep", time.Second, func(bCtx.Ctx) {}))
	ts.s.Cancel("sweep")
	ts.Empty(ts.s.Tasks())
}

func (ts *schedulerSuite) TestStopClearsTasksAndContext() {
	var n int32
	ts.NoError(ts.s.Every("refresh", time.Second, func(bCtx.Ctx) { atomic.AddInt32(&n, 1) }))
	ts.s.Start()
	ts.s.Stop()

	ts.Empty(ts.s.Tasks())
	ts.Error(ts.s.Context().Err())
	ts.Equal(ErrStopped, ts.s.Every("late", time.Second, func(bCtx.Ctx) {}))

	before := atomic.LoadInt32(&n)
	time.Sleep(1200 * time.Millisecond)
	ts.Equal(before, atomic.LoadInt32(&n))
}
