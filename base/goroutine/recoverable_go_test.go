package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGoPanic(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("boom")
		},
		WithName("http"),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(ev *PanicEvent) {
			res = append(res, "after recovered", ev.Panic.(string))
		}),
	)

	assert.Equal(t, []string{"run task", "after ended", "after recovered", "boom"}, res)
	assert.Equal(t, "http", ev.Name)
	assert.NotEmpty(t, ev.Stack)
}

func TestRecoverableGoReturn(t *testing.T) {
	ev, ok := <-RecoverableGo(func() {})
	assert.False(t, ok)
	assert.Nil(t, ev)
}
