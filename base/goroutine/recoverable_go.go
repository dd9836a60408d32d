package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/aptos-market/base/log"
)

type PanicEvent struct {
	Name  string
	Panic interface{}
	Stack []byte
}

type options struct {
	name           string
	afterEnded     func()
	afterRecovered func(ev *PanicEvent)
}

type Option func(*options)

// WithName tags the panic log and event with a component name
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(ev *PanicEvent)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel receives the
// panic event if f panics, or is closed when f returns normally.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	panicCh := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			if p := recover(); p != nil {
				ev := &PanicEvent{Name: o.name, Panic: p, Stack: debug.Stack()}
				log.Log().WithFields(log.Fields{
					"name":  o.name,
					"err":   p,
					"stack": string(ev.Stack),
				}).Error("panic")

				if o.afterRecovered != nil {
					o.afterRecovered(ev)
				}
				panicCh <- ev
				return
			}
			close(panicCh)
		}()

		f()
	}()

	return panicCh
}
