package notifier

import (
	"context"
	"log"
	"sync"
)

// Dispatcher runs notification tasks off the request path. The triggering
// HTTP response never waits on a task; failures go to the log only.
type Dispatcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Dispatch schedules a task on its own goroutine and returns immediately.
func (d *Dispatcher) Dispatch(name string, task func(ctx context.Context) error) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		if err := task(d.ctx); err != nil {
			log.Printf("%s failed: %v", name, err)
		}
	}()
}

// Stop cancels in-flight tasks and waits for them to finish.
func (d *Dispatcher) Stop() {
	d.cancel()
	d.wg.Wait()
}
