package fulfillment

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// dispatchSource is the one-unit-of-work surface the dispatcher drives.
type dispatchSource interface {
	DispatchDatahubnet(ctx context.Context) (bool, error)
	PollDatahubnet(ctx context.Context) (bool, error)
	DispatchHubnet(ctx context.Context) (bool, error)
}

// Dispatcher is the single periodic driver of the fulfillment pipeline. Each
// tick does at most one unit of work, in fixed priority order: a DataHubnet
// dispatch, else a DataHubnet status poll, else a hubnet dispatch. One unit
// per tick keeps the load on flaky reseller APIs bounded and stops one slow
// provider from starving the other.
//
// Concurrency safety does not live here: the store-level claim is what keeps
// multiple dispatchers (goroutines or whole replicas) from double-submitting.
// The in-flight guard only stops this instance from stacking overlapping
// ticks; an overrunning tick is skipped, not queued.
type Dispatcher struct {
	logger      *slog.Logger
	svc         dispatchSource
	interval    time.Duration
	callTimeout time.Duration

	inFlight atomic.Bool
	ticks    sync.WaitGroup
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewDispatcher(logger *slog.Logger, svc dispatchSource, interval, callTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		logger:      logger.With(slog.String("component", "dispatcher")),
		svc:         svc,
		interval:    interval,
		callTimeout: callTimeout,
	}
}

func (d *Dispatcher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})

	go d.run(ctx)

	d.logger.Info("dispatcher started", slog.String("interval", d.interval.String()))
	return nil
}

func (d *Dispatcher) Stop() error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()
	<-d.done
	// A tick spawned just before cancellation may still be writing; the
	// store must not be closed under it.
	d.ticks.Wait()
	d.logger.Info("dispatcher stopped")
	return nil
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.ticks.Add(1)
			go func() {
				defer d.ticks.Done()
				d.tick(ctx)
			}()
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) tick(ctx context.Context) {
	if !d.inFlight.CompareAndSwap(false, true) {
		ticksSkipped.Inc()
		return
	}
	defer d.inFlight.Store(false)

	start := time.Now()
	defer func() {
		tickDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	steps := []struct {
		name string
		fn   func(context.Context) (bool, error)
	}{
		{"datahubnet dispatch", d.svc.DispatchDatahubnet},
		{"datahubnet poll", d.svc.PollDatahubnet},
		{"hubnet dispatch", d.svc.DispatchHubnet},
	}

	for _, step := range steps {
		worked, err := step.fn(ctx)
		if err != nil {
			d.logger.ErrorContext(ctx, "tick step failed",
				slog.String("step", step.name),
				slog.Any("error", err),
			)
			return
		}
		if worked {
			return
		}
	}
}
