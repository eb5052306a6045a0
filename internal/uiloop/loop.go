package uiloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is posted to a closed Loop.
var ErrClosed = errors.New("ui loop closed")

// Loop runs posted functions sequentially on one goroutine.
//
// The queue is unbounded so Post never blocks, which keeps it safe to call
// from the loop goroutine itself.
type Loop struct {
	mu        sync.Mutex
	queue     []func()
	wake      chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	closed    atomic.Bool
	closeOnce sync.Once
	onLoop    atomic.Int64
}

// New starts a Loop.
func New() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.wake:
			l.drain()
		case <-l.done:
			l.drain()
			return
		}
	}
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.onLoop.Add(1)
		fn()
		l.onLoop.Add(-1)
	}
}

// Post schedules fn. It returns ErrClosed once Close has been called.
func (l *Loop) Post(fn func()) error {
	if l == nil {
		return ErrClosed
	}
	l.mu.Lock()
	if l.closed.Load() {
		l.mu.Unlock()
		return ErrClosed
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Busy reports whether a posted function is currently executing.
func (l *Loop) Busy() bool {
	return l.onLoop.Load() > 0
}

// Close stops accepting work, runs what is already queued and waits for the
// loop goroutine to exit.
func (l *Loop) Close() {
	if l == nil {
		return
	}
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed.Store(true)
		l.mu.Unlock()
		close(l.done)
		l.wg.Wait()
	})
}
