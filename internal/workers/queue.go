// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the number of jobs that may wait for execution.
const DefaultQueueSize = 16

type queueState int

const (
	queueIdle queueState = iota
	queueRunning
	queueStopped
)

const (
	jobQueued int32 = iota
	jobTaken
	jobAbandoned
)

type job struct {
	ctx   context.Context
	fn    func(context.Context) error
	done  chan error
	state atomic.Int32
}

// take marks the job as picked up by the executor. It fails when the caller
// already gave up on it.
func (j *job) take() bool {
	return j.state.CompareAndSwap(jobQueued, jobTaken)
}

// abandon marks a queued job as given up. It fails once the executor took it.
func (j *job) abandon() bool {
	return j.state.CompareAndSwap(jobQueued, jobAbandoned)
}

// Queue executes submitted jobs on a single goroutine, strictly one after
// another in submission order. It implements Worker.
type Queue struct {
	jobs chan *job
	quit chan struct{}
	wg   sync.WaitGroup

	mu    sync.RWMutex
	state queueState
}

// NewQueue creates an idle queue holding up to size pending jobs. A size of
// zero or less means DefaultQueueSize.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		jobs: make(chan *job, size),
		quit: make(chan struct{}),
	}
}

// Run starts the executing goroutine. Calling Run on a running or stopped
// queue does nothing.
func (q *Queue) Run() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != queueIdle {
		return
	}
	q.state = queueRunning

	q.wg.Add(1)
	go q.loop()
}

// Stop rejects new jobs, fails the pending ones with ErrQueueStopped and
// waits for the job in progress to finish. A stopped queue cannot be
// restarted.
func (q *Queue) Stop() {
	q.mu.Lock()
	running := q.state == queueRunning
	if q.state != queueStopped {
		q.state = queueStopped
		close(q.quit)
	}
	q.mu.Unlock()

	if running {
		q.wg.Wait()
	}
}

// Do submits fn and waits for its result. fn receives ctx. When ctx ends
// while fn is still queued, fn is skipped and ctx.Err() is returned. Once fn
// has started Do always waits for it and returns its result, so a reported
// failure never hides a committed job.
func (q *Queue) Do(ctx context.Context, fn func(context.Context) error) error {
	j := &job{ctx: ctx, fn: fn, done: make(chan error, 1)}

	q.mu.RLock()
	switch q.state {
	case queueIdle:
		q.mu.RUnlock()
		return ErrQueueNotRunning
	case queueStopped:
		q.mu.RUnlock()
		return ErrQueueStopped
	}

	select {
	case q.jobs <- j:
		q.mu.RUnlock()
	case <-ctx.Done():
		q.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		if j.abandon() {
			return ctx.Err()
		}
		return <-j.done
	}
}

func (q *Queue) loop() {
	defer q.wg.Done()

	for {
		// a closed quit wins over queued jobs
		select {
		case <-q.quit:
			q.drain()
			return
		default:
		}

		select {
		case <-q.quit:
			q.drain()
			return
		case j := <-q.jobs:
			q.exec(j)
		}
	}
}

func (q *Queue) exec(j *job) {
	if !j.take() {
		return
	}
	if err := j.ctx.Err(); err != nil {
		j.done <- err
		return
	}
	j.done <- j.fn(j.ctx)
}

func (q *Queue) drain() {
	for {
		select {
		case j := <-q.jobs:
			j.done <- ErrQueueStopped
		default:
			return
		}
	}
}
