package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_ImplementsWorker(t *testing.T) {
	var _ Worker = NewQueue(0)
}

func TestQueue_Do_ReturnsJobResult(t *testing.T) {
	q := NewQueue(0)
	q.Run()
	defer q.Stop()

	err := q.Do(context.Background(), func(context.Context) error { return nil })
	assert.NoError(t, err)

	want := errors.New("boom")
	err = q.Do(context.Background(), func(context.Context) error { return want })
	assert.ErrorIs(t, err, want)
}

func TestQueue_Do_NotRunning(t *testing.T) {
	q := NewQueue(1)

	err := q.Do(context.Background(), func(context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrQueueNotRunning)
}

func TestQueue_Do_AfterStop(t *testing.T) {
	q := NewQueue(1)
	q.Run()
	q.Stop()

	called := false
	err := q.Do(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrQueueStopped)
	assert.False(t, called)
}

func TestQueue_SerializesJobs(t *testing.T) {
	q := NewQueue(4)
	q.Run()
	defer q.Stop()

	var (
		active  atomic.Int32
		overlap atomic.Bool
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := q.Do(context.Background(), func(context.Context) error {
				if active.Add(1) > 1 {
					overlap.Store(true)
				}
				time.Sleep(time.Millisecond)
				active.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load(), "jobs must never run concurrently")
}

func TestQueue_PreservesSubmissionOrder(t *testing.T) {
	q := NewQueue(8)
	q.Run()
	defer q.Stop()

	var order []int
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Do(context.Background(), func(context.Context) error {
			order = append(order, i)
			return nil
		}))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestQueue_Do_SkipsJobWithCancelledContext(t *testing.T) {
	q := NewQueue(1)
	q.Run()
	defer q.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = q.Do(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var called atomic.Bool
	errCh := make(chan error, 1)
	go func() {
		errCh <- q.Do(ctx, func(context.Context) error {
			called.Store(true)
			return nil
		})
	}()

	// let the second job reach the buffer, then cancel it
	time.Sleep(10 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	require.NoError(t, q.Do(context.Background(), func(context.Context) error { return nil }))
	assert.False(t, called.Load())
}

func TestQueue_Do_WaitsForStartedJobAfterCancel(t *testing.T) {
	q := NewQueue(1)
	q.Run()
	defer q.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	started := make(chan struct{})
	var finished atomic.Bool
	errCh := make(chan error, 1)
	go func() {
		errCh <- q.Do(ctx, func(context.Context) error {
			close(started)
			<-release
			finished.Store(true)
			return nil
		})
	}()
	<-started

	cancel()
	select {
	case err := <-errCh:
		t.Fatalf("Do returned %v while the job was still running", err)
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	assert.NoError(t, <-errCh)
	assert.True(t, finished.Load())
}

func TestQueue_Do_ReturnsResultOfStartedJobAfterCancel(t *testing.T) {
	q := NewQueue(1)
	q.Run()
	defer q.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	want := errors.New("write failed")
	err := q.Do(ctx, func(context.Context) error {
		cancel()
		return want
	})

	assert.ErrorIs(t, err, want)
}

func TestQueue_Stop_FailsPendingJobs(t *testing.T) {
	q := NewQueue(4)
	q.Run()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = q.Do(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	pending := make(chan error, 1)
	go func() {
		pending <- q.Do(context.Background(), func(context.Context) error { return nil })
	}()
	time.Sleep(10 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		q.Stop()
		close(stopped)
	}()

	// Stop waits for the running job
	select {
	case <-stopped:
		t.Fatal("Stop returned while a job was running")
	case <-time.After(10 * time.Millisecond):
	}

	close(release)
	<-stopped
	assert.ErrorIs(t, <-pending, ErrQueueStopped)
}

func TestQueue_RunAndStopAreIdempotent(t *testing.T) {
	q := NewQueue(1)

	assert.NotPanics(t, func() {
		q.Stop()
		q.Run()
		q.Stop()
	})

	q = NewQueue(1)
	assert.NotPanics(t, func() {
		q.Run()
		q.Run()
		q.Stop()
		q.Stop()
	})
}
