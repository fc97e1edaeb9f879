package workers

import "errors"

var (
	// ErrQueueNotRunning is returned by Queue.Do before Run was called.
	ErrQueueNotRunning = errors.New("queue is not running")

	// ErrQueueStopped is returned by Queue.Do after Stop, and to jobs that
	// were still waiting when the queue stopped.
	ErrQueueStopped = errors.New("queue is stopped")
)
