// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and Queue, a worker that executes
// submitted jobs one at a time.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the work happens in
// goroutines owned by the worker. Stop ends the work and blocks until those
// goroutines have exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { /* start background processing */ }
//	func (w *MyWorker) Stop() { /* cancel and wait */ }
type Worker interface {
	Run()
	Stop()
}
