package workers

// Workers runs a fixed set of workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. They are started in the given order and stopped in
// reverse.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
