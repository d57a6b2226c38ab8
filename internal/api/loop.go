package api

// CompletionLoop serializes completion callbacks onto one goroutine, so
// callers never observe two of their handlers running at once. It stands in
// for the main-thread dispatch a mobile binding would use.
type CompletionLoop struct {
	tasks   chan func()
	done    chan struct{}
	onPanic func(v any)
}

// NewCompletionLoop starts the loop goroutine. A panicking task is
// recovered, reported to onPanic if non-nil, and does not stop the loop.
func NewCompletionLoop(onPanic func(v any)) *CompletionLoop {
	l := &CompletionLoop{
		tasks:   make(chan func(), 64),
		done:    make(chan struct{}),
		onPanic: onPanic,
	}
	go l.run()
	return l
}

func (l *CompletionLoop) run() {
	defer close(l.done)
	for task := range l.tasks {
		l.invoke(task)
	}
}

func (l *CompletionLoop) invoke(task func()) {
	defer func() {
		if v := recover(); v != nil && l.onPanic != nil {
			l.onPanic(v)
		}
	}()
	task()
}

// Enqueue submits a task to the loop. It blocks only while the queue is
// full. Enqueue must not be called after Close.
func (l *CompletionLoop) Enqueue(task func()) {
	l.tasks <- task
}

// Close stops the loop after the queued tasks drain and blocks until the
// final one has run.
func (l *CompletionLoop) Close() {
	close(l.tasks)
	<-l.done
}
