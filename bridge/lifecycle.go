package bridge

import "sync"

// Lifecycle tracks in-flight dispatches and input closure, and signals Done
// once input is closed and nothing is pending.
type Lifecycle struct {
	mu          sync.Mutex
	pending     int
	inputClosed bool
	terminated  bool
	done        chan struct{}
}

// NewLifecycle creates a running lifecycle.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{done: make(chan struct{})}
}

// Begin records a dispatch about to be issued.
func (l *Lifecycle) Begin() {
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()
}

// Complete records a finished dispatch, successful or not.
func (l *Lifecycle) Complete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == 0 {
		return
	}
	l.pending--
	l.evaluate()
}

// CloseInput records end of input. Subsequent calls are no-ops.
func (l *Lifecycle) CloseInput() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inputClosed {
		return
	}
	l.inputClosed = true
	l.evaluate()
}

// Pending returns the number of dispatches not yet completed.
func (l *Lifecycle) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// InputClosed reports whether end of input was observed.
func (l *Lifecycle) InputClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inputClosed
}

// Done is closed once the bridge has drained.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

// evaluate must be called with mu held.
func (l *Lifecycle) evaluate() {
	if l.terminated || !l.inputClosed || l.pending > 0 {
		return
	}
	l.terminated = true
	close(l.done)
}
