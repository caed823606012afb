// Package streams provides the minimal pull- and push-based sequence
// abstractions the buffer adapters are written against: a Readable that
// hands out chunks on demand, a ReadableStream that delivers chunks,
// an end signal or an error to registered listeners, and a
// WriteableStream sink. Concatenation of chunks is always injected by
// the caller through a Reducer, the package never assumes a chunk type.
package streams

import "sync"

// Readable is a pull-based source. Read returns the next chunk, or
// ok=false once the source is drained. A drained Readable stays drained.
type Readable[T any] interface {
	Read() (chunk T, ok bool)
}

// ReadableStream is a push-based source. Listeners are registered once
// and receive chunks in delivery order, followed by exactly one end or
// error signal. Signals arriving before a listener is registered are
// buffered and replayed on registration.
type ReadableStream[T any] interface {
	OnData(listener func(chunk T))
	OnEnd(listener func())
	OnError(listener func(err error))
}

// WriteableStream is the producer side of a ReadableStream. After End
// or Error the stream is terminal and further writes are dropped.
type WriteableStream[T any] interface {
	ReadableStream[T]
	Write(chunk T)
	End()
	Error(err error)
}

// Reducer coalesces buffered chunks into one.
type Reducer[T any] func(chunks []T) T

const (
	stateOpen = iota
	stateEnded
	stateErrored
)

type writeable[T any] struct {
	mu sync.Mutex

	state   int
	pending []T
	err     error

	// whether the end signal already reached a listener
	endDelivered bool

	dataListeners []func(T)
	endListeners  []func()
	errListeners  []func(error)

	reduce Reducer[T]
}

// NewWriteableStream constructs a stream sink. Chunks written before
// the first data listener attaches are buffered and handed over as a
// single reduced chunk on registration.
func NewWriteableStream[T any](reduce Reducer[T]) WriteableStream[T] {
	return &writeable[T]{reduce: reduce}
}

func (w *writeable[T]) Write(chunk T) {
	w.mu.Lock()
	if w.state != stateOpen {
		w.mu.Unlock()
		return
	}
	if len(w.dataListeners) == 0 {
		w.pending = append(w.pending, chunk)
		w.mu.Unlock()
		return
	}
	listeners := append([]func(T){}, w.dataListeners...)
	w.mu.Unlock()
	for _, l := range listeners {
		l(chunk)
	}
}

func (w *writeable[T]) End() {
	w.mu.Lock()
	if w.state != stateOpen {
		w.mu.Unlock()
		return
	}
	w.state = stateEnded
	if len(w.pending) > 0 {
		// end is held back until a data listener drains the buffer
		w.mu.Unlock()
		return
	}
	w.endDelivered = true
	listeners := append([]func(){}, w.endListeners...)
	w.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}

func (w *writeable[T]) Error(err error) {
	w.mu.Lock()
	if w.state != stateOpen {
		w.mu.Unlock()
		return
	}
	w.state = stateErrored
	w.err = err
	w.pending = nil // no partial delivery once errored
	listeners := append([]func(error){}, w.errListeners...)
	w.mu.Unlock()
	for _, l := range listeners {
		l(err)
	}
}

func (w *writeable[T]) OnData(listener func(T)) {
	w.mu.Lock()
	w.dataListeners = append(w.dataListeners, listener)
	var flush []T
	if len(w.pending) > 0 {
		if len(w.pending) > 1 && w.reduce != nil {
			flush = []T{w.reduce(w.pending)}
		} else {
			flush = w.pending
		}
		w.pending = nil
	}
	var endListeners []func()
	if flush != nil && w.state == stateEnded && !w.endDelivered {
		w.endDelivered = true
		endListeners = append([]func(){}, w.endListeners...)
	}
	w.mu.Unlock()
	for _, chunk := range flush {
		listener(chunk)
	}
	for _, l := range endListeners {
		l()
	}
}

func (w *writeable[T]) OnEnd(listener func()) {
	w.mu.Lock()
	w.endListeners = append(w.endListeners, listener)
	replay := w.state == stateEnded && w.endDelivered
	w.mu.Unlock()
	if replay {
		listener()
	}
}

func (w *writeable[T]) OnError(listener func(err error)) {
	w.mu.Lock()
	w.errListeners = append(w.errListeners, listener)
	replay := w.state == stateErrored
	err := w.err
	w.mu.Unlock()
	if replay {
		listener(err)
	}
}
