package streams

import "sync"

type oneShot[T any] struct {
	chunk T
	done  bool
}

func (o *oneShot[T]) Read() (T, bool) {
	if o.done {
		var zero T
		return zero, false
	}
	o.done = true
	return o.chunk, true
}

// ToReadable wraps a single chunk as a one-shot pull source.
func ToReadable[T any](chunk T) Readable[T] {
	return &oneShot[T]{chunk: chunk}
}

// ToStream wraps a single chunk as a push source that delivers the
// chunk and ends as soon as a data listener attaches.
func ToStream[T any](chunk T, reduce Reducer[T]) ReadableStream[T] {
	w := NewWriteableStream(reduce)
	w.Write(chunk)
	w.End()
	return w
}

// ConsumeReadable drains r synchronously and coalesces the chunks
// through reduce. A single-chunk source is returned as-is without
// invoking the reducer.
func ConsumeReadable[T any](r Readable[T], reduce Reducer[T]) T {
	var chunks []T
	for {
		chunk, ok := r.Read()
		if !ok {
			break
		}
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 1 {
		return chunks[0]
	}
	return reduce(chunks)
}

// ConsumeStream drains s to completion, parking the calling goroutine
// until the end or error signal. On error the zero value is returned
// together with the error; chunks received before the failure are
// discarded.
func ConsumeStream[T any](s ReadableStream[T], reduce Reducer[T]) (T, error) {
	var (
		mu     sync.Mutex
		chunks []T
	)
	done := make(chan error, 1)
	s.OnError(func(err error) {
		select {
		case done <- err:
		default:
		}
	})
	s.OnEnd(func() {
		select {
		case done <- nil:
		default:
		}
	})
	s.OnData(func(chunk T) {
		mu.Lock()
		chunks = append(chunks, chunk)
		mu.Unlock()
	})
	if err := <-done; err != nil {
		var zero T
		return zero, err
	}
	mu.Lock()
	defer mu.Unlock()
	return reduce(chunks), nil
}

// Transform maps every chunk of s through mapFn, preserving delivery
// order and forwarding end/error signals unchanged. A mapFn failure
// errors the returned stream.
func Transform[S, T any](s ReadableStream[S], mapFn func(S) (T, error), reduce Reducer[T]) ReadableStream[T] {
	out := NewWriteableStream(reduce)
	s.OnError(func(err error) {
		out.Error(err)
	})
	s.OnEnd(func() {
		out.End()
	})
	s.OnData(func(chunk S) {
		mapped, err := mapFn(chunk)
		if err != nil {
			out.Error(err)
			return
		}
		out.Write(mapped)
	})
	return out
}

type prefixed[T any] struct {
	prefix *T
	rest   Readable[T]
}

func (p *prefixed[T]) Read() (T, bool) {
	if p.prefix != nil {
		chunk := *p.prefix
		p.prefix = nil
		return chunk, true
	}
	return p.rest.Read()
}

// Prefixed returns a readable yielding prefix first, then everything
// rest yields.
func Prefixed[T any](prefix T, rest Readable[T]) Readable[T] {
	return &prefixed[T]{prefix: &prefix, rest: rest}
}
