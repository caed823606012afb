package bytebuf

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/bytebuf/pkg/streams"
)

// ErrUnsupportedChunk reports a stream chunk that is neither text nor
// raw bytes where one of the two was required.
var ErrUnsupportedChunk = errors.New("unsupported chunk type")

func concatChunks(chunks []Buffer) Buffer {
	return Concat(chunks...)
}

// ReadableToBuffer drains r synchronously and concatenates every chunk
// into one buffer.
func ReadableToBuffer(r streams.Readable[Buffer]) Buffer {
	return streams.ConsumeReadable(r, concatChunks)
}

// ToReadable wraps b as a one-shot readable yielding the single chunk
// then exhaustion.
func ToReadable(b Buffer) streams.Readable[Buffer] {
	return streams.ToReadable(b)
}

// StreamToBuffer drains s until end-of-stream, blocking the calling
// goroutine, and returns the concatenation of all delivered chunks.
// If the stream signals an error first, the error is returned and no
// partial buffer is surfaced. There is no mid-drain abort.
func StreamToBuffer(s streams.ReadableStream[Buffer]) (Buffer, error) {
	return streams.ConsumeStream(s, concatChunks)
}

// ToStream wraps b as a push stream delivering the one chunk then end.
func ToStream(b Buffer) streams.ReadableStream[Buffer] {
	return streams.ToStream(b, concatChunks)
}

// DecodeStream converts a stream whose chunks are raw bytes or text
// into a stream of buffers, via Wrap for []byte and FromString for
// string. Buffer chunks pass through. Delivery order and end/error
// signals are preserved; any other chunk type errors the output stream
// with ErrUnsupportedChunk.
func DecodeStream(s streams.ReadableStream[any]) streams.ReadableStream[Buffer] {
	return streams.Transform(s, func(chunk any) (Buffer, error) {
		switch v := chunk.(type) {
		case Buffer:
			return v, nil
		case []byte:
			return Wrap(v), nil
		case string:
			return FromString(v), nil
		default:
			return Buffer{}, fmt.Errorf("%w: %T", ErrUnsupportedChunk, chunk)
		}
	}, concatChunks)
}

// NewWriteableBufferStream constructs a push-style sink whose buffered
// chunks coalesce through Concat when read back.
func NewWriteableBufferStream() streams.WriteableStream[Buffer] {
	return streams.NewWriteableStream(concatChunks)
}

// PrefixedReadable yields prefix, then everything rest yields.
func PrefixedReadable(prefix Buffer, rest streams.Readable[Buffer]) streams.Readable[Buffer] {
	return streams.Prefixed(prefix, rest)
}
