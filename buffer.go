// Package bytebuf provides a uniform byte-buffer value type for moving
// binary and text payloads between in-memory values, encoded strings
// and chunked streams, plus the adapters bridging buffers to pull- and
// push-based chunk sequences.
//
// A Buffer either exclusively owns freshly allocated storage (Alloc,
// FromString, Concat, Clone) or is a view aliasing storage it shares
// with other handles (Wrap, Slice). Writes through one aliasing handle
// are visible through every other; callers sharing a view across
// goroutines must serialize their own writes.
package bytebuf

import (
	"bytes"
	"encoding/binary"

	"github.com/rawbytedev/bytebuf/internal/textcodec"
)

// Buffer is a handle around a backing byte slice. The zero value is an
// empty buffer. Buffers never resize their backing storage after
// construction; mutation rewrites bytes in place (Set, the integer
// writers) or produces a new handle (Slice, Concat).
type Buffer struct {
	buf []byte
}

// Alloc returns a new buffer of exactly n bytes. The Go runtime zeroes
// fresh memory, but callers must not rely on it: the contract is
// unspecified initial content, fully overwrite before reading.
func Alloc(n int) Buffer {
	return Buffer{buf: make([]byte, n)}
}

// Wrap returns a zero-copy view over b. The buffer aliases the caller's
// slice; writes on either side are visible on the other.
func Wrap(b []byte) Buffer {
	return Buffer{buf: b}
}

// FromString encodes s as UTF-8 into uniquely owned storage, using the
// codec tier selected at process start. All tiers produce identical
// bytes for the same input.
func FromString(s string) Buffer {
	return Buffer{buf: textcodec.Active().Encode(s)}
}

// Concat returns one newly allocated buffer holding all inputs' bytes
// back to back. No inputs yields a zero-length buffer.
func Concat(bufs ...Buffer) Buffer {
	total := 0
	for _, b := range bufs {
		total += len(b.buf)
	}
	return ConcatSized(total, bufs...)
}

// ConcatSized is Concat with an explicit capacity. Inputs are copied at
// the running offset and only bytes that fit are written; declaring a
// capacity smaller than the true sum is the caller's error. A capacity
// above the sum leaves the tail untouched.
func ConcatSized(total int, bufs ...Buffer) Buffer {
	out := make([]byte, total)
	off := 0
	for _, b := range bufs {
		if off >= total {
			break
		}
		off += copy(out[off:], b.buf)
	}
	return Buffer{buf: out}
}

// Len returns the byte length of the backing storage.
func (b Buffer) Len() int {
	return len(b.buf)
}

// Bytes exposes the backing storage without copying. Mutating the
// returned slice mutates the buffer.
func (b Buffer) Bytes() []byte {
	return b.buf
}

// String decodes the full contents as UTF-8. Invalid sequences are
// replaced with U+FFFD per invalid byte rather than failing, on every
// codec tier alike.
func (b Buffer) String() string {
	return textcodec.Active().Decode(b.buf)
}

// Slice returns a view over [start, end) aliasing the same storage, no
// copy. Indices are clamped to [0, Len()]; start beyond end yields an
// empty view.
func (b Buffer) Slice(start, end int) Buffer {
	start = clampIndex(start, len(b.buf))
	end = clampIndex(end, len(b.buf))
	if start > end {
		start = end
	}
	return Buffer{buf: b.buf[start:end]}
}

// SliceFrom is Slice(start, Len()).
func (b Buffer) SliceFrom(start int) Buffer {
	return b.Slice(start, len(b.buf))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Clone returns a copy of the buffer in uniquely owned storage.
func (b Buffer) Clone() Buffer {
	c := make([]byte, len(b.buf))
	copy(c, b.buf)
	return Buffer{buf: c}
}

// Equal reports whether both buffers hold the same bytes.
func (b Buffer) Equal(other Buffer) bool {
	return bytes.Equal(b.buf, other.buf)
}

// IndexOf returns the byte offset of the first occurrence of sub, or
// -1 when absent.
func (b Buffer) IndexOf(sub Buffer) int {
	return bytes.Index(b.buf, sub.buf)
}

// Set copies all of src into the backing storage starting at off.
// The caller must ensure off+src.Len() <= Len(); an offset past the
// end panics via the runtime bounds check.
func (b Buffer) Set(src Buffer, off int) {
	copy(b.buf[off:], src.buf)
}

// ReadUInt32BE reads the big-endian uint32 at bytes off..off+3.
func (b Buffer) ReadUInt32BE(off int) uint32 {
	return binary.BigEndian.Uint32(b.buf[off:])
}

// WriteUInt32BE writes v big-endian into bytes off..off+3.
func (b Buffer) WriteUInt32BE(v uint32, off int) {
	binary.BigEndian.PutUint32(b.buf[off:], v)
}

// ReadUInt32LE reads the little-endian uint32 at bytes off..off+3.
func (b Buffer) ReadUInt32LE(off int) uint32 {
	return binary.LittleEndian.Uint32(b.buf[off:])
}

// WriteUInt32LE writes v little-endian into bytes off..off+3.
func (b Buffer) WriteUInt32LE(v uint32, off int) {
	binary.LittleEndian.PutUint32(b.buf[off:], v)
}

// ReadUInt16LE reads the little-endian uint16 at bytes off..off+1.
func (b Buffer) ReadUInt16LE(off int) uint16 {
	return binary.LittleEndian.Uint16(b.buf[off:])
}

// WriteUInt16LE writes v little-endian into bytes off..off+1.
func (b Buffer) WriteUInt16LE(v uint16, off int) {
	binary.LittleEndian.PutUint16(b.buf[off:], v)
}

// ReadUInt8 reads the byte at off.
func (b Buffer) ReadUInt8(off int) uint8 {
	return b.buf[off]
}

// WriteUInt8 writes v at off.
func (b Buffer) WriteUInt8(v uint8, off int) {
	b.buf[off] = v
}
