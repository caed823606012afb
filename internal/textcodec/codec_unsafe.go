//go:build !purego

package textcodec

import "unsafe"

var fastest Codec = UnsafeCodec{}

// UnsafeCodec reaches the underlying bytes of a string without an
// intermediate conversion on encode. Both directions return uniquely
// owned storage: decoded strings must stay stable when the source
// buffer is rewritten in place later, so aliasing the live bytes is
// not an option for a default tier.
type UnsafeCodec struct{}

func (UnsafeCodec) Name() string { return "unsafe" }

func (UnsafeCodec) Encode(s string) []byte {
	out := make([]byte, len(s))
	if len(s) > 0 {
		copy(out, unsafe.Slice(unsafe.StringData(s), len(s)))
	}
	return out
}

func (UnsafeCodec) Decode(b []byte) string {
	if validUTF8(b) {
		return string(b)
	}
	return sanitize(b)
}
