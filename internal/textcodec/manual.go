package textcodec

import "strings"

// ManualCodec is the last-resort tier: a byte-level UTF-8 encoder and
// decoder with no help from the runtime or unicode/utf8. It exists so
// the byte-identical contract can be checked against an independent
// implementation, and as the shared sanitizer the fast tiers fall back
// to when a payload contains invalid sequences.
type ManualCodec struct{}

const runeError = 0xFFFD

func (ManualCodec) Name() string { return "manual" }

func (ManualCodec) Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size, ok := decodeRune(s[i:])
		if !ok {
			// carry the raw byte through, matching the runtime conversion
			out = append(out, s[i])
		} else {
			out = appendRune(out, r)
		}
		i += size
	}
	return out
}

func (ManualCodec) Decode(b []byte) string {
	return sanitize(b)
}

// sanitize decodes b as UTF-8, substituting U+FFFD for each byte that
// does not begin a valid sequence. Valid input round-trips unchanged.
func sanitize(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		_, size, ok := decodeRune(b[i:])
		if !ok {
			sb.WriteByte(0xEF)
			sb.WriteByte(0xBF)
			sb.WriteByte(0xBD)
		} else {
			sb.Write(b[i : i+size])
		}
		i += size
	}
	return sb.String()
}

func validUTF8(b []byte) bool {
	for i := 0; i < len(b); {
		_, size, ok := decodeRune(b[i:])
		if !ok {
			return false
		}
		i += size
	}
	return true
}

func isCont(c byte) bool {
	return c&0xC0 == 0x80
}

// decodeRune reads one rune from the head of s. On malformed input it
// reports (U+FFFD, 1, false) so the caller steps exactly one byte, the
// same convention the standard decoder uses.
func decodeRune[T ~string | ~[]byte](s T) (r rune, size int, ok bool) {
	c := s[0]
	switch {
	case c < 0x80:
		return rune(c), 1, true
	case c < 0xC2:
		// continuation byte or overlong two-byte lead
		return runeError, 1, false
	case c < 0xE0:
		if len(s) < 2 || !isCont(s[1]) {
			return runeError, 1, false
		}
		return rune(c&0x1F)<<6 | rune(s[1]&0x3F), 2, true
	case c < 0xF0:
		if len(s) < 2 || !isCont(s[1]) {
			return runeError, 1, false
		}
		if c == 0xE0 && s[1] < 0xA0 {
			return runeError, 1, false // overlong
		}
		if c == 0xED && s[1] > 0x9F {
			return runeError, 1, false // surrogate range
		}
		if len(s) < 3 || !isCont(s[2]) {
			return runeError, 1, false
		}
		return rune(c&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3, true
	case c <= 0xF4:
		if len(s) < 2 || !isCont(s[1]) {
			return runeError, 1, false
		}
		if c == 0xF0 && s[1] < 0x90 {
			return runeError, 1, false // overlong
		}
		if c == 0xF4 && s[1] > 0x8F {
			return runeError, 1, false // above U+10FFFF
		}
		if len(s) < 3 || !isCont(s[2]) {
			return runeError, 1, false
		}
		if len(s) < 4 || !isCont(s[3]) {
			return runeError, 1, false
		}
		r = rune(c&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F)
		return r, 4, true
	default:
		return runeError, 1, false
	}
}

func appendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r)&0x3F)
	case r < 0x10000:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	default:
		return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12)&0x3F, 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	}
}
