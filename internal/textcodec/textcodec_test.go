package textcodec

import (
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// referenceDecode is what every tier must agree with: valid sequences
// pass through, each invalid byte becomes U+FFFD.
func referenceDecode(b []byte) string {
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		out = append(out, r)
		i += size
	}
	return string(out)
}

func TestTiersAgreeOnValidInput(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"héllo wörld",
		"߿ࠀ�",
		"汉字テスト",
		"🙂🙃🌍",
		"a\x00b",
	}
	for _, s := range inputs {
		want := []byte(s)
		for _, c := range Tiers() {
			enc := c.Encode(s)
			assert.Equal(t, want, enc, "encode mismatch on %q for %s", s, c.Name())
			assert.Equal(t, s, c.Decode(enc), "decode mismatch on %q for %s", s, c.Name())
		}
	}
}

func TestTiersAgreeOnInvalidInput(t *testing.T) {
	inputs := [][]byte{
		{0xFF},
		{0x80},
		{0xC3},                   // truncated 2-byte
		{0xC0, 0xAF},             // overlong
		{0xE0, 0xA0},             // truncated 3-byte
		{0xE0, 0x80, 0x80},       // overlong 3-byte
		{0xED, 0xA0, 0x80},       // surrogate
		{0xF4, 0x90, 0x80, 0x80}, // above U+10FFFF
		{0xF5, 0x41},
		{'a', 0xFF, 'b'},
	}
	for _, b := range inputs {
		want := referenceDecode(b)
		for _, c := range Tiers() {
			assert.Equal(t, want, c.Decode(b), "decode mismatch on % x for %s", b, c.Name())
		}
	}
}

func TestReplacementPerInvalidByte(t *testing.T) {
	for _, c := range Tiers() {
		assert.Equal(t, "��", c.Decode([]byte{0xFF, 0xFE}), c.Name())
	}
}

func TestEncodePassesInvalidBytesThrough(t *testing.T) {
	s := string([]byte{'a', 0xFF, 'b'})
	for _, c := range Tiers() {
		assert.Equal(t, []byte(s), c.Encode(s), c.Name())
	}
}

func TestTierEquivalenceQuick(t *testing.T) {
	condition := func(b []byte) bool {
		want := referenceDecode(b)
		for _, c := range Tiers() {
			if c.Decode(b) != want {
				return false
			}
			if string(c.Encode(string(b))) != string(b) {
				return false
			}
		}
		return true
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		for _, c := range Tiers() {
			require.Equal(rt, s, c.Decode(c.Encode(s)), c.Name())
		}
	})
}

func TestManualDecodeMatchesStdlib(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "b")
		r1, s1, ok := decodeRune(append(b, 0x00)) // never empty
		r2, s2 := utf8.DecodeRune(append(b, 0x00))
		require.Equal(rt, r2, r1)
		require.Equal(rt, s2, s1)
		require.Equal(rt, r2 != utf8.RuneError || s2 > 1, ok)
	})
}

func TestDecodeReturnsOwnedString(t *testing.T) {
	for _, c := range Tiers() {
		b := []byte("abcd")
		s := c.Decode(b)
		b[0] = 'X'
		assert.Equal(t, "abcd", s, c.Name())
	}
}

func TestPickRespectsOverride(t *testing.T) {
	require.Equal(t, "std", pick("std").Name())
	require.Equal(t, "manual", pick("manual").Name())
	if fastest != nil {
		require.Equal(t, fastest.Name(), pick("").Name())
		require.Equal(t, fastest.Name(), pick("unsafe").Name())
	} else {
		require.Equal(t, "std", pick("").Name())
		require.Equal(t, "std", pick("unsafe").Name())
	}
}

func TestValidUTF8(t *testing.T) {
	condition := func(b []byte) bool {
		return validUTF8(b) == utf8.Valid(b)
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func FuzzTierEquivalence(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{0xFF, 0xC3, 0x28})
	f.Fuzz(func(t *testing.T, b []byte) {
		want := referenceDecode(b)
		for _, c := range Tiers() {
			require.Equal(t, want, c.Decode(b), c.Name())
		}
	})
}
