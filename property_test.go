package bytebuf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStringRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		b := FromString(s)
		require.Equal(t, s, b.String())
	})
}

func TestConcatLengthProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 8).Draw(rt, "count")
		var (
			bufs []Buffer
			want []byte
		)
		for i := 0; i < count; i++ {
			part := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(rt, "part")
			bufs = append(bufs, Wrap(part))
			want = append(want, part...)
		}
		out := Concat(bufs...)
		require.Equal(t, len(want), out.Len())
		require.True(t, bytes.Equal(want, out.Bytes()))
	})
}

func TestSliceMatchesBackingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "raw")
		b := Wrap(raw)
		start := rapid.IntRange(0, len(raw)).Draw(rt, "start")
		end := rapid.IntRange(start, len(raw)).Draw(rt, "end")
		s := b.Slice(start, end)
		require.Equal(t, end-start, s.Len())
		require.True(t, bytes.Equal(raw[start:end], s.Bytes()))
	})
}

func TestWriteReadUInt32BEProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := Alloc(8)
		v := rapid.Uint32().Draw(rt, "v")
		off := rapid.IntRange(0, 4).Draw(rt, "off")
		b.WriteUInt32BE(v, off)
		require.Equal(t, v, b.ReadUInt32BE(off))
	})
}
