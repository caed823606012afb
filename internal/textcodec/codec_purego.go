//go:build purego

package textcodec

// No unsafe tier in purego builds; selection falls through to StdCodec.
var fastest Codec
