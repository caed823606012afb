package textcodec

import "os"

// Codec converts between strings and UTF-8 byte payloads. Every
// implementation must produce byte-identical output for the same input,
// so callers may treat the tiers as interchangeable.
type Codec interface {
	Name() string
	Encode(s string) []byte
	Decode(b []byte) string
}

// EnvVar forces a specific tier, mainly for tests and debugging.
// Accepted values: "unsafe", "std", "manual".
const EnvVar = "BYTEBUF_CODEC"

var active = pick(os.Getenv(EnvVar))

// Active returns the codec selected at process start.
func Active() Codec {
	return active
}

// Tiers returns every codec available in this build, fastest first.
func Tiers() []Codec {
	if fastest != nil {
		return []Codec{fastest, StdCodec{}, ManualCodec{}}
	}
	return []Codec{StdCodec{}, ManualCodec{}}
}

func pick(forced string) Codec {
	switch forced {
	case "std":
		return StdCodec{}
	case "manual":
		return ManualCodec{}
	case "unsafe":
		if fastest != nil {
			return fastest
		}
	}
	if fastest != nil {
		return fastest
	}
	return StdCodec{}
}

// StdCodec uses the runtime's own string<->[]byte conversions.
type StdCodec struct{}

func (StdCodec) Name() string { return "std" }

func (StdCodec) Encode(s string) []byte {
	return []byte(s)
}

func (StdCodec) Decode(b []byte) string {
	if validUTF8(b) {
		return string(b)
	}
	return sanitize(b)
}
