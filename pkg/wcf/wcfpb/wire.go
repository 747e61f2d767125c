package wcfpb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// field is one decoded top-level field. Varint fields fill u; length-delimited
// fields fill b (aliasing the input).
type field struct {
	num protowire.Number
	typ protowire.Type
	u   uint64
	b   []byte
}

func (f field) str() string {
	if f.typ != protowire.BytesType {
		return ""
	}
	return string(f.b)
}

func (f field) bytes() []byte {
	if f.typ != protowire.BytesType || len(f.b) == 0 {
		return nil
	}
	return append([]byte(nil), f.b...)
}

func (f field) uint64() uint64 {
	if f.typ != protowire.VarintType {
		return 0
	}
	return f.u
}

func (f field) int32() int32   { return int32(f.uint64()) }
func (f field) uint32() uint32 { return uint32(f.uint64()) }
func (f field) int64() int64   { return int64(f.uint64()) }
func (f field) bool() bool     { return protowire.DecodeBool(f.uint64()) }

// isMessage reports whether f can hold an embedded message.
func (f field) isMessage() bool { return f.typ == protowire.BytesType }

// walk calls fn for every varint or length-delimited field in b and skips the
// rest. Malformed input is the only error.
func walk(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f.u = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f.b = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// Proto3 singular fields are omitted at their zero value.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendUint64(b, num, uint64(int64(v)))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendUint64(b, num, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendUint64(b, num, protowire.EncodeBool(v))
}

// Oneof members and repeated elements are always present on the wire.

func appendVarintAlways(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendStringAlways(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// appender is implemented by every message type.
type appender interface {
	appendTo(b []byte) []byte
}

func appendMessage(b []byte, num protowire.Number, m appender) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendTo(nil))
}

func appendBytesAlways(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}
