// Package wcfpb encodes and decodes the WeChatFerry RPC envelopes.
//
// The SDK speaks protobuf (wcf.proto and roomdata.proto). This package keeps
// a hand-maintained Go rendition of those messages and encodes them with
// protowire, so the module needs no protoc step.
//
// Request and Response each carry an optional payload drawn from a closed set
// of variants (the proto oneof). Decoding is lenient: unknown fields are
// skipped and an unknown oneof member yields a nil payload, never an error.
// Typed accessors on Response return zero values for any other shape.
package wcfpb
