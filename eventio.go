// Package eventio decodes the EventIO binary container format used by the
// simtel_array Cherenkov telescope simulation toolchain: a stream of
// nested, self-describing objects identified by numeric type codes, each
// carrying a version, an identifier, and a length.
//
// # Core Features
//
//   - Lazy, allocation-light discovery of top-level objects without
//     reading payloads until asked
//   - Type-code dispatch across fixed codes and the telescope-ID-encoded
//     2100+/2200+ ranges
//   - One payload parser per supported (type, version) pair, returning a
//     concrete Go struct rather than an untyped map
//   - A primitive codec underneath (fixed-width scalars, the scount
//     variable-length integer, differential ADC vectors) usable directly
//     by callers that need more control than the top-level API offers
//
// # Basic Usage
//
// Decoding every object in a stream already held in memory:
//
//	src := stream.NewBytesSource(data)
//	for obj, err := range eventio.Walk(src) {
//	    if err != nil {
//	        break
//	    }
//
//	    rec, err := eventio.Decode(obj)
//	    if err != nil {
//	        continue // unknown/opaque types return objects.Raw, not an error
//	    }
//
//	    switch v := rec.(type) {
//	    case objects.CamSettings:
//	        fmt.Println(v.TelescopeID, v.NumPixels)
//	    }
//	}
//
// # Package Structure
//
// This file provides convenient top-level wrappers around the walker,
// header, codec, registry, and objects packages, covering the common case
// of decoding a whole stream with the little-endian engine EventIO always
// uses. For recursive descent into container objects, byte-exact error
// inspection, or building a Reader over an already-known payload range, use
// those packages directly.
package eventio

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/objects"
	"github.com/go-iact/eventio/registry"
	"github.com/go-iact/eventio/stream"
	"github.com/go-iact/eventio/walker"
)

// Open wraps an in-memory byte slice as a Source ready for Walk. It is a
// thin alias over stream.NewBytesSource for callers that only need the
// common case.
func Open(data []byte) stream.Source {
	return stream.NewBytesSource(data)
}

// Walk yields the top-level objects in src using EventIO's fixed
// little-endian byte order. It does not descend into container objects;
// pass walker.WithRecursion() via walker.Walk directly for that.
func Walk(src stream.Source) func(yield func(walker.Object, error) bool) {
	return walker.Walk(src, endian.GetLittleEndianEngine())
}

// Decode parses obj's payload into its concrete record type. Opaque and
// unrecognized type codes return objects.Raw rather than an error, per
// the "surface as header plus raw bytes" rule for objects with no
// payload parser.
func Decode(obj walker.Object) (objects.Record, error) {
	resolved := registry.Resolve(obj.Header.Type)

	r := codec.NewReader(obj.Source(), obj.Engine(), obj.Header.PayloadOffset, obj.Header.Length)

	return objects.Parse(resolved, obj.Header, r)
}
