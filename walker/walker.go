// Package walker implements the lazy object tree walker:
// given a byte source it yields top-level objects one at a time, skipping
// unparsed payloads cheaply, and can descend into "only_sub_objects"
// containers on request.
package walker

import (
	"iter"

	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/stream"
)

// Object is one framed record the walker yielded: its header, plus the
// source and engine needed to build a codec.Reader over its payload (or to
// walk into it, if it is a container).
type Object struct {
	Header header.Header
	Depth  int

	src    stream.Source
	engine endian.EndianEngine
}

// Source returns the underlying byte source, positioned at the object's
// payload start. Callers build a codec.Reader over it to parse the payload,
// or pass it straight to objects.Parse via a fresh reader.
func (o Object) Source() stream.Source { return o.src }

// Engine returns the endian engine the walker was configured with.
func (o Object) Engine() endian.EndianEngine { return o.engine }

// config holds the functional options WalkOption configures.
type config struct {
	recurse  bool
	maxDepth int
}

// WalkOption configures a Walk call, mirroring the functional-options idiom
// used throughout this codebase's predecessor for encoder construction.
type WalkOption func(*config)

// WithRecursion makes the walker descend into container objects
// (OnlySubObjects == true) and yield their children as well as top-level
// objects.
func WithRecursion() WalkOption {
	return func(c *config) { c.recurse = true }
}

// WithMaxDepth bounds recursion depth; depth 0 is top-level. It has no
// effect unless WithRecursion is also given. A non-positive value means
// unbounded.
func WithMaxDepth(n int) WalkOption {
	return func(c *config) { c.maxDepth = n }
}

// Walk returns a lazy sequence of objects read from src. Each yielded
// Object's payload has NOT been consumed; the source is positioned at
// payload start when the object is produced and is advanced to just past
// the payload (forward progress) before the next object is read, whether
// or not the caller consumed anything from the yielded object's source in
// between.
//
// Stopping iteration early (the caller returning false from its range
// function, or a `break`) leaves the source wherever the caller last left
// it; no background work is performed and nothing needs to be closed.
func Walk(src stream.Source, engine endian.EndianEngine, opts ...WalkOption) iter.Seq2[Object, error] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Object, error) bool) {
		walk(src, engine, cfg, 0, noBoundary, yield)
	}
}

// noBoundary marks a walk with no upper bound on how far it may read, used
// for the top-level sequence. Recursive descent into a container always
// passes a real boundary instead.
const noBoundary int64 = -1

// walk drives one level of iteration, starting at src's current position and
// continuing until src reaches boundary (if set), the source cannot produce
// another header (EOF from the caller's point of view, surfaced as a nil
// error with no remaining objects), or a header parse fails.
//
// boundary bounds a child walk to its parent's declared payload range
// (PayloadOffset+Length): without it, a container whose framed bytes happen
// to exactly fill the parent's payload would keep reading past it and
// misparse the next sibling's header as a grandchild.
func walk(src stream.Source, engine endian.EndianEngine, cfg config, depth int, boundary int64, yield func(Object, error) bool) bool {
	for {
		if boundary >= 0 && src.Pos() >= boundary {
			return true
		}

		startPos := src.Pos()

		h, err := header.Read(src, engine)
		if err != nil {
			if startPos == src.Pos() {
				return true
			}

			return yield(Object{}, err)
		}

		obj := Object{Header: h, Depth: depth, src: src, engine: engine}

		descend := cfg.recurse && h.OnlySubObjects && (cfg.maxDepth <= 0 || depth < cfg.maxDepth)

		if !yield(obj, nil) {
			return false
		}

		if descend {
			if err := src.Seek(h.PayloadOffset); err != nil {
				return yield(Object{}, err)
			}

			if !walk(src, engine, cfg, depth+1, h.PayloadOffset+h.Length, yield) {
				return false
			}
		}

		// Forward progress: whether or not the caller (or recursion above)
		// consumed the payload, land exactly at its end before the next
		// iteration.
		if err := src.Seek(h.PayloadOffset + h.Length); err != nil {
			return yield(Object{}, err)
		}
	}
}
