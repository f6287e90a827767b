package doc

import (
	"log/slog"

	"github.com/lazyjson/lazyjson/arena"
	"github.com/lazyjson/lazyjson/pathcache"
	"github.com/lazyjson/lazyjson/token"
)

// Document is a parsed, lazily-materialized JSON document. It owns the
// source buffer it was parsed from: every token and every materialized
// string value is a slice of that buffer, so Document retains it for
// the lifetime of every Element it hands out.
//
// A Document is not safe for concurrent use; see Freeze for a
// read-only escape hatch.
type Document struct {
	src    []byte
	toks   []token.Token
	root   *Element
	arena  *arena.Arena
	cache  *pathcache.LRU[*Element]
	logger *slog.Logger
	frozen bool
}

// Option configures a Document at Parse time.
type Option func(*config) error

type config struct {
	blockSize int
	cacheCap  int
	useCache  bool
	logger    *slog.Logger
}

// WithArenaBlockSize sets the string arena's block size in bytes.
// Non-positive values fall back to arena.DefaultBlockSize.
func WithArenaBlockSize(n int) Option {
	return func(c *config) error {
		c.blockSize = n
		return nil
	}
}

// WithPathCache enables the optional LRU path cache with the given
// capacity, which must be > 0. Without this option Get/Set resolve
// every component by walking the tree, never consulting a cache.
func WithPathCache(capacity int) Option {
	return func(c *config) error {
		if capacity <= 0 {
			return ErrInvalidCacheCapacity
		}
		c.useCache = true
		c.cacheCap = capacity
		return nil
	}
}

// WithLogger sets the diagnostic sink used for Debug-level parse/resolve
// tracing. The default is slog.Default(); library code never logs above
// Debug, matching the spec's "diagnostic text is not part of the
// contract" stance.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// Freeze eagerly materializes every element in the document and marks
// it frozen. After Freeze, Get never mutates document state, so a
// frozen Document's Get calls are safe to run concurrently from
// multiple goroutines. Get on a frozen Document does not use the path
// cache.
func (d *Document) Freeze() {
	d.freezeElement(d.root)
	d.frozen = true
}

// Reset walks the document breadth-first and drops every unmodified
// container's materialized children, marking it un-materialized again;
// this includes an unmodified root, which Parse had expanded eagerly.
// It exists for callers holding a document alive
// much longer than any individual query needs its materialized tree:
// a BFS queue is used instead of recursion so a document nested
// thousands of levels deep can be reset without risking a stack
// overflow. Modified containers keep their children, since a replaced
// child has no backing token span to lazily reconstruct from; the
// unmodified containers below them are still reset.
func (d *Document) Reset() {
	queue := make([]*Element, 0, 16)
	queue = append(queue, d.root)
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.typ != ObjectType && e.typ != ArrayType {
			continue
		}
		for _, child := range e.children {
			queue = append(queue, child)
		}
		if !e.modified {
			e.children = nil
			e.materialized = false
		}
	}
	if d.cache != nil {
		d.cache.Clear()
	}
}

func (d *Document) freezeElement(e *Element) {
	if err := d.materialize(e); err != nil {
		return
	}
	if e.typ != ObjectType && e.typ != ArrayType {
		return
	}
	for _, k := range e.keys {
		child, ok := e.children[k]
		if !ok {
			continue
		}
		d.freezeElement(child)
	}
}
