package doc

import (
	"fmt"

	"github.com/lazyjson/lazyjson/path"
)

// Get resolves path against the document, materializing nodes only
// along the traversed branch.
//
// If resolution reaches a primitive before the path is exhausted, that
// primitive is materialized and returned; any trailing components are
// silently ignored (this mirrors the engine's observed behavior rather
// than treating it as an error — see the design notes on descending
// past a primitive).
//
// Get is logically a write: lazy materialization mutates the document
// tree as a side effect even though nothing observable via Dump
// changes. Use Freeze first if you need concurrent readers.
func (d *Document) Get(p string) (*Element, error) {
	components, err := path.Split(p)
	if err != nil {
		return nil, err
	}

	// A frozen document bypasses the cache: Get would otherwise mutate
	// cache state on every lookup.
	useCache := d.cache != nil && !d.frozen
	if useCache {
		if e, ok := d.cache.Get(p); ok {
			return e, nil
		}
	}

	e := d.root
	for _, comp := range components {
		next, stop, err := d.step(e, comp)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		e = next
	}
	if !e.materialized {
		if err := d.materialize(e); err != nil {
			return nil, err
		}
	}

	if useCache {
		d.cache.Set(p, e)
	}
	return e, nil
}

// step resolves one path component from e. stop reports that e was a
// primitive and resolution should end immediately, returning e itself.
func (d *Document) step(e *Element, comp string) (next *Element, stop bool, err error) {
	switch e.typ {
	case NullType, BooleanType, NumberType, StringType:
		if !e.materialized {
			if err := d.materialize(e); err != nil {
				return nil, false, err
			}
		}
		return e, true, nil
	case ObjectType, ArrayType:
		if !e.materialized {
			if err := d.materialize(e); err != nil {
				return nil, false, err
			}
		}
		if child, ok := e.children[comp]; ok {
			if !child.materialized {
				if err := d.materialize(child); err != nil {
					return nil, false, err
				}
			}
			return child, false, nil
		}
		tokIdx, ok := e.tokenIndex[comp]
		if !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrKeyNotFound, comp)
		}
		child := newElement()
		idx := tokIdx
		if err := d.parseElement(child, &idx); err != nil {
			return nil, false, err
		}
		if err := d.materialize(child); err != nil {
			return nil, false, err
		}
		if e.children == nil {
			e.children = make(map[string]*Element)
		}
		e.children[comp] = child
		return child, false, nil
	default:
		return nil, false, ErrUnsupportedType
	}
}

// Set replaces or inserts the member addressed by path with newElem. The
// immediate parent and every ancestor back to the root are marked
// modified, so Dump reconstructs them from their materialized children
// instead of reusing their original source span. The prior subtree at
// that slot (if any) is simply detached; nothing reaches it through the
// tree anymore.
//
// Set requires at least one path component: there is no operation to
// replace the document root itself.
func (d *Document) Set(p string, newElem *Element) error {
	components, err := path.Split(p)
	if err != nil {
		return err
	}
	if len(components) == 0 {
		return fmt.Errorf("%w: empty path", ErrKeyNotFound)
	}

	ancestors := make([]*Element, 0, len(components))
	parent := d.root
	ancestors = append(ancestors, parent)
	for _, comp := range components[:len(components)-1] {
		next, stop, err := d.step(parent, comp)
		if err != nil {
			return err
		}
		if stop {
			return fmt.Errorf("%w: %q: cannot descend into a primitive", ErrUnsupportedType, comp)
		}
		parent = next
		ancestors = append(ancestors, parent)
	}
	if parent.typ != ObjectType && parent.typ != ArrayType {
		return fmt.Errorf("%w: cannot set a member on a primitive", ErrUnsupportedType)
	}

	last := components[len(components)-1]
	if parent.children == nil {
		parent.children = make(map[string]*Element)
	}
	if _, existed := parent.children[last]; !existed {
		if _, registered := parent.tokenIndex[last]; !registered {
			parent.keys = append(parent.keys, last)
		}
	}
	parent.children[last] = newElem

	for _, a := range ancestors {
		a.modified = true
	}

	if d.cache != nil {
		// Any cached path whose resolution passed through (or below)
		// the mutated node is now stale — not just p itself, since a
		// cached descendant path like "a.b.c" would otherwise keep
		// resolving to the element that used to live under "a.b"
		// before this Set replaced it. The cache has no reverse index
		// from node to the path strings that traversed it, so the
		// only transparent fix is to drop every entry rather than
		// just refresh p's.
		d.cache.Clear()
	}
	return nil
}
