package doc

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/lazyjson/lazyjson/token"
)

// materialize is idempotent: for a primitive it decodes the token
// lexeme into a typed value; for a container it expands exactly one
// layer of direct children (parsing each one's own skeleton, but not
// materializing below that layer).
func (d *Document) materialize(e *Element) error {
	if e.materialized {
		return nil
	}
	if e.tokStart >= len(d.toks) {
		return fmt.Errorf("%w: start=%d len=%d", ErrOutOfRangeTokenIndex, e.tokStart, len(d.toks))
	}

	switch e.typ {
	case ObjectType, ArrayType:
		if e.children == nil {
			e.children = make(map[string]*Element, len(e.keys))
		}
		for key, tokIdx := range e.tokenIndex {
			if tokIdx >= len(d.toks) {
				return fmt.Errorf("%w: key %q index %d len %d", ErrOutOfRangeTokenIndex, key, tokIdx, len(d.toks))
			}
			child := newElement()
			idx := tokIdx
			if err := d.parseElement(child, &idx); err != nil {
				return err
			}
			e.children[key] = child
		}
	case StringType:
		// View the source bytes directly instead of copying them.
		lex := d.toks[e.tokStart].Lexeme(d.src)
		e.value = unsafe.String(unsafe.SliceData(lex), len(lex))
	case NumberType:
		f, err := strconv.ParseFloat(string(d.toks[e.tokStart].Lexeme(d.src)), 64)
		if err != nil {
			return fmt.Errorf("%w: invalid number literal: %v", ErrStructural, err)
		}
		e.value = f
	case BooleanType:
		e.value = d.toks[e.tokStart].Kind == token.Boolean && string(d.toks[e.tokStart].Lexeme(d.src)) == "true"
	case NullType:
		e.value = nil
	default:
		return ErrUnsupportedType
	}
	e.materialized = true
	return nil
}
