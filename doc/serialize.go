package doc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lazyjson/lazyjson/token"
)

// Dump serializes the entire document. Unmodified subtrees reuse their
// original source span byte-for-byte; modified subtrees are
// reconstructed from materialized children.
func (d *Document) Dump() ([]byte, error) {
	return d.ElementToString(d.root)
}

// ElementToString serializes a single element's subtree using the same
// span-reuse/reconstruction rules as Dump.
func (d *Document) ElementToString(e *Element) ([]byte, error) {
	var sb strings.Builder
	if err := d.writeElement(&sb, e); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (d *Document) writeElement(sb *strings.Builder, e *Element) error {
	switch e.typ {
	case NullType:
		if e.modified {
			sb.WriteString("null")
		} else {
			sb.Write(d.rawTokenLiteral(e.tokStart))
		}
	case BooleanType:
		if e.modified {
			if e.value.(bool) {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
		} else {
			sb.Write(d.rawTokenLiteral(e.tokStart))
		}
	case NumberType:
		if e.modified {
			sb.WriteString(strconv.FormatFloat(e.value.(float64), 'g', -1, 64))
		} else {
			sb.Write(d.rawTokenLiteral(e.tokStart))
		}
	case StringType:
		if e.modified {
			sb.WriteByte('"')
			writeEscaped(sb, e.value.(string))
			sb.WriteByte('"')
		} else {
			sb.WriteByte('"')
			sb.Write(d.toks[e.tokStart].Lexeme(d.src))
			sb.WriteByte('"')
		}
	case ObjectType, ArrayType:
		return d.writeContainer(sb, e)
	default:
		return ErrUnsupportedType
	}
	return nil
}

func (d *Document) writeContainer(sb *strings.Builder, e *Element) error {
	if !e.modified {
		if e.tokEnd >= len(d.toks) {
			return fmt.Errorf("%w: end=%d len=%d", ErrOutOfRangeTokenIndex, e.tokEnd, len(d.toks))
		}
		start := d.toks[e.tokStart].Start
		end := d.toks[e.tokEnd].End
		sb.Write(d.src[start:end])
		return nil
	}

	open, close := byte('{'), byte('}')
	isObject := e.typ == ObjectType
	if !isObject {
		open, close = '[', ']'
	}
	sb.WriteByte(open)
	for i, key := range e.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		if isObject {
			sb.WriteByte('"')
			writeEscaped(sb, key)
			sb.WriteString("\": ")
		}
		if child, ok := e.children[key]; ok {
			if err := d.writeElement(sb, child); err != nil {
				return err
			}
			continue
		}
		tokIdx, ok := e.tokenIndex[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		// Not yet materialized: reparse just the skeleton (cheap, no
		// string/number decoding) to learn its token span, then reuse
		// that span verbatim. This covers untouched nested objects and
		// arrays, whose raw text spans more than one token.
		tmp := newElement()
		idx := tokIdx
		if err := d.parseElement(tmp, &idx); err != nil {
			return err
		}
		if err := d.writeElement(sb, tmp); err != nil {
			return err
		}
	}
	sb.WriteByte(close)
	return nil
}

// rawTokenLiteral renders the token at idx the way it appeared in the
// source: strings regain their surrounding quotes, everything else is
// copied as-is.
func (d *Document) rawTokenLiteral(idx int) []byte {
	t := d.toks[idx]
	if t.Kind == token.String {
		quoted := make([]byte, 0, t.Len()+2)
		quoted = append(quoted, '"')
		quoted = append(quoted, t.Lexeme(d.src)...)
		quoted = append(quoted, '"')
		return quoted
	}
	return t.Lexeme(d.src)
}

// writeEscaped applies the modified-string escaping table: quote,
// backslash, and the standard single-character escapes get their
// two-character forms; control bytes below 0x20 become \u00xx; every
// other byte passes through untouched.
func writeEscaped(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(sb, `\u%04x`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
}
