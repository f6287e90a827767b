package doc

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lazyjson/lazyjson/arena"
	"github.com/lazyjson/lazyjson/pathcache"
	"github.com/lazyjson/lazyjson/token"
)

// Parse tokenizes src and builds the lazy skeleton tree: every
// container's direct members are indexed to their value's starting
// token, but nothing below the root is recursively descended into
// until a caller addresses it (see Document.Get).
//
// Parse takes ownership of src: every Token and every materialized
// string Element references it directly, so the caller must not
// mutate src afterward.
func Parse(src []byte, opts ...Option) (*Document, error) {
	cfg := &config{blockSize: arena.DefaultBlockSize, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	toks, err := token.Tokenize(src)
	if err != nil {
		cfg.logger.Debug("lazyjson: tokenize failed", "err", err)
		return nil, err
	}

	d := &Document{
		src:    src,
		toks:   toks,
		arena:  arena.New(cfg.blockSize),
		logger: cfg.logger,
	}
	if cfg.useCache {
		cache, err := pathcache.New[*Element](cfg.cacheCap)
		if err != nil {
			return nil, err
		}
		d.cache = cache
	}

	root := newElement()
	idx := 1 // past SOF
	if err := d.parseElement(root, &idx); err != nil {
		cfg.logger.Debug("lazyjson: parse failed", "err", err)
		return nil, err
	}

	if len(toks) < 2 {
		return nil, fmt.Errorf("%w: empty token stream", ErrStructural)
	}
	lastValidIdx := len(toks) - 2
	lastValid := toks[lastValidIdx]
	// The document root must be an object or array whose matching
	// closer is the last valid token before EOF; a bare top-level
	// primitive is rejected, matching the source engine's behavior.
	switch {
	case root.typ == ObjectType && lastValid.Kind == token.ObjectEnd:
		root.tokEnd = lastValidIdx
	case root.typ == ArrayType && lastValid.Kind == token.ArrayEnd:
		root.tokEnd = lastValidIdx
	default:
		return nil, fmt.Errorf("%w: expected '}' or ']' as last valid token", ErrStructural)
	}

	if err := d.materialize(root); err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

// parseElement performs the skip-over (lazy) parse of the value
// starting at *idx. It leaves *idx on the value's last token: the
// token itself for a primitive, the matching closer for a container.
func (d *Document) parseElement(e *Element, idx *int) error {
	toks := d.toks
	if *idx >= len(toks) {
		return fmt.Errorf("%w: unexpected end of tokens", ErrStructural)
	}
	e.tokStart = *idx
	e.tokEnd = *idx

	switch toks[*idx].Kind {
	case token.Null:
		e.typ = NullType
	case token.Boolean:
		e.typ = BooleanType
	case token.Number:
		e.typ = NumberType
	case token.String:
		e.typ = StringType
	case token.ObjectStart:
		e.typ = ObjectType
		e.tokenIndex = make(map[string]int)
		*idx++ // skip '{'
		depth := 1
		for depth > 0 && *idx < len(toks) {
			switch toks[*idx].Kind {
			case token.ObjectStart:
				depth++
			case token.ObjectEnd:
				depth--
			case token.Comma:
				*idx++
				continue
			}
			if depth <= 0 {
				break
			}
			if toks[*idx].Kind != token.String {
				return fmt.Errorf("%w: expected object key", ErrStructural)
			}
			key := string(toks[*idx].Lexeme(d.src))
			*idx++
			if *idx >= len(toks) || toks[*idx].Kind != token.Colon {
				return fmt.Errorf("%w: expected ':' after object key", ErrStructural)
			}
			*idx++ // consume ':'
			addTokenIndex(e, key, *idx)
			if err := d.skipValue(idx); err != nil {
				return err
			}
		}
		e.tokEnd = *idx
	case token.ArrayStart:
		e.typ = ArrayType
		e.tokenIndex = make(map[string]int)
		*idx++ // skip '['
		arrIndex := 0
		depth := 1
		for depth > 0 && *idx < len(toks) {
			switch toks[*idx].Kind {
			case token.ArrayEnd:
				depth--
			case token.Comma:
				*idx++
				continue
			}
			if depth <= 0 {
				break
			}
			key := d.arena.Add(strconv.Itoa(arrIndex))
			arrIndex++
			addTokenIndex(e, key, *idx)
			if err := d.skipValue(idx); err != nil {
				return err
			}
		}
		e.tokEnd = *idx
	default:
		return fmt.Errorf("%w: expected a value, '{', or '['", ErrStructural)
	}
	return nil
}

// addTokenIndex registers key -> tokenIdx, keeping only the first
// registration for a duplicate key (first key wins, per the resolved
// open question on duplicate object keys).
func addTokenIndex(e *Element, key string, tokenIdx int) {
	if _, exists := e.tokenIndex[key]; exists {
		return
	}
	e.tokenIndex[key] = tokenIdx
	e.keys = append(e.keys, key)
}

// skipValue advances *idx past exactly one JSON value without
// recording anything about its interior.
func (d *Document) skipValue(idx *int) error {
	toks := d.toks
	if *idx >= len(toks) {
		return fmt.Errorf("%w: unexpected end of tokens", ErrStructural)
	}
	kind := toks[*idx].Kind
	*idx++
	switch kind {
	case token.ObjectStart:
		depth := 1
		for depth > 0 && *idx < len(toks) {
			switch toks[*idx].Kind {
			case token.ObjectStart:
				depth++
			case token.ObjectEnd:
				depth--
			}
			*idx++
		}
	case token.ArrayStart:
		depth := 1
		for depth > 0 && *idx < len(toks) {
			switch toks[*idx].Kind {
			case token.ArrayStart:
				depth++
			case token.ArrayEnd:
				depth--
			}
			*idx++
		}
	case token.String, token.Number, token.Boolean, token.Null:
		// already consumed above
	default:
		return fmt.Errorf("%w: unexpected token in value position", ErrStructural)
	}
	return nil
}

