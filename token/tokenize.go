package token

// Tokenize performs a single-pass lexical scan of src and returns the
// ordered token vector, beginning with SOF and ending with EOF.
//
// Whitespace between tokens is skipped and carries no semantics. The
// tokenizer does not validate numeric syntax beyond character class and
// does not decode string escapes; it only tracks backslash lookback so
// an escaped quote doesn't close a string early.
//
// Tokenize is stateless across calls: the returned Tokens reference src
// by offset, so src must outlive them.
func Tokenize(src []byte) ([]Token, error) {
	n := len(src)
	toks := make([]Token, 0, n/4+2)
	toks = append(toks, Token{Kind: SOF, Start: 0, End: 0})

	i := 0
	for i < n {
		c := src[i]
		if isSpace(c) {
			i++
			continue
		}
		switch {
		case c == '{':
			toks = append(toks, Token{Kind: ObjectStart, Start: i, End: i + 1})
			i++
		case c == '}':
			toks = append(toks, Token{Kind: ObjectEnd, Start: i, End: i + 1})
			i++
		case c == '[':
			toks = append(toks, Token{Kind: ArrayStart, Start: i, End: i + 1})
			i++
		case c == ']':
			toks = append(toks, Token{Kind: ArrayEnd, Start: i, End: i + 1})
			i++
		case c == ':':
			toks = append(toks, Token{Kind: Colon, Start: i, End: i + 1})
			i++
		case c == ',':
			toks = append(toks, Token{Kind: Comma, Start: i, End: i + 1})
			i++
		case c == '"':
			end, ok := findStringEnd(src, i)
			if !ok {
				return nil, newPosError(ErrUnterminatedString, i)
			}
			toks = append(toks, Token{Kind: String, Start: i + 1, End: end})
			i = end + 1
		case c == '-' || isDigit(c):
			start := i
			i++
			for i < n && isNumberByte(src[i]) {
				i++
			}
			toks = append(toks, Token{Kind: Number, Start: start, End: i})
		case c == 'n':
			if hasPrefixAt(src, i, "null") {
				toks = append(toks, Token{Kind: Null, Start: i, End: i + 4})
				i += 4
			} else {
				return nil, newPosError(ErrUnexpectedCharacter, i)
			}
		case c == 't':
			if hasPrefixAt(src, i, "true") {
				toks = append(toks, Token{Kind: Boolean, Start: i, End: i + 4})
				i += 4
			} else {
				return nil, newPosError(ErrUnexpectedCharacter, i)
			}
		case c == 'f':
			if hasPrefixAt(src, i, "false") {
				toks = append(toks, Token{Kind: Boolean, Start: i, End: i + 5})
				i += 5
			} else {
				return nil, newPosError(ErrUnexpectedCharacter, i)
			}
		default:
			return nil, newPosError(ErrUnexpectedCharacter, i)
		}
	}
	toks = append(toks, Token{Kind: EOF, Start: n, End: n})
	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberByte matches the greedy [0-9.eE+-] run the spec defines for
// number lexemes; it does not itself validate JSON numeric grammar.
func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func hasPrefixAt(src []byte, i int, want string) bool {
	if i+len(want) > len(src) {
		return false
	}
	return string(src[i:i+len(want)]) == want
}

// findStringEnd locates the closing quote for the string starting at
// src[start] (which must be '"'). A quote immediately preceded by a
// backslash does not close the string; the length of the backslash run
// is not counted, so a quote after an escaped backslash (`\\"`) does
// not close it either.
func findStringEnd(src []byte, start int) (int, bool) {
	i := start + 1
	for i < len(src) {
		if src[i] == '"' && !precededByBackslash(src, i) {
			return i, true
		}
		i++
	}
	return 0, false
}

func precededByBackslash(src []byte, i int) bool {
	return i > 0 && src[i-1] == '\\'
}
