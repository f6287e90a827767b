// Package token implements the one-pass JSON lexical scanner.
//
// Tokens carry byte offsets into the caller's source slice rather than
// copied lexemes: the source must outlive every Token derived from it.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	SOF Kind = iota
	ObjectStart
	ObjectEnd
	ArrayStart
	ArrayEnd
	Colon
	Comma
	String
	Number
	Boolean
	Null
	EOF
	Error
)

func (k Kind) String() string {
	switch k {
	case SOF:
		return "SOF"
	case ObjectStart:
		return "ObjectStart"
	case ObjectEnd:
		return "ObjectEnd"
	case ArrayStart:
		return "ArrayStart"
	case ArrayEnd:
		return "ArrayEnd"
	case Colon:
		return "Colon"
	case Comma:
		return "Comma"
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case EOF:
		return "EOF"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a lexeme's kind plus its byte-offset span in the source. For
// String tokens the span excludes the surrounding quotes. For
// Number/Boolean/Null tokens the span covers the literal characters. For
// punctuation the span covers its single character. SOF and EOF have
// zero-length spans, at offset 0 and at len(src) respectively.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Lexeme returns the token's raw slice of src. Callers must pass the
// same source the token was produced from.
func (t Token) Lexeme(src []byte) []byte {
	return src[t.Start:t.End]
}

// Len reports the byte length of the token's span.
func (t Token) Len() int {
	return t.End - t.Start
}
