package token

import (
	"errors"
	"fmt"
)

// Sentinel tokenizer errors, matched with errors.Is against the error
// returned from Tokenize (which wraps one of these via PosError).
var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// PosError pins a sentinel tokenizer error to the byte offset where it
// was detected, mirroring the teacher's TokenizeErr/Pos pairing.
type PosError struct {
	Err    error
	Offset int
}

func (e *PosError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *PosError) Unwrap() error {
	return e.Err
}

func newPosError(err error, offset int) error {
	return &PosError{Err: err, Offset: offset}
}
