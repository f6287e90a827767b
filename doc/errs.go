package doc

import "errors"

// Sentinel errors surfaced by parsing, resolution, and serialization.
// Callers should match with errors.Is rather than string comparison.
var (
	// ErrStructural covers a missing ':' after an object key, a
	// premature end of tokens, or a root that doesn't end with its
	// matching closer.
	ErrStructural = errors.New("structural error")

	// ErrKeyNotFound is returned when path resolution descends into a
	// container by a key or index that isn't registered.
	ErrKeyNotFound = errors.New("key not found")

	// ErrOutOfRangeTokenIndex indicates a recorded token index exceeds
	// the token vector's length; this should not occur and signals
	// corrupted document state.
	ErrOutOfRangeTokenIndex = errors.New("token index out of range")

	// ErrUnsupportedType is returned when traversal encounters an
	// element of type Undefined, and by Set when its path runs through
	// a primitive or asks to set a member on one.
	ErrUnsupportedType = errors.New("unsupported element type")

	// ErrInvalidCacheCapacity is returned by WithPathCache for a
	// non-positive capacity.
	ErrInvalidCacheCapacity = errors.New("path cache capacity must be > 0")
)
