package ordermap

import (
	"fmt"

	"github.com/mikenye/ordermap/internal/bst"
)

// CompareFunc reports the sign of a-b under the caller's total order:
// negative if a < b, zero if a == b, positive if a > b. Two keys for which
// Compare returns zero are treated as equal, and only one binding may exist
// per equivalence class.
type CompareFunc[K any] func(a, b K) int

// Policy describes how a Map compares keys and, optionally, how it takes
// ownership of the keys and values it stores.
//
// Compare is required. CloneKey/DisposeKey and CloneValue/DisposeValue are
// each an optional pair: leaving both nil means the Map stores keys (resp.
// values) by plain assignment ("borrow" in the C original this container is
// modeled on — for a Go value type that already copies by assignment, and
// for a reference type such as a pointer/slice/map the caller keeps
// ownership). Setting both means the Map duplicates on insert via Clone and
// releases via Dispose on removal, replacement, or Clear. Setting exactly
// one of a pair is a configuration error.
type Policy[K, V any] struct {
	Compare      CompareFunc[K]
	CloneKey     func(K) K
	DisposeKey   func(K)
	CloneValue   func(V) V
	DisposeValue func(V)
}

// validate checks the policy is usable, returning ErrInvalidConfig wrapped
// with the specific reason when it is not.
func (p Policy[K, V]) validate() error {
	if p.Compare == nil {
		return fmt.Errorf("%w: Compare is required", ErrInvalidConfig)
	}
	if (p.CloneKey == nil) != (p.DisposeKey == nil) {
		return fmt.Errorf("%w: CloneKey and DisposeKey must be set together", ErrInvalidConfig)
	}
	if (p.CloneValue == nil) != (p.DisposeValue == nil) {
		return fmt.Errorf("%w: CloneValue and DisposeValue must be set together", ErrInvalidConfig)
	}
	return nil
}

// compareFunc adapts Policy.Compare to the internal tree's comparator shape.
func (p Policy[K, V]) compareFunc() bst.CompareFunc[K] {
	return bst.CompareFunc[K](p.Compare)
}

// materializeKey produces the storage form of a caller-supplied key: the
// result of CloneKey if set, otherwise the key itself (assign-by-value/borrow).
func (p Policy[K, V]) materializeKey(k K) K {
	if p.CloneKey != nil {
		return p.CloneKey(k)
	}
	return k
}

// materializeValue is materializeKey's counterpart for values.
func (p Policy[K, V]) materializeValue(v V) V {
	if p.CloneValue != nil {
		return p.CloneValue(v)
	}
	return v
}

// releaseKey runs DisposeKey, if configured, on a key that is leaving the map.
func (p Policy[K, V]) releaseKey(k K) {
	if p.DisposeKey != nil {
		p.DisposeKey(k)
	}
}

// releaseValue is releaseKey's counterpart for values.
func (p Policy[K, V]) releaseValue(v V) {
	if p.DisposeValue != nil {
		p.DisposeValue(v)
	}
}
