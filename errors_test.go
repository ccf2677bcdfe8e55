package ordermap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_WrappingAndIs(t *testing.T) {
	wrapped := fmt.Errorf("%w: %v", ErrKeyNotFound, 42)
	assert.True(t, errors.Is(wrapped, ErrKeyNotFound))
	assert.False(t, errors.Is(wrapped, ErrIteratorInvalid))
}

func TestErrors_DistinctSentinels(t *testing.T) {
	all := []error{
		ErrNullArgument,
		ErrInvalidConfig,
		ErrOutOfMemory,
		ErrKeyNotFound,
		ErrIteratorInvalid,
		ErrIteratorAtEnd,
	}
	for i, e1 := range all {
		for j, e2 := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(e1, e2), "%v should not match %v", e1, e2)
		}
	}
}
