package bst

import (
	"fmt"
	"reflect"
	"strings"
)

// Node is a single entry of the ordered map's underlying tree.
//
// It stores one key-value pair plus the parent/left/right links that place
// it within the tree, and a metadata slot (M) the balancing scheme uses to
// keep the tree height logarithmic (e.g. red-black color). It is used by
// internal/rbtree and held in unexported fields of the ordermap package,
// but never appears in the public API.
type Node[K, V, M any] struct {
	key                 K
	value               V
	parent, left, right *Node[K, V, M]
	metadata            M
}

// reset clears a node's fields to their zero values.
//
// Called after a node has been unlinked from the tree and its key/value have
// already been handed to any configured Policy dispose hooks, so it doesn't
// keep the last element's data reachable through a lingering reference.
func (n *Node[K, V, M]) reset() {
	var zeroK K
	var zeroV V
	var zeroM M
	n.key = zeroK
	n.value = zeroV
	n.metadata = zeroM
	n.parent, n.left, n.right = nil, nil, nil
}

func (n *Node[K, V, M]) IsValueNil() bool {
	if v := reflect.ValueOf(n.value); (v.Kind() == reflect.Ptr ||
		v.Kind() == reflect.Interface ||
		v.Kind() == reflect.Slice ||
		v.Kind() == reflect.Map ||
		v.Kind() == reflect.Chan ||
		v.Kind() == reflect.Func) && v.IsNil() {
		return true
	}
	return false
}

// String returns a string representation of the node.
//
// The output format is "key: value [metadata]", where both key and value
// are converted to strings. If the key or value implements fmt.Stringer,
// its String() method is used; otherwise, fmt.Sprintf is used. A nil
// value is written as "<nil>". Metadata is always included, formatted the
// same way (String() if it implements fmt.Stringer, fmt.Sprintf otherwise).
//
// Returns:
//   - A string representation of the node in "key: value [metadata]" format.
func (n *Node[K, V, M]) String() string {
	builder := new(strings.Builder)

	// write node key
	if s, ok := any(n.key).(fmt.Stringer); ok {
		builder.WriteString(s.String())
	} else {
		builder.WriteString(fmt.Sprintf("%v", n.key))
	}

	// separator between node & value
	builder.WriteString(": ")

	// write node value
	if n.IsValueNil() {
		builder.WriteString("<nil>")
	} else {
		if s, ok := any(n.value).(fmt.Stringer); ok {
			builder.WriteString(s.String())
		} else {
			builder.WriteString(fmt.Sprintf("%v", n.value))
		}
	}

	// write node metadata
	builder.WriteString(" [")
	if s, ok := any(n.metadata).(fmt.Stringer); ok {
		builder.WriteString(s.String())
	} else {
		builder.WriteString(fmt.Sprintf("%v", n.metadata))
	}
	builder.WriteString("]")

	return builder.String()
}
