// Package ordermap provides a generic ordered associative container keyed
// by a caller-defined total order, backed by a self-balancing red-black
// tree: logarithmic point queries, insertion and deletion, and
// bidirectional in-order traversal via Cursor.
package ordermap

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikenye/ordermap/internal/bst"
	"github.com/mikenye/ordermap/internal/rbtree"
)

// Map is a generic ordered key-value container. The zero value is not
// usable; construct with New. A Map is not safe for concurrent use.
type Map[K, V any] struct {
	id     uuid.UUID
	tree   *rbtree.Tree[K, V]
	policy Policy[K, V]
	opts   options
	diag   diagnostics
}

// New creates an empty Map governed by policy. It returns ErrInvalidConfig
// if policy.Compare is nil, or if exactly one of a Clone/Dispose pair is set
// without its counterpart.
func New[K, V any](policy Policy[K, V], opts ...Option) (*Map[K, V], error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	if o.log != nil {
		o.log = o.log.Named("ordermap").Named(id.String())
	} else {
		o.log = zap.NewNop()
	}

	return &Map[K, V]{
		id:     id,
		tree:   rbtree.New[K, V](policy.compareFunc()),
		policy: policy,
		opts:   o,
	}, nil
}

// ID returns the Map's instance identity, used to tell concurrently
// diagnosed Maps apart in logs and metric labels.
func (m *Map[K, V]) ID() uuid.UUID {
	return m.id
}

func (m *Map[K, V]) timed(class opClass, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	m.diag.record(class, elapsed)
	if m.opts.metrics {
		opsTotal.WithLabelValues(m.id.String(), class.String()).Inc()
		opsMeanNanos.WithLabelValues(m.id.String(), class.String()).Set(m.diag.means[class].mean)
	}
}

// Size returns the number of bindings currently stored.
func (m *Map[K, V]) Size() int {
	return m.tree.Size()
}

// Empty reports whether the Map holds no bindings.
func (m *Map[K, V]) Empty() bool {
	return m.tree.Size() == 0
}

// Contains reports whether a binding with a key equal to k exists.
func (m *Map[K, V]) Contains(k K) bool {
	found := false
	m.timed(opSearch, func() {
		_, found = m.tree.Search(k)
	})
	return found
}

// Get returns a pointer to the stored value for k, or (nil, false) if no
// such binding exists. The pointer is valid for the lifetime of the
// binding: it is invalidated by Remove(k) or Clear, but survives Insert of
// other keys.
func (m *Map[K, V]) Get(k K) (*V, bool) {
	var n *bst.Node[K, V, rbtree.Color]
	var found bool
	m.timed(opSearch, func() {
		n, found = m.tree.Search(k)
	})
	if !found {
		return nil, false
	}
	return m.tree.ValuePtr(n), true
}

// GetOrDefault returns the stored value pointer for k if present; otherwise
// it returns def verbatim. It never inserts.
func (m *Map[K, V]) GetOrDefault(k K, def *V) *V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// MinKey returns the smallest key under the Map's comparator, or
// (zero, false) if the Map is empty.
func (m *Map[K, V]) MinKey() (K, bool) {
	var zero K
	if m.Empty() {
		return zero, false
	}
	n := m.tree.Min(m.tree.Root())
	return m.tree.Key(n), true
}

// MaxKey returns the largest key under the Map's comparator, or
// (zero, false) if the Map is empty.
func (m *Map[K, V]) MaxKey() (K, bool) {
	var zero K
	if m.Empty() {
		return zero, false
	}
	n := m.tree.Max(m.tree.Root())
	return m.tree.Key(n), true
}

// MinValue returns the value bound to the smallest key, or (zero, false) if
// the Map is empty.
func (m *Map[K, V]) MinValue() (V, bool) {
	var zero V
	if m.Empty() {
		return zero, false
	}
	n := m.tree.Min(m.tree.Root())
	return m.tree.Value(n), true
}

// MaxValue returns the value bound to the largest key, or (zero, false) if
// the Map is empty.
func (m *Map[K, V]) MaxValue() (V, bool) {
	var zero V
	if m.Empty() {
		return zero, false
	}
	n := m.tree.Max(m.tree.Root())
	return m.tree.Value(n), true
}

// Insert creates a binding for k if none exists (materializing k and v per
// the Policy), or replaces the value of an existing binding in place
// (releasing the old value, materializing v). The key is never rewritten
// for an existing binding. Returns true if a new binding was created.
func (m *Map[K, V]) Insert(k K, v V) bool {
	var inserted bool
	m.timed(opInsert, func() {
		n, found := m.tree.Search(k)
		if found {
			old := m.tree.Value(n)
			m.policy.releaseValue(old)
			m.tree.SetValue(n, m.policy.materializeValue(v))
			inserted = false
			return
		}
		mk := m.policy.materializeKey(k)
		mv := m.policy.materializeValue(v)
		m.tree.Insert(mk, mv)
		inserted = true
	})
	if inserted {
		m.recordHeight()
		m.logStructural("insert")
	}
	return inserted
}

// PutIfAbsent inserts (k, v) only if k is not already present. It never
// modifies an existing binding, and returns true iff a new binding was
// created.
func (m *Map[K, V]) PutIfAbsent(k K, v V) bool {
	if m.Contains(k) {
		return false
	}
	return m.Insert(k, v)
}

// Replace updates the value for an existing key k, as Insert would.
// If k is absent, it returns ErrKeyNotFound and leaves the Map unchanged.
func (m *Map[K, V]) Replace(k K, v V) error {
	if !m.Contains(k) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	m.Insert(k, v)
	return nil
}

// ReplaceIfPresent updates the value for an existing key k, as Insert
// would. If k is absent it does nothing and returns nil, mirroring the
// observed (if arguably surprising) behavior of the source this container
// is modeled on: see DESIGN.md for the Open Question this resolves.
func (m *Map[K, V]) ReplaceIfPresent(k K, v V) error {
	if !m.Contains(k) {
		return nil
	}
	m.Insert(k, v)
	return nil
}

// Remove deletes the binding for k, releasing its key and value per the
// Policy. Returns ErrKeyNotFound, with the Map unchanged, if k is absent.
func (m *Map[K, V]) Remove(k K) error {
	var notFound bool
	m.timed(opRemove, func() {
		n, found := m.tree.Search(k)
		if !found {
			notFound = true
			return
		}
		key := m.tree.Key(n)
		value := m.tree.Value(n)
		m.tree.Delete(n)
		m.policy.releaseKey(key)
		m.policy.releaseValue(value)
	})
	if notFound {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	m.recordHeight()
	m.logStructural("remove")
	return nil
}

// Clear removes every binding, releasing keys and values per the Policy.
// Diagnostic counters are retained; use ResetStats to zero them.
func (m *Map[K, V]) Clear() {
	m.ForEach(func(k K, v V) bool {
		m.policy.releaseKey(k)
		m.policy.releaseValue(v)
		return true
	})
	m.tree = rbtree.New[K, V](m.policy.compareFunc())
}

// Copy returns a structurally independent deep copy: bindings are
// duplicated through the Policy's Clone hooks (or plain assignment when
// absent), and tree balance state is preserved verbatim without
// rebalancing. Subsequent mutation of either Map is invisible to the other.
func (m *Map[K, V]) Copy() *Map[K, V] {
	id := uuid.New()
	return &Map[K, V]{
		id:     id,
		tree:   m.tree.Clone(m.policy.materializeKey, m.policy.materializeValue),
		policy: m.policy,
		opts:   options{log: m.opts.log.Named(id.String()), metrics: m.opts.metrics},
	}
}

// Keys returns every key in ascending order, as an O(n) snapshot.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	m.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns every value in key-ascending order, as an O(n) snapshot.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Size())
	m.ForEach(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// ForEach walks every binding in ascending key order, calling f(k, v) for
// each. Returning false from f stops the walk early.
func (m *Map[K, V]) ForEach(f func(k K, v V) bool) {
	m.tree.TraverseInOrder(m.tree.Root(), func(n *bst.Node[K, V, rbtree.Color]) bool {
		return f(m.tree.Key(n), m.tree.Value(n))
	})
}

// Stats returns a snapshot of the Map's diagnostic counters.
func (m *Map[K, V]) Stats() Stats {
	height := -1
	if !m.Empty() {
		height = m.tree.Height(m.tree.Root())
	}
	return Stats{
		Inserts:         m.diag.counts[opInsert],
		Removes:         m.diag.counts[opRemove],
		Searches:        m.diag.counts[opSearch],
		TotalOps:        m.diag.totalOps(),
		MeanInsertNanos: m.diag.means[opInsert].mean,
		MeanRemoveNanos: m.diag.means[opRemove].mean,
		MeanSearchNanos: m.diag.means[opSearch].mean,
		CurrentHeight:   height,
		MaxHeightSeen:   m.diag.maxHeightSeen,
	}
}

// ResetStats zeroes all diagnostic counters, including MaxHeightSeen.
func (m *Map[K, V]) ResetStats() {
	m.diag.reset()
}

// Validate reports whether the internal tree currently satisfies the
// uniqueness, ordering, and balance invariants: in-order walks checking
// key ordering, black-height equality, red-red absence, and root
// blackness. Intended for test use.
func (m *Map[K, V]) Validate() error {
	if err := m.tree.IsTreeValid(); err != nil {
		m.opts.log.Warn("validation failed", zap.Error(err))
		return err
	}
	return nil
}

// Print writes one line per binding, in forward in-order, formatted by the
// caller-supplied keyFmt/valueFmt.
func (m *Map[K, V]) Print(w io.Writer, keyFmt func(K) string, valueFmt func(V) string) {
	m.ForEach(func(k K, v V) bool {
		fmt.Fprintf(w, "%s -> %s\n", keyFmt(k), valueFmt(v))
		return true
	})
}

// String renders the Map using the underlying tree's box-drawing layout,
// satisfying fmt.Stringer for debugging.
func (m *Map[K, V]) String() string {
	return m.tree.String()
}

func (m *Map[K, V]) recordHeight() {
	if m.Empty() {
		return
	}
	h := m.tree.Height(m.tree.Root())
	if h > m.diag.maxHeightSeen {
		m.diag.maxHeightSeen = h
	}
	if m.opts.metrics {
		heightMax.WithLabelValues(m.id.String()).Set(float64(m.diag.maxHeightSeen))
	}
}

func (m *Map[K, V]) logStructural(op string) {
	m.opts.log.Debug("structural mutation", zap.String("op", op), zap.Int("size", m.Size()))
}
