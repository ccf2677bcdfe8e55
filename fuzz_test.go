package ordermap

import (
	"sort"
	"testing"
)

// FuzzMap inserts 10 keys and removes a prefix of them, validating the
// tree invariants and in-order key ordering after every mutation.
func FuzzMap(f *testing.F) {
	f.Add(1, 11, 12, 69, 4, 14, 82, 50, 77, 3, 10)
	f.Fuzz(func(t *testing.T, k1, k2, k3, k4, k5, k6, k7, k8, k9, k10, removeCount int) {
		if removeCount < 0 || removeCount > 9 {
			return
		}

		m, err := New(intPolicy())
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		keys := []int{k1, k2, k3, k4, k5, k6, k7, k8, k9, k10}
		for _, k := range keys {
			m.Insert(k, k*10)
			if err := m.Validate(); err != nil {
				t.Fatalf("invalid after insert(%d): %v", k, err)
			}
			assertSortedKeys(t, m)
		}

		removed := map[int]struct{}{}
		for i := 0; i <= removeCount; i++ {
			k := keys[i]
			_, alreadyRemoved := removed[k]
			err := m.Remove(k)
			if alreadyRemoved {
				if err == nil {
					t.Fatalf("expected key-not-found removing already-removed key %d", k)
				}
			} else {
				removed[k] = struct{}{}
			}
			if err := m.Validate(); err != nil {
				t.Fatalf("invalid after remove(%d): %v", k, err)
			}
			assertSortedKeys(t, m)
		}
	})
}

func assertSortedKeys(t *testing.T, m *Map[int, int]) {
	t.Helper()
	ks := m.Keys()
	if !sort.IntsAreSorted(ks) {
		t.Fatalf("keys not sorted: %v", ks)
	}
	if len(ks) != m.Size() {
		t.Fatalf("keys length %d does not match size %d", len(ks), m.Size())
	}
}
