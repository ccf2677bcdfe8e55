package ordermap

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordermap_ops_total",
		Help: "The total number of operations performed on a Map, by class",
	}, []string{"map_id", "class"})

	opsMeanNanos = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "ordermap_op_mean_nanoseconds",
		Help: "Running mean wall-clock time per operation class, in nanoseconds",
	}, []string{"map_id", "class"})

	heightMax = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "ordermap_max_height_seen",
		Help: "The largest tree height observed since the Map was created or last reset",
	}, []string{"map_id"})
)

// opClass identifies which counter/mean a timed operation belongs to.
type opClass int

const (
	opInsert opClass = iota
	opRemove
	opSearch
	opClassCount
)

func (c opClass) String() string {
	switch c {
	case opInsert:
		return "insert"
	case opRemove:
		return "remove"
	case opSearch:
		return "search"
	default:
		return "unknown"
	}
}

// welford accumulates a running mean incrementally, avoiding the
// floating-point drift a naive sum/count running average accrues over a
// long-lived Map.
type welford struct {
	count int64
	mean  float64
}

func (w *welford) add(x float64) {
	w.count++
	w.mean += (x - w.mean) / float64(w.count)
}

func (w *welford) reset() {
	w.count = 0
	w.mean = 0
}

// diagnostics is the Map's private counter block.
type diagnostics struct {
	counts        [opClassCount]uint64
	means         [opClassCount]welford
	maxHeightSeen int
}

func (d *diagnostics) record(class opClass, elapsed time.Duration) {
	d.counts[class]++
	d.means[class].add(float64(elapsed.Nanoseconds()))
}

func (d *diagnostics) reset() {
	for i := range d.counts {
		d.counts[i] = 0
		d.means[i].reset()
	}
	d.maxHeightSeen = 0
}

func (d *diagnostics) totalOps() uint64 {
	var total uint64
	for _, c := range d.counts {
		total += c
	}
	return total
}

// Stats is a point-in-time snapshot of a Map's diagnostic counters.
type Stats struct {
	Inserts         uint64
	Removes         uint64
	Searches        uint64
	TotalOps        uint64
	MeanInsertNanos float64
	MeanRemoveNanos float64
	MeanSearchNanos float64
	CurrentHeight   int
	MaxHeightSeen   int
}
