package ordermap

import "go.uber.org/zap"

// Option configures a Map at construction time, following the functional
// options pattern.
type Option func(*options)

// options holds the internal configuration assembled from Option values.
type options struct {
	log     *zap.Logger
	metrics bool
}

// WithLogger attaches a structured logger to the Map. Every insert that
// adds a new binding and every removal is logged at Debug, and Validate
// failures at Warn. Without this option, a Map logs nothing (zap.NewNop()).
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics enables Prometheus counters for this Map's diagnostics,
// labeled by the Map's UUID. Without this option, no metrics are recorded.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}
