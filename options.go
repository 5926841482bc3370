package maskgo

import "github.com/hupe1980/maskgo/snapshot"

type options struct {
	logger       *Logger
	historyDepth int
	compression  snapshot.Compression
}

// Option configures Workspace construction behavior.
type Option func(*options)

// WithLogger configures the structured logger used for operation logging.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithHistoryDepth configures how many selection states the undo history
// keeps. Non-positive values fall back to snapshot.DefaultDepth.
func WithHistoryDepth(depth int) Option {
	return func(o *options) {
		o.historyDepth = depth
	}
}

// WithCompression configures the compression used for history snapshots.
// LZ4 is the default: selection masks are long runs of identical blocks,
// which block compression collapses almost for free.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
