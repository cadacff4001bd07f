package catalook

import (
	"github.com/hanbitlee/catalook/history"
	"github.com/hanbitlee/catalook/scan"
)

type options struct {
	historyCapacity int
	recentCapacity  int
	synonyms        map[string]string
	logger          *Logger
	metrics         MetricsCollector
}

// Option configures a Session at creation time.
type Option func(*options)

func applyOptions(optFns []Option) options {
	opts := options{
		historyCapacity: history.DefaultCapacity,
		recentCapacity:  scan.DefaultRecentCapacity,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.metrics == nil {
		opts.metrics = NoopMetricsCollector{}
	}
	return opts
}

// WithHistoryCapacity bounds the query history ledger. Values <= 0 fall back
// to history.DefaultCapacity.
func WithHistoryCapacity(n int) Option {
	return func(o *options) {
		o.historyCapacity = n
	}
}

// WithRecentScanCapacity bounds the recent-scan buffer. Values <= 0 fall
// back to scan.DefaultRecentCapacity.
func WithRecentScanCapacity(n int) Option {
	return func(o *options) {
		o.recentCapacity = n
	}
}

// WithSynonyms merges extra field-name synonyms over the built-in table for
// catalog loads. Overrides win on conflict.
func WithSynonyms(m map[string]string) Option {
	return func(o *options) {
		o.synonyms = m
	}
}

// WithLogger sets the Logger. Defaults to NoopLogger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the MetricsCollector. Defaults to NoopMetricsCollector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
