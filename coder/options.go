package coder

import "sutext.github.io/difio/xlog"

// DefaultMaxCount is the largest sequence count a Decoder accepts unless
// configured otherwise.
const DefaultMaxCount uint32 = 1 << 24

// preallocLimit bounds the capacity reserved from an untrusted count.
const preallocLimit = 4096

type Option struct {
	f func(*Options)
}

type Options struct {
	MaxCount uint32
	Strict   bool
	Logger   *xlog.Logger
}

func NewOptions(opts ...Option) *Options {
	var options = &Options{
		MaxCount: DefaultMaxCount,
		Logger:   xlog.Default(),
	}
	for _, o := range opts {
		o.f(options)
	}
	return options
}

// WithMaxCount sets the sanity cap for decoded sequence counts.
func WithMaxCount(n uint32) Option {
	return Option{f: func(o *Options) { o.MaxCount = n }}
}

// WithStrict makes Unmarshal reject input with bytes left after the record.
func WithStrict(strict bool) Option {
	return Option{f: func(o *Options) { o.Strict = strict }}
}

// WithLogger sets the logger for field tracing. A nil logger selects
// xlog.Default.
func WithLogger(logger *xlog.Logger) Option {
	return Option{f: func(o *Options) {
		if logger == nil {
			logger = xlog.Default()
		}
		o.Logger = logger
	}}
}

func prealloc(count uint32) int {
	if count > preallocLimit {
		return preallocLimit
	}
	return int(count)
}
