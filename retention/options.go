package retention

import "fmt"

// RangeWarning describes a query that fell outside the ladder's span and
// was extrapolated from the nearest interval.
type RangeWarning struct {
	Query float64
	Min   float64 // lower end of the reference span
	Max   float64 // upper end of the reference span
}

func (w RangeWarning) String() string {
	if w.Query < w.Min {
		return fmt.Sprintf("retention: query %g earlier than smallest reference %g, extrapolating", w.Query, w.Min)
	}

	return fmt.Sprintf("retention: query %g later than largest reference %g, extrapolating", w.Query, w.Max)
}

type config struct {
	warn func(RangeWarning)
}

// Option mutates a conversion config.
type Option func(*config)

// WithWarningFunc sets a callback invoked for every query outside the
// ladder's span. The conversion still returns an extrapolated value.
func WithWarningFunc(fn func(RangeWarning)) Option {
	return func(cfg *config) {
		cfg.warn = fn
	}
}

func applyOptions(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg *config) emit(w RangeWarning) {
	if cfg.warn != nil {
		cfg.warn(w)
	}
}
