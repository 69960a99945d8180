package matrix

// DefaultValidateNaNInf is the finiteness policy new Dense matrices start
// with: Set rejects NaN/+-Inf unless an Option overrides it. stn's distance
// matrices rely on +Inf to mean "no bound yet" (see floydWarshallInPlace), so
// that one matrix is always constructed WithValidateNaNInf(false).
const DefaultValidateNaNInf = true

// denseConfig holds the options NewDense accepts.
type denseConfig struct {
	validateNaNInf bool
}

// Option configures a Dense at construction time.
type Option func(*denseConfig)

// WithValidateNaNInf toggles whether Set rejects non-finite values. Disable
// it for matrices that use +Inf as a sentinel (distance/closure matrices);
// leave it enabled for matrices that hold ordinary measurements or counts.
func WithValidateNaNInf(enabled bool) Option {
	return func(c *denseConfig) { c.validateNaNInf = enabled }
}

func newDenseConfig(opts ...Option) denseConfig {
	cfg := denseConfig{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
