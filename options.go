package gridoracle

type options struct {
	logger   *Logger
	ancillas int
}

// Option configures circuit compilation.
//
// Options exist to avoid exploding the API surface with constructor
// variants; the zero configuration is correct for every valid grid.
type Option func(*options)

// WithLogger configures the structured logger used during compilation.
//
// If nil is passed, the default text logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewLogger(nil)
		}
		o.logger = l
	}
}

// WithAncillas overrides the automatically derived ancilla pool size.
//
// The default pool covers the worst-case simultaneous reservation of
// the constraint sub-circuits; a smaller pool makes compilation fail
// with ErrResourceExhausted, never silently misbuild. Values below the
// default are only useful in tests exercising exhaustion paths.
func WithAncillas(n int) Option {
	return func(o *options) {
		o.ancillas = n
	}
}
