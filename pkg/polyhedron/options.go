package polyhedron

// Option configures a Polyhedron during creation.
type Option func(*options)

type options struct {
	precision float64
}

func defaultOptions() options {
	return options{precision: DefaultPrecision}
}

// WithPrecision sets the vertex cache quantization factor. Coordinates are
// multiplied by p and rounded before lookup, so points closer than roughly
// 1/p collapse to one vertex. Non-positive values keep the default.
//
// Every stage of one build must use the same precision; the builders
// propagate it.
func WithPrecision(p float64) Option {
	return func(o *options) {
		if p > 0 {
			o.precision = p
		}
	}
}
