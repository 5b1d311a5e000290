//go:build pprof

package profile

// Option applies a configuration option to control.
type Option func(control) control

// apply applies multiple options to a control.
func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl creates a control with the provided options applied.
func newControl(opts ...Option) control {
	return apply(control{}, opts...)
}
