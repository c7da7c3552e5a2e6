package cpu

import "github.com/thelolagemann/lr35902/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger the CPU writes its trace to.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithTrace logs every executed instruction, with its operands
// and the resulting register state, at debug level.
func WithTrace() Opt {
	return func(c *CPU) {
		c.trace = true
	}
}

// WithInterruptsEnabled overrides the interrupt master enable
// flag of the reset state.
func WithInterruptsEnabled(enabled bool) Opt {
	return func(c *CPU) {
		c.ime = enabled
	}
}
