package machine

import (
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that modifies a Machine
// instance before it is started.
type Opt func(m *Machine)

// WithLogger sets the logger for the Machine and its CPU.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.Logger = l
	}
}

// WithProgram loads program into memory at origin. Unless
// WithEntryPoint is given, execution starts at origin.
func WithProgram(origin uint16, program []byte) Opt {
	return func(m *Machine) {
		m.origin = origin
		m.program = program
	}
}

// WithEntryPoint sets the initial program counter.
func WithEntryPoint(pc uint16) Opt {
	return func(m *Machine) {
		m.entry = &pc
	}
}

// WithStackPointer sets the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(m *Machine) {
		m.sp = sp
	}
}

// WithMaxSteps bounds the number of Steps taken by Run. 0 runs until
// the CPU halts or the stop condition holds.
func WithMaxSteps(n int) Opt {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

// WithPolicy sets how decode errors are handled.
func WithPolicy(p Policy) Opt {
	return func(m *Machine) {
		m.policy = p
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace() Opt {
	return func(m *Machine) {
		m.trace = true
	}
}

// WithStopCondition stops Run before the first Step at which
// cond returns true.
func WithStopCondition(cond func(c *cpu.CPU) bool) Opt {
	return func(m *Machine) {
		m.until = cond
	}
}

// UntilFlag stops Run once flag is set.
func UntilFlag(flag cpu.Flag) Opt {
	return WithStopCondition(func(c *cpu.CPU) bool {
		return c.Flag(flag)
	})
}
