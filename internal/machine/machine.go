// Package machine runs programs on an LR35902 CPU attached to
// a flat 64K memory.
package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/pkg/log"
)

const (
	// DefaultStackPointer is the top of the high page, where
	// programs expect the stack to start.
	DefaultStackPointer uint16 = 0xFFFE
	// DefaultMaxSteps is the number of Steps Run takes when
	// not told otherwise.
	DefaultMaxSteps = 100
)

// Policy decides what Step does when the CPU meets an opcode
// it cannot decode.
type Policy uint8

const (
	// PolicyAbort returns the error.
	PolicyAbort Policy = iota
	// PolicySkip logs the error and treats the byte as a NOP. The
	// skipped errors are returned together at the end of Run.
	PolicySkip
	// PolicyHalt logs the error, halts the CPU and returns the error.
	PolicyHalt
)

// ErrInvalidPolicy is returned by ParsePolicy for an unknown name.
var ErrInvalidPolicy = errors.New("invalid policy")

var policyNames = [...]string{"abort", "skip", "halt"}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy returns the Policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(n, name) {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
}

// StopReason records why Run returned.
type StopReason uint8

const (
	StopMaxSteps StopReason = iota
	StopHalted
	StopCondition
	StopError
)

func (r StopReason) String() string {
	switch r {
	case StopMaxSteps:
		return "step limit reached"
	case StopHalted:
		return "halted"
	case StopCondition:
		return "stop condition met"
	case StopError:
		return "error"
	}
	return fmt.Sprintf("StopReason(%d)", uint8(r))
}

// Result is the outcome of Run.
type Result struct {
	Steps  int
	Halted bool
	Reason StopReason
}

// Machine is a CPU attached to 64K of RAM with a program loaded.
type Machine struct {
	CPU *cpu.CPU
	RAM *ram.RAM

	log.Logger

	program  []byte
	origin   uint16
	entry    *uint16
	sp       uint16
	maxSteps int
	policy   Policy
	trace    bool
	until    func(c *cpu.CPU) bool

	skipped *multierror.Error
}

// New returns a new Machine with the program loaded and the
// CPU ready to execute it.
func New(opts ...Opt) (*Machine, error) {
	m := &Machine{
		RAM:      ram.NewRAM(),
		Logger:   log.NewNullLogger(),
		sp:       DefaultStackPointer,
		maxSteps: DefaultMaxSteps,
	}

	for _, opt := range opts {
		opt(m)
	}

	cpuOpts := []cpu.Opt{cpu.WithLogger(m.Logger)}
	if m.trace {
		cpuOpts = append(cpuOpts, cpu.WithTrace())
	}
	m.CPU = cpu.NewCPU(m.RAM, cpuOpts...)

	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset clears memory, reloads the program and puts the CPU back
// at the entry point.
func (m *Machine) Reset() error {
	m.RAM.Clear()
	if err := m.RAM.Load(m.origin, m.program); err != nil {
		return fmt.Errorf("machine: %w", err)
	}

	m.CPU.Reset()
	m.CPU.PC = m.origin
	if m.entry != nil {
		m.CPU.PC = *m.entry
	}
	m.CPU.SP = m.sp
	m.skipped = nil

	m.Infof("loaded %d byte program at 0x%04X (xxhash %016x), entry 0x%04X",
		len(m.program), m.origin, xxhash.Sum64(m.program), m.CPU.PC)
	return nil
}

// Step executes one instruction, applying the Machine's Policy
// to decode errors.
func (m *Machine) Step() error {
	err := m.CPU.Step()
	if err == nil {
		return nil
	}

	switch m.policy {
	case PolicySkip:
		m.Errorf("skipping: %v", err)
		m.skipped = multierror.Append(m.skipped, err)
		return nil
	case PolicyHalt:
		m.Errorf("halting: %v", err)
		m.CPU.Halt()
	}
	return err
}

// stopReason reports whether Run should stop before the next Step.
func (m *Machine) stopReason(steps int) (StopReason, bool) {
	switch {
	case m.CPU.Halted():
		return StopHalted, true
	case m.until != nil && m.until(m.CPU):
		return StopCondition, true
	case m.maxSteps > 0 && steps >= m.maxSteps:
		return StopMaxSteps, true
	}
	return 0, false
}

// Run steps the CPU until it halts, the stop condition holds or the
// step limit is reached. Under PolicySkip the skipped decode errors
// are returned once Run stops.
func (m *Machine) Run() (Result, error) {
	var res Result
	for {
		reason, stop := m.stopReason(res.Steps)
		if stop {
			res.Reason = reason
			break
		}

		err := m.Step()
		res.Steps++
		if err != nil {
			res.Reason = StopError
			res.Halted = m.CPU.Halted()
			m.Errorf("stopped after %d steps: %v", res.Steps, err)
			return res, err
		}
	}

	res.Halted = m.CPU.Halted()
	m.Infof("%s after %d steps: %s", res.Reason, res.Steps, m.CPU)
	return res, m.skipped.ErrorOrNil()
}
