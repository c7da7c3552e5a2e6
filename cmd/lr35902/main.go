package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/machine"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

// addressFlag is a 16-bit address flag accepting decimal, 0x hex
// or 0o octal values.
type addressFlag struct {
	value uint16
	set   bool
}

func (a *addressFlag) String() string {
	return fmt.Sprintf("0x%04X", a.value)
}

func (a *addressFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	a.value, a.set = uint16(v), true
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lr35902", flag.ContinueOnError)

	var origin, entry addressFlag
	sp := addressFlag{value: machine.DefaultStackPointer}

	programFile := fs.String("program", "", "The program file to load (.gz, .zip, .7z, .xz, .zst, .lz4 and .br are decompressed)")
	fs.Var(&origin, "origin", "The address to load the program at")
	fs.Var(&entry, "entry", "The address to start executing at (defaults to -origin)")
	fs.Var(&sp, "sp", "The initial stack pointer")
	steps := fs.Int("steps", machine.DefaultMaxSteps, "The maximum number of instructions to execute, 0 for no limit")
	policyName := fs.String("policy", "abort", "What to do on an unimplemented opcode. Can be abort, skip or halt")
	until := fs.String("until", "", "Stop once the given flag (Z, N, H or C) is set")
	logLevel := fs.String("log-level", "info", "The log level")
	trace := fs.Bool("trace", false, "Log every executed instruction (needs -log-level debug)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *programFile == "" {
		fs.Usage()
		return fmt.Errorf("no program given")
	}

	logger, err := log.NewWithLevel(*logLevel)
	if err != nil {
		return err
	}

	program, err := utils.LoadFile(*programFile)
	if err != nil {
		return err
	}

	policy, err := machine.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	opts := []machine.Opt{
		machine.WithLogger(logger),
		machine.WithProgram(origin.value, program),
		machine.WithStackPointer(sp.value),
		machine.WithMaxSteps(*steps),
		machine.WithPolicy(policy),
	}
	if entry.set {
		opts = append(opts, machine.WithEntryPoint(entry.value))
	}
	if *trace {
		opts = append(opts, machine.WithTrace())
	}
	if *until != "" {
		f, err := cpu.ParseFlag(*until)
		if err != nil {
			return err
		}
		opts = append(opts, machine.UntilFlag(f))
	}

	m, err := machine.New(opts...)
	if err != nil {
		return err
	}

	res, err := m.Run()
	fmt.Printf("%s after %d steps\n%s\n", res.Reason, res.Steps, m.CPU)
	return err
}
