// Package emulator steps an assembled program through the CPU, one
// statement per tick.
package emulator

import (
	"io"

	"github.com/Dream2503/cpu-assembler/cpu"
	"github.com/Dream2503/cpu-assembler/translate"
)

// Emulator state. CPU + program + trace output.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Trace io.Writer // If set, each executed statement is traced here.

	index int // Next statement to execute.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Reset the CPU, and rewind to the first statement of the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.index = 0
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Power returns the total power consumed.
func (emu *Emulator) Power() int {
	return emu.Cpu.Power
}

// Statement returns the next statement to execute, or nil at the end of the
// program.
func (emu *Emulator) Statement() *cpu.Statement {
	if emu.index >= len(emu.Program.Statements) {
		return nil
	}

	return &emu.Program.Statements[emu.index]
}

// LineNo returns the line number of the next statement, or 0 at the end of
// the program.
func (emu *Emulator) LineNo() int {
	stmt := emu.Statement()
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// Tick executes a single statement of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	stmt := emu.Statement()
	if stmt == nil {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: stmt.LineNo, Err: err}
		}
	}()

	var before string
	if stmt.Dst >= 0 && stmt.Dst < len(emu.Cpu.Register) {
		before = emu.Cpu.Register[stmt.Dst].String()
	}

	err = emu.Cpu.Execute(stmt.Instruction)
	if err != nil {
		return
	}

	emu.index++

	if emu.Trace != nil {
		after := emu.Cpu.Register[stmt.Dst]
		_, err = translate.Fprintf(emu.Trace, "%4d: %-16v %v -> %v [%v] %v\n",
			stmt.LineNo, stmt.Instruction, before, after, emu.Cpu.Alu.Flags, after.Int16())
		if err != nil {
			return
		}
	}

	return
}

// Run ticks until the end of the program, or the first error.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
