package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/bits"
	"strings"

	"github.com/Dream2503/cpu-assembler/alu"
	"github.com/Dream2503/cpu-assembler/internal"
	"github.com/Dream2503/cpu-assembler/lsu"
	"github.com/Dream2503/cpu-assembler/register"
)

// Status word flag positions, as in the x86 FLAGS register.
const (
	FLAG_CF = uint16(1 << 0)  // Carry
	FLAG_ZF = uint16(1 << 6)  // Zero
	FLAG_SF = uint16(1 << 7)  // Sign
	FLAG_OF = uint16(1 << 11) // Overflow
)

var _cpu_defines = map[string]string{
	"FLAG_CF": fmt.Sprintf("%#x", FLAG_CF),
	"FLAG_ZF": fmt.Sprintf("%#x", FLAG_ZF),
	"FLAG_SF": fmt.Sprintf("%#x", FLAG_SF),
	"FLAG_OF": fmt.Sprintf("%#x", FLAG_OF),
}

// Cpu drives the ALU and load/store unit over a register set.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Alu      alu.ALU      // ALU and its flags.
	Register register.Set // General purpose registers r0..r15.

	Power int // Power (bits flipped) counter.
	Ticks int // Executed instructions counter.

	zero     register.Register // Always zero.
	temp     register.Register // CMP and MUL scratch.
	quotient register.Register // DIV scratch.
	operand  register.Register // Immediate staging.
}

// NewCpu creates a new CPU with all registers and flags cleared.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(register.Defines(), maps.All(_cpu_defines))
}

// Reset clears the registers, the flags and the counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Alu.Reset()
	cpu.Ticks = 0
	cpu.Power = 0

	cpu.zero = register.Register{}
	cpu.temp = register.Register{}
	cpu.quotient = register.Register{}
	cpu.operand = register.Register{}
}

// Status packs the flags into a status word.
func (cpu *Cpu) Status() (status uint16) {
	flags := []struct {
		set  bool
		mask uint16
	}{
		{cpu.Alu.CF.Bool(), FLAG_CF},
		{cpu.Alu.ZF.Bool(), FLAG_ZF},
		{cpu.Alu.SF.Bool(), FLAG_SF},
		{cpu.Alu.OF.Bool(), FLAG_OF},
	}

	for _, flag := range flags {
		if flag.set {
			status |= flag.mask
		}
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	var sb strings.Builder

	for n, reg := range cpu.Register {
		fmt.Fprintf(&sb, "%5s: %v 0x%04x %d\n", RegisterName(n), reg, reg.Uint16(), reg.Int16())
	}
	fmt.Fprintf(&sb, "%5s: %v\n", "flags", cpu.Alu.Flags)

	return sb.String()
}

// source returns the source operand, staging immediates through the
// operand register.
func (cpu *Cpu) source(arg Arg) (src register.Register, err error) {
	switch arg.Kind {
	case ARG_NONE:
	case ARG_REG:
		if arg.Register < 0 || arg.Register >= len(cpu.Register) {
			err = ErrRegisterInvalid
			return
		}
		src = cpu.Register[arg.Register]
	case ARG_IMM:
		lsu.Load(&cpu.operand, arg.Value)
		src = cpu.operand
	default:
		err = ErrOperandInvalid
	}

	return
}

// count returns the shift or rotate count of a source operand.
func (cpu *Cpu) count(arg Arg, src register.Register) uint {
	if arg.Kind == ARG_NONE {
		return 1
	}

	return uint(src.Uint16())
}

// Execute runs a single instruction.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(ins), err)
		}
	}()

	if ins.Dst < 0 || ins.Dst >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	if !ins.Op.Accepts(ins.Src.Kind) {
		err = ErrOperandInvalid
		return
	}

	src, err := cpu.source(ins.Src)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v", ins)
	}

	dst := &cpu.Register[ins.Dst]
	prior := dst.Uint16()
	prior_status := cpu.Status()

	switch ins.Op {
	case OP_LOAD, OP_MOV:
		lsu.Mov(dst, src)
	case OP_ADD:
		cpu.Alu.ADD(dst, src)
	case OP_SUB:
		cpu.Alu.SUB(dst, src)
	case OP_MUL:
		cpu.Alu.MUL(dst, src, &cpu.temp, cpu.zero)
	case OP_DIV:
		cpu.Alu.DIV(dst, src, &cpu.quotient, &cpu.temp, cpu.zero)
	case OP_INC:
		cpu.Alu.INC(dst)
	case OP_DEC:
		cpu.Alu.DEC(dst)
	case OP_NEG:
		cpu.Alu.NEG(dst, &cpu.temp, cpu.zero)
	case OP_SHL:
		cpu.Alu.SHL(dst, cpu.count(ins.Src, src), cpu.zero, &cpu.temp)
	case OP_SHR:
		cpu.Alu.SHR(dst, cpu.count(ins.Src, src), cpu.zero, &cpu.temp)
	case OP_SAR:
		cpu.Alu.SAR(dst, cpu.count(ins.Src, src), cpu.zero, &cpu.temp)
	case OP_ROL:
		cpu.Alu.ROL(dst, cpu.count(ins.Src, src), cpu.zero, &cpu.temp)
	case OP_ROR:
		cpu.Alu.ROR(dst, cpu.count(ins.Src, src), cpu.zero, &cpu.temp)
	case OP_CMP:
		cpu.Alu.CMP(*dst, src, &cpu.temp)
	default:
		err = ErrOpInvalid
		return
	}

	cpu.Ticks++
	cpu.Power += bits.OnesCount16(prior ^ dst.Uint16())
	cpu.Power += bits.OnesCount16(prior_status ^ cpu.Status())

	if cpu.Verbose {
		log.Printf("cpu: %v = %v [%v]", RegisterName(ins.Dst), dst, cpu.Alu.Flags)
	}

	return
}

// Run executes every instruction of a program in order, stopping at the
// first error.
func (cpu *Cpu) Run(prog *Program) (err error) {
	for _, ins := range prog.Instructions() {
		err = cpu.Execute(ins)
		if err != nil {
			return
		}
	}

	return
}
