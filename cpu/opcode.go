package cpu

import (
	"fmt"
)

// Op is an ALU or load/store operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LOAD = Op(0)  // load
	OP_MOV  = Op(1)  // mov
	OP_ADD  = Op(2)  // add
	OP_SUB  = Op(3)  // sub
	OP_MUL  = Op(4)  // mul
	OP_DIV  = Op(5)  // div
	OP_INC  = Op(6)  // inc
	OP_DEC  = Op(7)  // dec
	OP_NEG  = Op(8)  // neg
	OP_SHL  = Op(9)  // shl
	OP_SHR  = Op(10) // shr
	OP_SAR  = Op(11) // sar
	OP_ROL  = Op(12) // rol
	OP_ROR  = Op(13) // ror
	OP_CMP  = Op(14) // cmp
)

// ArgKind is the kind of source operand.
type ArgKind int

const (
	ARG_NONE = ArgKind(0) // No source operand.
	ARG_REG  = ArgKind(1) // Register r0..r15.
	ARG_IMM  = ArgKind(2) // 16-bit immediate, staged through the operand register.
)

// argRule lists the source operand kinds an Op accepts.
type argRule struct {
	none bool
	reg  bool
	imm  bool
}

var _op_args = map[Op]argRule{
	OP_LOAD: {imm: true},
	OP_MOV:  {reg: true},
	OP_ADD:  {reg: true, imm: true},
	OP_SUB:  {reg: true, imm: true},
	OP_MUL:  {reg: true, imm: true},
	OP_DIV:  {reg: true, imm: true},
	OP_INC:  {none: true},
	OP_DEC:  {none: true},
	OP_NEG:  {none: true},
	OP_SHL:  {none: true, reg: true, imm: true},
	OP_SHR:  {none: true, reg: true, imm: true},
	OP_SAR:  {none: true, reg: true, imm: true},
	OP_ROL:  {none: true, reg: true, imm: true},
	OP_ROR:  {none: true, reg: true, imm: true},
	OP_CMP:  {reg: true, imm: true},
}

// Accepts returns true if the op takes a source operand of this kind.
func (op Op) Accepts(kind ArgKind) bool {
	rule, ok := _op_args[op]
	if !ok {
		return false
	}

	switch kind {
	case ARG_NONE:
		return rule.none
	case ARG_REG:
		return rule.reg
	case ARG_IMM:
		return rule.imm
	}

	return false
}

// Arg is a source operand.
type Arg struct {
	Kind     ArgKind
	Register int    // Register index, for ARG_REG.
	Value    uint16 // Bit pattern, for ARG_IMM.
}

// MakeArgReg creates a register operand.
func MakeArgReg(index int) Arg {
	return Arg{Kind: ARG_REG, Register: index}
}

// MakeArgImm creates an immediate operand.
func MakeArgImm(value uint16) Arg {
	return Arg{Kind: ARG_IMM, Value: value}
}

// RegisterName is the assembly name of register index n.
func RegisterName(n int) string {
	return fmt.Sprintf("r%d", n)
}

// String returns the assembly form of the operand.
func (arg Arg) String() string {
	switch arg.Kind {
	case ARG_REG:
		return RegisterName(arg.Register)
	case ARG_IMM:
		return fmt.Sprintf("%#x", arg.Value)
	}
	return ""
}

// Instruction is a single decoded operation on a destination register.
type Instruction struct {
	Op  Op
	Dst int
	Src Arg
}

// String returns the assembly language form of the instruction.
func (ins Instruction) String() (out string) {
	out = fmt.Sprintf("%v %v", ins.Op, RegisterName(ins.Dst))
	if ins.Src.Kind != ARG_NONE {
		out += " " + ins.Src.String()
	}
	return
}
