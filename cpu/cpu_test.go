package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dream2503/cpu-assembler/register"
)

func assemble(t *testing.T, lines ...string) *Program {
	asm := &Assembler{}
	for key, value := range NewCpu().Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return prog
}

func TestCpuExecute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		reg     int
		value   uint16
		flags   string
	}){
		{"add", []string{"load r0 5", "load r1 7", "add r0 r1"}, 0, 12, "czso"},
		{"add_overflow", []string{"load r0 INT_MAX", "add r0 1"}, 0, 0x8000, "czSO"},
		{"add_carry", []string{"load r0 -1", "add r0 1"}, 0, 0, "CZso"},
		{"sub_borrow", []string{"load r0 3", "sub r0 5"}, 0, 0xfffe, "CzSo"},
		{"mul", []string{"load r0 6", "mul r0 7"}, 0, 42, "cZso"},
		{"div", []string{"load r0 100", "div r0 7"}, 0, 14, "czso"},
		{"div_zero", []string{"load r0 1", "div r0 0"}, 0, 0, "CZsO"},
		{"inc", []string{"load r0 INT_MAX", "inc r0"}, 0, 0x8000, "czSO"},
		{"dec", []string{"load r0 0", "dec r0"}, 0, 0xffff, "czSo"},
		{"neg", []string{"load r0 5", "neg r0"}, 0, 0xfffb, "CzSo"},
		{"neg_min", []string{"load r0 INT_MIN", "neg r0"}, 0, 0x8000, "CzSO"},
		{"shl", []string{"load r0 0x8001", "shl r0"}, 0, 0x0002, "CzsO"},
		{"shr", []string{"load r0 0x8001", "shr r0"}, 0, 0x4000, "Czso"},
		{"sar", []string{"load r0 0x8000", "sar r0 15"}, 0, 0xffff, "czSo"},
		{"shl_saturate", []string{"load r0 0x0001", "shl r0 99"}, 0, 0, "CZso"},
		{"rol", []string{"load r1 4", "load r0 0x1234", "rol r0 r1"}, 0, 0x2341, "Czso"},
		{"ror", []string{"load r0 0x1234", "ror r0 4"}, 0, 0x4123, "czso"},
		{"cmp", []string{"load r0 5", "cmp r0 5"}, 0, 5, "cZso"},
		{"mov", []string{"load r0 5", "mov r1 r0"}, 1, 5, "czso"},
		{"mov_self", []string{"load r3 9", "mov r3 r3", "add r3 r3"}, 3, 18, "czso"},
	}

	cpu := NewCpu()
	for _, entry := range table {
		cpu.Reset()

		err := cpu.Run(assemble(t, entry.program...))
		assert.NoError(err, entry.name)

		assert.Equal(entry.value, cpu.Register[entry.reg].Uint16(), entry.name)
		assert.Equal(entry.flags, cpu.Alu.Flags.String(), entry.name)
		assert.Equal(len(entry.program), cpu.Ticks, entry.name)
	}
}

func TestCpuLoadLeavesFlags(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Run(assemble(t, "load r0 -1", "add r0 1", "load r1 0x1234", "mov r2 r1"))
	assert.NoError(err)

	assert.Equal("CZso", cpu.Alu.Flags.String())
	assert.Equal(uint16(0x1234), cpu.Register[2].Uint16())
}

func TestCpuRegistersIndependent(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for n := range register.REGISTER_COUNT {
		err := cpu.Execute(Instruction{Op: OP_LOAD, Dst: n, Src: MakeArgImm(uint16(n * 0x101))})
		assert.NoError(err)
	}

	err := cpu.Execute(Instruction{Op: OP_NEG, Dst: 7})
	assert.NoError(err)

	for n := range register.REGISTER_COUNT {
		expected := uint16(n * 0x101)
		if n == 7 {
			expected = -expected
		}
		assert.Equal(expected, cpu.Register[n].Uint16(), RegisterName(n))
	}
}

func TestCpuErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		ins  Instruction
		err  error
	}){
		{"dst_low", Instruction{Op: OP_INC, Dst: -1}, ErrRegisterInvalid},
		{"dst_high", Instruction{Op: OP_INC, Dst: 16}, ErrRegisterInvalid},
		{"src_high", Instruction{Op: OP_ADD, Dst: 0, Src: MakeArgReg(16)}, ErrRegisterInvalid},
		{"load_reg", Instruction{Op: OP_LOAD, Dst: 0, Src: MakeArgReg(1)}, ErrOperandInvalid},
		{"mov_imm", Instruction{Op: OP_MOV, Dst: 0, Src: MakeArgImm(1)}, ErrOperandInvalid},
		{"add_none", Instruction{Op: OP_ADD, Dst: 0}, ErrOperandInvalid},
		{"inc_imm", Instruction{Op: OP_INC, Dst: 0, Src: MakeArgImm(1)}, ErrOperandInvalid},
		{"bad_kind", Instruction{Op: OP_ADD, Dst: 0, Src: Arg{Kind: ArgKind(9)}}, ErrOperandInvalid},
		{"bad_op", Instruction{Op: Op(99), Dst: 0}, ErrOperandInvalid},
	}

	for _, entry := range table {
		cpu := NewCpu()
		err := cpu.Execute(entry.ins)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.ErrorIs(err, ErrInstruction{}, entry.name)
		assert.Equal(0, cpu.Ticks, entry.name)
	}
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Run(assemble(t, "load r0 -1", "add r0 1", "load r5 77"))
	assert.NoError(err)
	assert.NotZero(cpu.Power)
	assert.Equal(3, cpu.Ticks)

	cpu.Reset()
	assert.Equal(register.Set{}, cpu.Register)
	assert.Equal("czso", cpu.Alu.Flags.String())
	assert.Equal(0, cpu.Power)
	assert.Equal(0, cpu.Ticks)
}

func TestCpuPower(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	// 0 -> 0xff flips eight bits.
	err := cpu.Execute(Instruction{Op: OP_LOAD, Dst: 0, Src: MakeArgImm(0xff)})
	assert.NoError(err)
	assert.Equal(8, cpu.Power)

	// 0xff -> 0 flips eight register bits, then CF and ZF.
	err = cpu.Execute(Instruction{Op: OP_ADD, Dst: 0, Src: MakeArgImm(0xff01)})
	assert.NoError(err)
	assert.Equal(18, cpu.Power)
}

func TestCpuStatus(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(uint16(0), cpu.Status())

	err := cpu.Run(assemble(t, "load r0 INT_MAX", "add r0 1"))
	assert.NoError(err)
	assert.Equal(FLAG_SF|FLAG_OF, cpu.Status())

	err = cpu.Run(assemble(t, "load r0 -1", "add r0 1"))
	assert.NoError(err)
	assert.Equal(FLAG_CF|FLAG_ZF, cpu.Status())
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Run(assemble(t, "load r2 -2", "load r3 0xff", "cmp r2 r2"))
	assert.NoError(err)

	text := cpu.String()
	assert.Contains(text, "   r3: 0000000011111111 0x00ff 255\n")
	assert.Contains(text, "   r2: 1111111111111110 0xfffe -2\n")
	assert.Contains(text, "  r15: 0000000000000000 0x0000 0\n")
	assert.Contains(text, "flags: cZso\n")
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("inc r3", Instruction{Op: OP_INC, Dst: 3}.String())
	assert.Equal("add r1 r2", Instruction{Op: OP_ADD, Dst: 1, Src: MakeArgReg(2)}.String())
	assert.Equal("load r0 0xff", Instruction{Op: OP_LOAD, Dst: 0, Src: MakeArgImm(0xff)}.String())
	assert.Equal("Op(99) r0", Instruction{Op: Op(99), Dst: 0}.String())
}
