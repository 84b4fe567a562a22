// Package alu implements the arithmetic-logic unit of the simulated CPU.
//
// Every operation ripples bit by bit through the combinational cells in the
// circuit package, writes its result in place, and recomputes the four
// condition flags. Scratch registers are always supplied by the caller; the
// ALU owns nothing but its flags.
package alu

import (
	"github.com/Dream2503/cpu-assembler/bit"
	"github.com/Dream2503/cpu-assembler/circuit"
	"github.com/Dream2503/cpu-assembler/lsu"
	"github.com/Dream2503/cpu-assembler/register"
)

const ARCHITECTURE = register.ARCHITECTURE

// ALU is the arithmetic-logic unit. The zero value has all flags clear.
// An ALU is not safe for concurrent use.
type ALU struct {
	Flags
}

// isZero NOR-reduces every bit of the register.
func isZero(reg *register.Register) bit.Bit {
	set := bit.LOW
	for i := range ARCHITECTURE {
		set = set.Or(reg[i])
	}
	return set.Not()
}

// ADD adds rhs into lhs with a ripple-carry adder.
//
// CF is the carry out of the MSB. OF is set when both operands share a sign
// and the result sign differs from it.
func (alu *ALU) ADD(lhs *register.Register, rhs register.Register) {
	lhs_msb := lhs.MSB()
	rhs_msb := rhs.MSB()
	carry := bit.LOW
	alu.ZF = bit.HIGH

	for i := range ARCHITECTURE {
		res := circuit.FullAdder(lhs[i], rhs[i], carry)
		lhs[i] = res.Sum
		carry = res.Carry

		if res.Sum {
			alu.ZF = bit.LOW
		}
	}

	alu.SF = lhs.MSB()
	alu.CF = carry
	alu.OF = lhs_msb.Eq(rhs_msb).And(alu.SF.Ne(lhs_msb))
}

// SUB subtracts rhs from lhs as lhs + ~rhs + 1.
//
// CF is the inverted carry out, i.e. the unsigned borrow. OF is set when the
// operand signs differ and the result sign differs from lhs.
func (alu *ALU) SUB(lhs *register.Register, rhs register.Register) {
	lhs_msb := lhs.MSB()
	rhs_msb := rhs.MSB()
	carry := bit.HIGH
	alu.ZF = bit.HIGH

	for i := range ARCHITECTURE {
		res := circuit.FullAdder(lhs[i], rhs[i].Not(), carry)
		lhs[i] = res.Sum
		carry = res.Carry

		if res.Sum {
			alu.ZF = bit.LOW
		}
	}

	alu.SF = lhs.MSB()
	alu.CF = carry.Not()
	alu.OF = lhs_msb.Ne(rhs_msb).And(alu.SF.Ne(lhs_msb))
}

// MUL multiplies lhs by rhs with shift-and-add, leaving the low
// ARCHITECTURE bits of the product in lhs.
//
// The flags are whatever the final shift of temp left behind; there is no
// multiply overflow detection.
func (alu *ALU) MUL(lhs *register.Register, rhs register.Register, temp *register.Register, zero register.Register) {
	lsu.Mov(temp, *lhs)
	lsu.Mov(lhs, zero)

	for i := range ARCHITECTURE {
		if rhs[i] {
			alu.ADD(lhs, *temp)
		}
		// temp doubles as the CMP scratch; comparing against zero leaves it intact.
		alu.SHL(temp, 1, zero, temp)
	}
}

// DIV divides lhs by rhs with unsigned repeated subtraction, leaving the
// quotient in lhs.
//
// Division by zero zeroes lhs and sets ZF, CF and OF with SF clear. Otherwise
// SF and ZF describe the quotient, and CF and OF are cleared.
func (alu *ALU) DIV(lhs *register.Register, rhs register.Register, quotient, temp *register.Register, zero register.Register) {
	alu.CMP(rhs, zero, temp)

	if alu.ZF {
		lsu.Mov(lhs, zero)
		alu.ZF = bit.HIGH
		alu.CF = bit.HIGH
		alu.OF = bit.HIGH
		alu.SF = bit.LOW
		return
	}

	lsu.Mov(quotient, zero)
	lsu.Mov(temp, *lhs)

	for {
		alu.SUB(temp, rhs)

		if alu.CF {
			// Restore the remainder.
			alu.ADD(temp, rhs)
			break
		}
		alu.INC(quotient)
	}

	lsu.Mov(lhs, *quotient)
	alu.CMP(*lhs, zero, temp)
	alu.CF = bit.LOW
	alu.OF = bit.LOW
}

// INC adds one by rippling a carry in through a zero operand. The chain stops
// at the first bit that absorbs the carry. CF is not affected.
func (alu *ALU) INC(reg *register.Register) {
	msb := reg.MSB()
	carry := bit.HIGH

	for i := range ARCHITECTURE {
		res := circuit.FullAdder(reg[i], bit.LOW, carry)
		reg[i] = res.Sum
		carry = res.Carry

		if !carry {
			break
		}
	}

	alu.ZF = isZero(reg)
	alu.SF = reg.MSB()
	alu.OF = msb.Not().And(alu.SF)
}

// DEC subtracts one by rippling a borrow in through a zero operand. The chain
// stops at the first bit that absorbs the borrow. CF is not affected.
func (alu *ALU) DEC(reg *register.Register) {
	msb := reg.MSB()
	borrow := bit.HIGH

	for i := range ARCHITECTURE {
		res := circuit.FullSubtractor(reg[i], bit.LOW, borrow)
		reg[i] = res.Difference
		borrow = res.Borrow

		if !borrow {
			break
		}
	}

	alu.ZF = isZero(reg)
	alu.SF = reg.MSB()
	alu.OF = msb.And(alu.SF.Not())
}

// NEG replaces reg with its two's-complement negation, computed as zero - reg.
//
// CF is set for any non-zero input. OF is set only when negating the minimum
// representable value, which negates to itself.
func (alu *ALU) NEG(reg *register.Register, temp *register.Register, zero register.Register) {
	msb := reg.MSB()

	lsu.Mov(temp, zero)
	alu.SUB(temp, *reg)
	lsu.Mov(reg, *temp)
	alu.CMP(*reg, zero, temp)

	alu.CF = alu.ZF.Not()
	alu.OF = msb.And(reg.MSB())
}

// clampShift saturates a shift count at the register width. A saturated
// shift still takes CF from the last bit shifted out: bit 0 for SHL, bit
// ARCHITECTURE-1 for SHR and SAR, not the bit at the opposite end.
func clampShift(count uint) int {
	if count > ARCHITECTURE {
		return ARCHITECTURE
	}
	return int(count)
}

// refresh recomputes ZF and SF from reg with a CMP against zero, then
// installs the shifter's own CF and OF.
func (alu *ALU) refresh(reg *register.Register, zero register.Register, temp *register.Register, cf, of bit.Bit) {
	alu.CMP(*reg, zero, temp)
	alu.CF = cf
	alu.OF = of
}

// SHL shifts left by count, filling with zeros. Counts at or above
// ARCHITECTURE clear the register.
//
// CF is the last bit shifted out of the MSB. OF is SF ^ CF for single bit
// shifts, clear otherwise.
func (alu *ALU) SHL(reg *register.Register, count uint, zero register.Register, temp *register.Register) {
	n := clampShift(count)
	if n == 0 {
		alu.refresh(reg, zero, temp, bit.LOW, bit.LOW)
		return
	}

	cf := reg[ARCHITECTURE-n]

	for i := ARCHITECTURE - 1 - n; i >= 0; i-- {
		reg[i+n] = reg[i]
	}
	for i := range n {
		reg[i] = bit.LOW
	}

	of := bit.LOW
	if n == 1 {
		of = reg.MSB().Xor(cf)
	}
	alu.refresh(reg, zero, temp, cf, of)
}

// SHR shifts right by count, filling with zeros. Counts at or above
// ARCHITECTURE clear the register.
//
// CF is the last bit shifted out of the LSB. OF is always clear.
func (alu *ALU) SHR(reg *register.Register, count uint, zero register.Register, temp *register.Register) {
	alu.shiftRight(reg, count, bit.LOW, zero, temp)
}

// SAR shifts right by count, filling with the original sign bit. Counts at or
// above ARCHITECTURE fill the register with the sign.
//
// CF is the last bit shifted out of the LSB. OF is always clear.
func (alu *ALU) SAR(reg *register.Register, count uint, zero register.Register, temp *register.Register) {
	alu.shiftRight(reg, count, reg.MSB(), zero, temp)
}

func (alu *ALU) shiftRight(reg *register.Register, count uint, fill bit.Bit, zero register.Register, temp *register.Register) {
	n := clampShift(count)
	if n == 0 {
		alu.refresh(reg, zero, temp, bit.LOW, bit.LOW)
		return
	}

	cf := reg[n-1]

	for i := 0; i < ARCHITECTURE-n; i++ {
		reg[i] = reg[i+n]
	}
	for i := ARCHITECTURE - n; i < ARCHITECTURE; i++ {
		reg[i] = fill
	}

	alu.refresh(reg, zero, temp, cf, bit.LOW)
}

// ROL rotates left by count modulo ARCHITECTURE, one position at a time.
//
// CF is the last bit rotated out of the MSB. OF is SF ^ CF for a net single
// bit rotation, clear otherwise. A zero net rotation clears CF and OF.
func (alu *ALU) ROL(reg *register.Register, count uint, zero register.Register, temp *register.Register) {
	n := int(count % ARCHITECTURE)
	if n == 0 {
		alu.refresh(reg, zero, temp, bit.LOW, bit.LOW)
		return
	}

	cf := bit.LOW
	for range n {
		msb := reg[ARCHITECTURE-1]
		for i := ARCHITECTURE - 1; i > 0; i-- {
			reg[i] = reg[i-1]
		}
		reg[0] = msb
		cf = msb
	}

	of := bit.LOW
	if n == 1 {
		of = reg.MSB().Xor(cf)
	}
	alu.refresh(reg, zero, temp, cf, of)
}

// ROR rotates right by count modulo ARCHITECTURE, one position at a time.
//
// CF is the last bit rotated out of the LSB. OF is the XOR of the two most
// significant result bits for a net single bit rotation, clear otherwise. A
// zero net rotation clears CF and OF.
func (alu *ALU) ROR(reg *register.Register, count uint, zero register.Register, temp *register.Register) {
	n := int(count % ARCHITECTURE)
	if n == 0 {
		alu.refresh(reg, zero, temp, bit.LOW, bit.LOW)
		return
	}

	cf := bit.LOW
	for range n {
		lsb := reg[0]
		for i := 0; i < ARCHITECTURE-1; i++ {
			reg[i] = reg[i+1]
		}
		reg[ARCHITECTURE-1] = lsb
		cf = lsb
	}

	of := bit.LOW
	if n == 1 {
		of = reg[ARCHITECTURE-1].Xor(reg[ARCHITECTURE-2])
	}
	alu.refresh(reg, zero, temp, cf, of)
}

// CMP sets the flags exactly as SUB(lhs, rhs) would, working on temp so that
// neither operand changes.
func (alu *ALU) CMP(lhs, rhs register.Register, temp *register.Register) {
	lsu.Mov(temp, lhs)
	alu.SUB(temp, rhs)
}
