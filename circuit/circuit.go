// Package circuit implements the combinational cells the ALU ripples through:
// half and full adders, half and full subtractors.
//
// Every cell is stateless and expressed only with bit gates. The full cells are
// wired from two half cells and an OR gate, as they would be on silicon.
package circuit

import (
	"github.com/Dream2503/cpu-assembler/bit"
)

// HalfAdderResult is the output of a half adder.
type HalfAdderResult struct {
	Sum   bit.Bit
	Carry bit.Bit
}

// HalfSubtractorResult is the output of a half subtractor.
type HalfSubtractorResult struct {
	Difference bit.Bit
	Borrow     bit.Bit
}

// FullAdderResult is the output of a full adder.
type FullAdderResult struct {
	Sum   bit.Bit
	Carry bit.Bit
}

// FullSubtractorResult is the output of a full subtractor.
type FullSubtractorResult struct {
	Difference bit.Bit
	Borrow     bit.Bit
}

// HalfAdderSum is x ^ y.
func HalfAdderSum(x, y bit.Bit) bit.Bit {
	return x.Xor(y)
}

// HalfAdderCarry is x & y.
func HalfAdderCarry(x, y bit.Bit) bit.Bit {
	return x.And(y)
}

// HalfAdder adds two bits with no carry in.
func HalfAdder(x, y bit.Bit) HalfAdderResult {
	return HalfAdderResult{
		Sum:   HalfAdderSum(x, y),
		Carry: HalfAdderCarry(x, y),
	}
}

// HalfSubtractorDifference is x ^ y.
func HalfSubtractorDifference(x, y bit.Bit) bit.Bit {
	return x.Xor(y)
}

// HalfSubtractorBorrow is ~x & y.
func HalfSubtractorBorrow(x, y bit.Bit) bit.Bit {
	return x.Not().And(y)
}

// HalfSubtractor computes x - y with no borrow in.
func HalfSubtractor(x, y bit.Bit) HalfSubtractorResult {
	return HalfSubtractorResult{
		Difference: HalfSubtractorDifference(x, y),
		Borrow:     HalfSubtractorBorrow(x, y),
	}
}

// FullAdderSum is x ^ y ^ c.
func FullAdderSum(x, y, c bit.Bit) bit.Bit {
	return HalfAdderSum(HalfAdderSum(x, y), c)
}

// FullAdderCarry is (x & y) | ((x ^ y) & c).
func FullAdderCarry(x, y, c bit.Bit) bit.Bit {
	return HalfAdderCarry(x, y).Or(HalfAdderCarry(HalfAdderSum(x, y), c))
}

// FullAdder adds x, y and a carry in.
//
//	x y c | sum carry
//	0 0 0 |  0    0
//	0 0 1 |  1    0
//	0 1 0 |  1    0
//	0 1 1 |  0    1
//	1 0 0 |  1    0
//	1 0 1 |  0    1
//	1 1 0 |  0    1
//	1 1 1 |  1    1
func FullAdder(x, y, c bit.Bit) FullAdderResult {
	return FullAdderResult{
		Sum:   FullAdderSum(x, y, c),
		Carry: FullAdderCarry(x, y, c),
	}
}

// FullSubtractorDifference is x ^ y ^ b.
func FullSubtractorDifference(x, y, b bit.Bit) bit.Bit {
	return HalfSubtractorDifference(HalfSubtractorDifference(x, y), b)
}

// FullSubtractorBorrow is (~x & y) | (~(x ^ y) & b).
func FullSubtractorBorrow(x, y, b bit.Bit) bit.Bit {
	return HalfSubtractorBorrow(x, y).Or(HalfSubtractorBorrow(HalfSubtractorDifference(x, y), b))
}

// FullSubtractor computes x - y - b.
//
//	x y b | diff borrow
//	0 0 0 |  0     0
//	0 0 1 |  1     1
//	0 1 0 |  1     1
//	0 1 1 |  0     1
//	1 0 0 |  1     0
//	1 0 1 |  0     0
//	1 1 0 |  0     0
//	1 1 1 |  1     1
func FullSubtractor(x, y, b bit.Bit) FullSubtractorResult {
	return FullSubtractorResult{
		Difference: FullSubtractorDifference(x, y, b),
		Borrow:     FullSubtractorBorrow(x, y, b),
	}
}
