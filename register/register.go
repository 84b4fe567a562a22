// Package register implements the fixed-width bit vector the ALU operates on.
//
// Bit index 0 is the least significant bit and carries place value 2^0; the
// bit at ARCHITECTURE-1 is the sign bit under two's-complement. A register
// holds no arithmetic of its own.
package register

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/Dream2503/cpu-assembler/bit"
)

const (
	ARCHITECTURE   = 16 // Register width in bits.
	REGISTER_COUNT = 16 // Registers in a Set.
)

var _register_defines = map[string]string{
	"ARCHITECTURE": fmt.Sprintf("%d", ARCHITECTURE),
	"REGISTERS":    fmt.Sprintf("%d", REGISTER_COUNT),
	"INT_MIN":      fmt.Sprintf("%d", -(1 << (ARCHITECTURE - 1))),
	"INT_MAX":      fmt.Sprintf("%d", (1<<(ARCHITECTURE-1))-1),
	"UINT_MAX":     fmt.Sprintf("%d", (1<<ARCHITECTURE)-1),
}

// Defines for the register file.
func Defines() iter.Seq2[string, string] {
	return maps.All(_register_defines)
}

// Register is an ordered vector of ARCHITECTURE bits, LSB first.
type Register [ARCHITECTURE]bit.Bit

// New returns the register holding the two's-complement pattern of value.
// Bits above ARCHITECTURE are discarded; narrower signed types are sign
// extended, narrower unsigned types are zero extended.
func New[T constraints.Integer](value T) (reg Register) {
	for i := range ARCHITECTURE {
		reg[i] = bit.Bit((value>>i)&1 != 0)
	}

	return
}

// Value reinterprets the register bits as T. Bits map directly: no sign
// extension is performed, and bits that do not fit in T are lost.
func Value[T constraints.Integer](reg Register) (value T) {
	for i := range ARCHITECTURE {
		if reg[i] {
			value |= T(1) << i
		}
	}

	return
}

// Int16 is the signed two's-complement value.
func (reg Register) Int16() int16 {
	return Value[int16](reg)
}

// Uint16 is the unsigned value.
func (reg Register) Uint16() uint16 {
	return Value[uint16](reg)
}

// Bit returns the bit at index i.
func (reg Register) Bit(i int) bit.Bit {
	return reg[i]
}

// SetBit sets the bit at index i.
func (reg *Register) SetBit(i int, b bit.Bit) {
	reg[i] = b
}

// MSB is the sign bit.
func (reg Register) MSB() bit.Bit {
	return reg[ARCHITECTURE-1]
}

// Equal compares bit for bit.
func (reg Register) Equal(other Register) bool {
	return reg == other
}

// String returns the bits MSB first.
func (reg Register) String() string {
	var sb strings.Builder
	for i := ARCHITECTURE - 1; i >= 0; i-- {
		sb.WriteString(reg[i].String())
	}
	return sb.String()
}

// Set is a block of same-width, mutually independent registers.
type Set [REGISTER_COUNT]Register

// Reset zeroes every register in the set.
func (set *Set) Reset() {
	clear(set[:])
}
