// Package lsu is the load/store unit: register-to-register moves and literal
// loads. It performs no arithmetic.
package lsu

import (
	"golang.org/x/exp/constraints"

	"github.com/Dream2503/cpu-assembler/register"
)

// Mov copies every bit of src into dst.
func Mov(dst *register.Register, src register.Register) {
	for i := range register.ARCHITECTURE {
		dst[i] = src[i]
	}
}

// Load writes the two's-complement pattern of value into reg.
func Load[T constraints.Integer](reg *register.Register, value T) {
	Mov(reg, register.New(value))
}
