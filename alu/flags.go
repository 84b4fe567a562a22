package alu

import (
	"strings"

	"github.com/Dream2503/cpu-assembler/bit"
)

// Flags is the ALU status register.
type Flags struct {
	CF bit.Bit // Carry out of the MSB, borrow, or last bit shifted/rotated out.
	ZF bit.Bit // Result is all zeros.
	SF bit.Bit // Copy of the result MSB.
	OF bit.Bit // Signed overflow.
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// String renders the flags in CZSO order, upper case when set.
func (fl Flags) String() string {
	s := strings.Builder{}

	flags := []struct {
		set      bit.Bit
		set_rune rune
		clr_rune rune
	}{
		{fl.CF, 'C', 'c'},
		{fl.ZF, 'Z', 'z'},
		{fl.SF, 'S', 's'},
		{fl.OF, 'O', 'o'},
	}

	for _, flag := range flags {
		if flag.set {
			s.WriteRune(flag.set_rune)
		} else {
			s.WriteRune(flag.clr_rune)
		}
	}

	return s.String()
}
