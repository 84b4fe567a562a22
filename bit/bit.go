// Package bit implements a single two-valued logic signal and the gates that
// combine them.
package bit

// Bit is a single logic level. Every gate returns a new Bit.
type Bit bool

const (
	LOW  = Bit(false) // Logic 0
	HIGH = Bit(true)  // Logic 1
)

// Not is the inverter.
//
//	x | ~x
//	0 |  1
//	1 |  0
func (x Bit) Not() Bit {
	return !x
}

// And is 1 only when both inputs are 1.
func (x Bit) And(y Bit) Bit {
	return x && y
}

// Or is 1 when at least one input is 1.
func (x Bit) Or(y Bit) Bit {
	return x || y
}

// Xor is 1 when the inputs differ.
func (x Bit) Xor(y Bit) Bit {
	return x != y
}

// Xnor is 1 when the inputs are the same.
func (x Bit) Xnor(y Bit) Bit {
	return x.Xor(y).Not()
}

// Nand is 0 only when both inputs are 1.
func (x Bit) Nand(y Bit) Bit {
	return x.And(y).Not()
}

// Nor is 1 only when both inputs are 0.
func (x Bit) Nor(y Bit) Bit {
	return x.Or(y).Not()
}

// Eq is logical equivalence, wired as XNOR.
func (x Bit) Eq(y Bit) Bit {
	return x.Xnor(y)
}

// Ne is logical inequality, wired as XOR.
func (x Bit) Ne(y Bit) Bit {
	return x.Xor(y)
}

// Bool converts to a plain boolean.
func (x Bit) Bool() bool {
	return bool(x)
}

// String returns "1" or "0".
func (x Bit) String() string {
	if x {
		return "1"
	}
	return "0"
}
