// Package cpu sequences the ALU and the load/store unit over a bank of
// sixteen registers, and assembles scripts into instructions for it.
//
// Every instruction names a destination register and an optional source
// operand. A source is either another register or an immediate; immediates
// are first loaded into a private operand register by the load/store unit,
// so the ALU only ever sees registers.
//
// The assembler accepts one instruction per line, with ';' comments, .equ
// constants, .macro/.endm text macros, character literals and compile-time
// $(...) expressions.
package cpu
