package cpu

import (
	"iter"
)

// Statement is one assembled instruction and the source that produced it.
type Statement struct {
	LineNo int      // Source line number.
	Words  []string // Source words, after equate and macro expansion.
	Instruction
}

// Program is an ordered list of assembled statements.
type Program struct {
	Statements []Statement
}

// Debug returns the statement assembled from a source line, if any.
func (prog *Program) Debug(lineno int) (stmt *Statement, ok bool) {
	for n := range prog.Statements {
		if prog.Statements[n].LineNo == lineno {
			stmt = &prog.Statements[n]
			ok = true
			break
		}
	}

	return
}

// Instructions iterates the program in execution order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(index int, ins Instruction) bool) {
		for n, stmt := range prog.Statements {
			if !yield(n, stmt.Instruction) {
				return
			}
		}
	}
}
