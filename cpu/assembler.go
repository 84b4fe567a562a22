package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/Dream2503/cpu-assembler/register"
)

// Value limits of an immediate: any signed or unsigned register value.
const (
	VALUE_MIN = -(1 << (register.ARCHITECTURE - 1))
	VALUE_MAX = (1 << register.ARCHITECTURE) - 1
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for ALU scripts.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of assembled statements.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// opMap maps instruction names to ops.
var opMap = func() map[string]Op {
	ops := map[string]Op{}
	for op := OP_LOAD; op <= OP_CMP; op++ {
		ops[op.String()] = op
	}
	return ops
}()

// registerOf returns the register index of a register name.
func (asm *Assembler) registerOf(word string) (index int, ok bool) {
	if !strings.HasPrefix(word, "r") {
		return
	}

	index, err := strconv.Atoi(word[1:])
	if err != nil || index < 0 || index >= register.REGISTER_COUNT {
		return
	}

	// Only the canonical spelling, so 'r01' and 'r+1' are rejected.
	ok = RegisterName(index) == word
	return
}

// numberOf parses a signed number, without range checks.
func (asm *Assembler) numberOf(word string) (value int64, err error) {
	if len(word) > 0 && word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// valueOf returns the register bit pattern of a simple word.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	v64, err := asm.numberOf(word)
	if err != nil {
		return
	}

	if v64 < VALUE_MIN || v64 > VALUE_MAX {
		err = ErrValueRange(word)
		return
	}

	value = uint16(v64)

	if invert {
		value = ^value
	}

	return
}

// argOf determines if a word is a register or an immediate.
func (asm *Assembler) argOf(word string) (arg Arg, err error) {
	index, ok := asm.registerOf(word)
	if ok {
		arg = MakeArgReg(index)
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	arg = MakeArgImm(value)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value64, err := asm.numberOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine does substitutions on a single line, and expands macros.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "0":
				str = "\000"
			case "t":
				str = "\t"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Program of statements.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(strings.ReplaceAll(text_comment[0], "\t", " "))

		words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statement),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := slices.Clone(words)

	// Alternate syntax substitutions
	switch {
	case words[0] == "write":
		// write rD VALUE => load rD VALUE
		words = append([]string{"load"}, words[1:]...)
	case len(words) == 2 && words[0] == "clr":
		// clr rD => load rD 0
		words = []string{"load", words[1], "0"}
	default:
		// unchanged
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(words) < 2 {
		err = ErrTargetMissing
		return
	}

	dst, ok := asm.registerOf(words[1])
	if !ok {
		err = ErrTargetInvalid
		return
	}

	args := words[2:]
	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	var src Arg
	if len(args) == 1 {
		src, err = asm.argOf(args[0])
		if err != nil {
			return
		}
	}

	if !op.Accepts(src.Kind) {
		switch {
		case src.Kind == ARG_NONE:
			err = ErrOpcodeValueMissing
		case op.Accepts(ARG_NONE):
			err = ErrOpcodeExtraArgs
		default:
			err = ErrOperandInvalid
		}
		return
	}

	stmt := Statement{
		LineNo:      lineno,
		Words:       initial_words,
		Instruction: Instruction{Op: op, Dst: dst, Src: src},
	}
	asm.Statement = append(asm.Statement, stmt)

	return
}
