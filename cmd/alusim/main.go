package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Dream2503/cpu-assembler/cpu"
	"github.com/Dream2503/cpu-assembler/emulator"
	"github.com/Dream2503/cpu-assembler/translate"
)

var f = translate.From

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	var pairs []string
	for name, value := range d {
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return errors.New(f("'%v' is not NAME=VALUE", text))
	}
	d[name] = value
	return nil
}

func main() {
	var compile string
	var verbose bool
	var quiet bool
	var step bool
	predefine := defines{}

	flag.StringVar(&compile, "c", "-", "script file to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Do not trace statements")
	flag.BoolVar(&step, "s", false, "Single step, one key press per statement")
	flag.Var(predefine, "D", "Predefine NAME=VALUE")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	asm := &cpu.Assembler{Verbose: verbose}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	for name, value := range predefine {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	emu.Program = prog
	if !quiet {
		emu.Trace = os.Stdout
	}
	emu.Reset()

	var st *stepper
	if step {
		st, err = newStepper()
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		defer st.Close()
	}

	for {
		if st != nil && emu.Statement() != nil {
			_, err := translate.Fprintf(os.Stdout, "%4d: %v ? ", emu.LineNo(), emu.Statement().Instruction)
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
			quit, err := st.Wait()
			fmt.Println()
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
			if quit {
				break
			}
		}

		done, err := emu.Tick()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		if done {
			break
		}
	}

	err = report(os.Stdout, emu)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// report writes the final register state and counters.
func report(w io.Writer, emu *emulator.Emulator) (err error) {
	_, err = io.WriteString(w, emu.Cpu.String())
	if err != nil {
		return
	}

	_, err = translate.Fprintf(w, "%5s: %d\n", "ticks", emu.Ticks())
	if err != nil {
		return
	}

	_, err = translate.Fprintf(w, "%5s: %d\n", "power", emu.Power())
	return
}
