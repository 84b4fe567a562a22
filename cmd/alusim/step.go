//go:build !windows

package main

import (
	"github.com/pkg/term"
)

// stepper reads single key presses from the controlling terminal.
type stepper struct {
	tty *term.Term
}

func newStepper() (st *stepper, err error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return
	}

	st = &stepper{tty: tty}
	return
}

// Wait blocks for a key press. 'q' or escape quits.
func (st *stepper) Wait() (quit bool, err error) {
	key := make([]byte, 1)
	_, err = st.tty.Read(key)
	if err != nil {
		return
	}

	quit = key[0] == 'q' || key[0] == '\033'
	return
}

// Close restores the terminal mode.
func (st *stepper) Close() (err error) {
	err = st.tty.Restore()
	if err != nil {
		st.tty.Close()
		return
	}

	return st.tty.Close()
}
