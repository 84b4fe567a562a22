//go:build windows

package main

import (
	"errors"
)

type stepper struct{}

func newStepper() (st *stepper, err error) {
	err = errors.New(f("single step needs a posix terminal"))
	return
}

func (st *stepper) Wait() (quit bool, err error) {
	return
}

func (st *stepper) Close() (err error) {
	return
}
