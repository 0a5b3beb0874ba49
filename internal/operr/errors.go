// Package operr provides process-tagged, wrappable errors for the morph
// engine, the same shape the library's rasterop and morphology stages use
// to report invalid arguments and propagate underlying causes.
package operr

import (
	"fmt"

	"golang.org/x/xerrors"
)

const header = "[MORPH]"

// processError is an error tied to the process (function/stage) that
// produced it, optionally wrapping an inner cause.
type processError struct {
	process string
	message string
	wrapped error
}

var _ xerrors.Wrapper = (*processError)(nil)

func (p *processError) Error() string {
	if p.wrapped != nil {
		return fmt.Sprintf("%s %s: %s: %s", header, p.process, p.message, p.wrapped.Error())
	}
	return fmt.Sprintf("%s %s: %s", header, p.process, p.message)
}

// Unwrap implements xerrors.Wrapper so errors.Is/errors.As walk the chain.
func (p *processError) Unwrap() error {
	return p.wrapped
}

// Error creates a new process error with a static message.
func Error(process, message string) error {
	return &processError{process: process, message: message}
}

// Errorf creates a new process error with a formatted message.
func Errorf(process, format string, args ...interface{}) error {
	return &processError{process: process, message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with the process and a static message.
func Wrap(err error, process, message string) error {
	if err == nil {
		return nil
	}
	return &processError{process: process, message: message, wrapped: err}
}

// Wrapf annotates err with the process and a formatted message.
func Wrapf(err error, process, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &processError{process: process, message: fmt.Sprintf(format, args...), wrapped: err}
}
