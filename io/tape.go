package io

import (
	"fmt"
	"io"
)

// Tape writes output values to an io.Writer, one decimal value per line.
// A nil Output discards values.
type Tape struct {
	Output io.Writer
	Limit  int // If non-zero, the maximum number of values accepted.

	sent int
}

var _ Channel = (*Tape)(nil)

// Rewind clears the sent value count.
func (tc *Tape) Rewind() {
	tc.sent = 0
}

// Sent returns the number of values written since the last rewind.
func (tc *Tape) Sent() int {
	return tc.sent
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int) (err error) {
	if tc.Limit != 0 && tc.sent >= tc.Limit {
		err = ErrChannelFull
		return
	}

	tc.sent++

	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)

	return
}
