// Package io provides output channels for the regvm emulator. A channel
// receives each value emitted by an out instruction as it happens.
package io

// Channel defines the interface for all output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single value to the channel.
	Send(value int) error
}
