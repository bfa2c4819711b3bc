// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/dustin/go-humanize"

	"github.com/ezrec/regvm/io"
	"github.com/ezrec/regvm/vm"
)

// Emulator state. Machine + source listing + output tape.
type Emulator struct {
	Verbose     bool        // If set, enables verbose logging.
	*vm.Machine             // Reference to the running machine.
	Program     *vm.Program // Reference to the currently loaded program listing.

	Tape     io.Tape // Output tape, fed with each out value as it is emitted.
	MaxTicks int     // If non-zero, ticks past this count fail with ErrTickLimit.

	sent int // Output values already sent to the tape.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &vm.Program{},
	}

	return
}

// Reset loads a fresh machine from the program with the seed registers.
func (emu *Emulator) Reset(seed vm.Registers) (err error) {
	if emu.Program == nil || emu.Program.Len() == 0 {
		err = ErrProgramEmpty
		return
	}

	emu.Machine = vm.NewMachine(emu.Program, seed)
	emu.Tape.Rewind()
	emu.sent = 0

	if emu.Verbose {
		log.Printf("emulator: reset %v", emu.Machine.Register)
	}

	return
}

// LineNo returns the source line number of the next instruction, or 0
// once the machine has halted.
func (emu *Emulator) LineNo() int {
	if emu.Machine == nil {
		return 0
	}

	return emu.Program.LineOf(emu.Machine.Ip)
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Machine == nil {
		err = ErrNotReset
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	emu.Machine.Verbose = emu.Verbose

	if emu.Machine.Halted() {
		done = true
		return
	}

	if emu.MaxTicks != 0 && emu.Machine.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	emu.Machine.Step()

	err = emu.flush()

	return
}

// flush sends output values not yet seen by the tape.
func (emu *Emulator) flush() (err error) {
	for emu.sent < len(emu.Machine.Output) {
		err = emu.Tape.Send(emu.Machine.Output[emu.sent])
		if err != nil {
			return
		}
		emu.sent++
	}

	return
}

// Run ticks until the machine halts, the policy is satisfied, or an error
// occurs. A nil policy runs until halt.
func (emu *Emulator) Run(policy vm.Policy) (stop vm.Stop, err error) {
	if policy == nil {
		policy = vm.UntilHalt()
	}

	for {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			stop = vm.STOP_HALTED
			break
		}
		if policy.Done(emu.Machine) {
			stop = vm.STOP_SATISFIED
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %v after %s ticks", stop, humanize.Comma(int64(emu.Machine.Ticks)))
	}

	return
}
