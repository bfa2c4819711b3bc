// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor is an interactive line debugger for the emulator.
package monitor

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"

	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/vm"
)

const help = `step [n]    execute n instructions (default 1)
continue    run to halt, the stop policy, or a breakpoint
regs        dump the register file
list        list program memory, as modified by tgl
break LINE  toggle a breakpoint on a source line
output      show the output so far
reset       restart the program from the seed
quit        leave the monitor
`

// LineReader reads one command line at a time. *readline.Instance is one.
type LineReader interface {
	Readline() (string, error)
}

// Monitor drives an emulator from text commands.
type Monitor struct {
	Emulator *emulator.Emulator
	Output   io.Writer    // Command responses.
	Seed     vm.Registers // Registers used by reset.
	Policy   vm.Policy    // Stop policy for continue; nil runs to halt.

	breakpoints map[int]bool // Source line numbers.
}

// NewMonitor creates a monitor for emu, writing responses to output.
func NewMonitor(emu *emulator.Emulator, output io.Writer) (mon *Monitor) {
	mon = &Monitor{
		Emulator:    emu,
		Output:      output,
		breakpoints: map[int]bool{},
	}

	return
}

// Breakpoints returns the source lines with a breakpoint, in order.
func (mon *Monitor) Breakpoints() (lines []int) {
	for line, on := range mon.breakpoints {
		if on {
			lines = append(lines, line)
		}
	}
	slices.Sort(lines)
	return
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.Output, format, args...)
}

// status shows where the machine is.
func (mon *Monitor) status() {
	m := mon.Emulator.Machine
	ins, ok := m.Fetch()
	if !ok {
		mon.printf("halted at %d after %d ticks\n", m.Ip, m.Ticks)
		return
	}
	mon.printf("%03d line %d: %v\n", m.Ip, mon.Emulator.LineNo(), ins)
}

// Command executes a single command line. It returns quit once the user
// asks to leave.
func (mon *Monitor) Command(line string) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	cmd, args := words[0], words[1:]

	switch cmd {
	case "q", "quit", "exit":
		quit = true
		return
	case "h", "help", "?":
		mon.printf("%s", help)
		return
	case "b", "break":
		err = mon.toggleBreak(args)
		return
	case "reset":
		err = mon.Emulator.Reset(mon.Seed)
		if err == nil {
			mon.status()
		}
		return
	}

	if mon.Emulator.Machine == nil {
		err = emulator.ErrNotReset
		return
	}

	switch cmd {
	case "s", "step":
		err = mon.step(args)
	case "c", "continue":
		if len(args) != 0 {
			err = ErrCommandArgs
			return
		}
		err = mon.cont()
	case "r", "regs":
		pretty.Fprintf(mon.Output, "%# v\n", mon.Emulator.Machine.Register)
	case "l", "list":
		mon.list()
	case "o", "output":
		words := make([]string, len(mon.Emulator.Machine.Output))
		for n, value := range mon.Emulator.Machine.Output {
			words[n] = strconv.Itoa(value)
		}
		mon.printf("%s\n", strings.Join(words, ","))
	default:
		err = ErrCommandUnknown
	}

	return
}

func (mon *Monitor) step(args []string) (err error) {
	count := 1
	switch len(args) {
	case 0:
	case 1:
		count, err = strconv.Atoi(args[0])
		if err != nil || count <= 0 {
			err = ErrCommandArgs
			return
		}
	default:
		err = ErrCommandArgs
		return
	}

	for range count {
		var done bool
		done, err = mon.Emulator.Tick()
		if err != nil || done {
			break
		}
	}

	mon.status()

	return
}

func (mon *Monitor) cont() (err error) {
	policy := mon.Policy
	if policy == nil {
		policy = vm.UntilHalt()
	}

	for {
		var done bool
		done, err = mon.Emulator.Tick()
		if err != nil || done {
			break
		}
		if policy.Done(mon.Emulator.Machine) {
			mon.printf("%v\n", vm.STOP_SATISFIED)
			break
		}
		if line := mon.Emulator.LineNo(); mon.breakpoints[line] {
			mon.printf("break at line %d\n", line)
			break
		}
	}

	mon.status()

	return
}

func (mon *Monitor) list() {
	m := mon.Emulator.Machine
	for ip, ins := range m.Memory {
		line := mon.Emulator.Program.LineOf(ip)
		mark := "  "
		if ip == m.Ip {
			mark = "=>"
		}
		brk := " "
		if mon.breakpoints[line] {
			brk = "*"
		}
		mon.printf("%s%s%03d line %d: %v\n", mark, brk, ip, line, ins)
	}
}

func (mon *Monitor) toggleBreak(args []string) (err error) {
	if len(args) != 1 {
		err = ErrCommandArgs
		return
	}

	line, err := strconv.Atoi(args[0])
	if err != nil {
		err = ErrCommandArgs
		return
	}

	if !slices.Contains(mon.Emulator.Program.LineNo, line) {
		err = ErrBreakLine
		return
	}

	if mon.breakpoints[line] {
		delete(mon.breakpoints, line)
		mon.printf("line %d: breakpoint off\n", line)
	} else {
		mon.breakpoints[line] = true
		mon.printf("line %d: breakpoint on\n", line)
	}

	return
}

// Run reads and executes commands until quit or end of input. Command
// errors are reported and the loop carries on.
func (mon *Monitor) Run(input LineReader) (err error) {
	for {
		line, rerr := input.Readline()
		switch rerr {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			err = rerr
			return
		}

		quit, cerr := mon.Command(line)
		if cerr != nil {
			mon.printf("%v\n", cerr)
			if mon.Emulator.Verbose {
				log.Printf("monitor: %q: %v", line, cerr)
			}
		}
		if quit {
			return
		}
	}
}
