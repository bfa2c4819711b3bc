// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"fmt"
	"log"
	"slices"
)

// Machine is the execution state of a single run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory   []Instruction // Program memory, rewritten in place by tgl.
	Register Registers     // Register file.
	Ip       int           // Index of the next instruction.
	Output   []int         // Values emitted by out.

	Ticks int // Executed instruction counter.
}

// NewMachine loads a copy of the program and seed registers. The caller's
// program and seed are never modified.
func NewMachine(prog *Program, seed Registers) (m *Machine) {
	m = &Machine{
		Memory:   slices.Clone(prog.Code),
		Register: seed.Clone(),
	}

	return
}

// Run executes prog against seed until it halts or policy is satisfied,
// returning the final registers and collected output.
func Run(prog *Program, seed Registers, policy Policy) (final Registers, output []int, stop Stop) {
	m := NewMachine(prog, seed)
	stop = m.Run(policy)
	return m.Register, m.Output, stop
}

// Halted reports whether the instruction pointer has left the program.
func (m *Machine) Halted() bool {
	return m.Ip < 0 || m.Ip >= len(m.Memory)
}

// Fetch returns the instruction at the instruction pointer.
func (m *Machine) Fetch() (ins Instruction, ok bool) {
	if m.Halted() {
		return
	}
	return m.Memory[m.Ip], true
}

// Execute applies a single instruction at the current instruction pointer,
// then advances the pointer.
func (m *Machine) Execute(ins Instruction) {
	if m.Verbose {
		log.Printf("%03d: %v", m.Ip, ins)
	}

	next_ip := m.Ip + 1

	switch ins.Op {
	case OP_CPY:
		if reg, ok := ins.B.Register(); ok {
			m.Register.Set(reg, ins.A.Value(m.Register))
		}
	case OP_INC:
		if reg, ok := ins.A.Register(); ok {
			m.Register.Set(reg, m.Register.Get(reg)+1)
		}
	case OP_DEC:
		if reg, ok := ins.A.Register(); ok {
			m.Register.Set(reg, m.Register.Get(reg)-1)
		}
	case OP_JNZ:
		if ins.A.Value(m.Register) != 0 {
			next_ip = m.Ip + ins.B.Value(m.Register)
		}
	case OP_TGL:
		target := m.Ip + ins.A.Value(m.Register)
		if target >= 0 && target < len(m.Memory) {
			m.Memory[target] = Toggled(m.Memory[target])
			if m.Verbose {
				log.Printf("%03d: toggled to %v", target, m.Memory[target])
			}
		}
	case OP_OUT:
		m.Output = append(m.Output, ins.A.Value(m.Register))
	default:
		panic(ErrOpcode(ins))
	}

	m.Ip = next_ip
	m.Ticks++
}

// Step executes the next instruction. It returns false, without executing
// anything, once the instruction pointer has left the program.
func (m *Machine) Step() bool {
	ins, ok := m.Fetch()
	if !ok {
		return false
	}

	m.Execute(ins)
	return true
}

// Run steps until the machine halts or policy is satisfied. A nil policy
// runs until halt.
func (m *Machine) Run(policy Policy) Stop {
	if policy == nil {
		policy = UntilHalt()
	}

	for m.Step() {
		if policy.Done(m) {
			return STOP_SATISFIED
		}
	}

	if m.Verbose {
		log.Printf("vm: halted at %d after %d ticks", m.Ip, m.Ticks)
	}

	return STOP_HALTED
}

// String returns the current machine state.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("%6s: %d\n", "ip", m.Ip)
	if ins, ok := m.Fetch(); ok {
		text += fmt.Sprintf("%6s: %v\n", "next", ins)
	} else {
		text += fmt.Sprintf("%6s: ---\n", "next")
	}
	for reg, value := range m.Register.All() {
		text += fmt.Sprintf("%6v: %d\n", reg, value)
	}
	text += fmt.Sprintf("%6s: %v\n", "output", m.Output)
	text += fmt.Sprintf("%6s: %d\n", "ticks", m.Ticks)

	return
}
