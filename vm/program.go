package vm

import (
	"iter"
	"slices"
	"strings"
)

// Program is a decoded instruction listing with the source line of each
// instruction.
type Program struct {
	Code   []Instruction
	LineNo []int // Source line per instruction; nil when built by hand.
}

// NewProgram builds a program from hand-assembled instructions, numbering
// them as consecutive lines.
func NewProgram(code ...Instruction) (prog *Program) {
	prog = &Program{
		Code:   slices.Clone(code),
		LineNo: make([]int, len(code)),
	}
	for n := range prog.LineNo {
		prog.LineNo[n] = n + 1
	}

	return
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Code)
}

// LineOf returns the source line of the instruction at ip, or 0 when ip is
// outside the program.
func (prog *Program) LineOf(ip int) int {
	if ip < 0 || ip >= len(prog.LineNo) {
		return 0
	}
	return prog.LineNo[ip]
}

// Listing iterates the instructions by index.
func (prog *Program) Listing() iter.Seq2[int, Instruction] {
	return slices.All(prog.Code)
}

// String renders the program one instruction per line.
func (prog *Program) String() string {
	var text strings.Builder
	for _, ins := range prog.Listing() {
		text.WriteString(ins.String())
		text.WriteByte('\n')
	}
	return text.String()
}
