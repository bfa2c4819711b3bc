package vm

import (
	"strconv"
)

// Arg is an instruction operand: either a literal or a register reference.
type Arg struct {
	reg   Register // Zero for a literal.
	value int
}

// Literal makes a literal operand.
func Literal(value int) Arg {
	return Arg{value: value}
}

// Ref makes a register operand.
func Ref(reg Register) Arg {
	return Arg{reg: reg}
}

// ParseArg parses an integer literal or a single letter register name.
func ParseArg(word string) (arg Arg, err error) {
	if value, perr := strconv.Atoi(word); perr == nil {
		arg = Literal(value)
		return
	}

	reg, ok := ParseRegister(word)
	if !ok {
		err = ErrParseValue(word)
		return
	}

	arg = Ref(reg)
	return
}

// Register returns the register named by the operand, if any.
func (arg Arg) Register() (reg Register, ok bool) {
	return arg.reg, arg.reg != 0
}

// Value resolves the operand against a register file.
func (arg Arg) Value(regs Registers) int {
	if arg.reg != 0 {
		return regs.Get(arg.reg)
	}
	return arg.value
}

func (arg Arg) String() string {
	if arg.reg != 0 {
		return arg.reg.String()
	}
	return strconv.Itoa(arg.value)
}
