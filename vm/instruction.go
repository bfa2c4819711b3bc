package vm

import (
	"strings"
)

// Instruction is a single decoded instruction. B is only meaningful for
// two operand operations.
type Instruction struct {
	Op Op
	A  Arg
	B  Arg
}

// Cpy copies src into dst, if dst is a register.
func Cpy(src, dst Arg) Instruction {
	return Instruction{Op: OP_CPY, A: src, B: dst}
}

// Inc increments reg, if it is a register.
func Inc(reg Arg) Instruction {
	return Instruction{Op: OP_INC, A: reg}
}

// Dec decrements reg, if it is a register.
func Dec(reg Arg) Instruction {
	return Instruction{Op: OP_DEC, A: reg}
}

// Jnz jumps by offset when cond is non-zero.
func Jnz(cond, offset Arg) Instruction {
	return Instruction{Op: OP_JNZ, A: cond, B: offset}
}

// Tgl toggles the instruction target away from itself.
func Tgl(target Arg) Instruction {
	return Instruction{Op: OP_TGL, A: target}
}

// Out appends value to the output.
func Out(value Arg) Instruction {
	return Instruction{Op: OP_OUT, A: value}
}

// Args returns the operands in source order.
func (ins Instruction) Args() []Arg {
	if ins.Op.Arity() == 2 {
		return []Arg{ins.A, ins.B}
	}
	return []Arg{ins.A}
}

// String returns the assembly language form of the instruction.
func (ins Instruction) String() string {
	words := []string{ins.Op.String()}
	for _, arg := range ins.Args() {
		words = append(words, arg.String())
	}
	return strings.Join(words, " ")
}

// ParseInstruction decodes whitespace separated words into an instruction.
func ParseInstruction(words []string) (ins Instruction, err error) {
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	words = words[1:]
	arity := op.Arity()
	if len(words) < arity {
		err = ErrOpcodeValueMissing
		return
	}
	if len(words) > arity {
		err = ErrOpcodeExtraArgs
		return
	}

	args := [2]Arg{}
	for n, word := range words {
		args[n], err = ParseArg(word)
		if err != nil {
			return
		}
	}

	ins = Instruction{Op: op, A: args[0], B: args[1]}
	return
}
