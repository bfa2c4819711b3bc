// Package vm implements the register machine and its assembler.
//
// The machine holds a mutable program memory of instructions, a register
// file of signed integers addressed by single lowercase letters (unset
// registers read as zero), an instruction pointer, and an append-only output
// sequence. The instruction set is cpy, inc, dec, jnz, tgl and out; tgl
// rewrites other instructions in place, so the program memory is owned by
// the machine and mutated by index.
//
// Execution halts normally when the instruction pointer leaves the program,
// or earlier when the caller's Policy is satisfied.
//
// The assembler reads one instruction per line, and additionally supports
// comments, equates, labels, and compile-time $(...) expressions.
package vm
