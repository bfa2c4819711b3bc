package vm

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Register names a register slot, 'a' through 'z'.
type Register byte

// ParseRegister parses a single letter register name.
func ParseRegister(word string) (reg Register, ok bool) {
	if len(word) != 1 || word[0] < 'a' || word[0] > 'z' {
		return
	}

	return Register(word[0]), true
}

func (reg Register) String() string {
	return string(rune(reg))
}

// Registers is the register file. Registers never written read as zero.
type Registers map[Register]int

// Get returns the value of a register, or zero if it was never set.
func (regs Registers) Get(reg Register) int {
	return regs[reg]
}

// Set inserts or updates a register.
func (regs Registers) Set(reg Register, value int) {
	regs[reg] = value
}

// Clone returns a non-nil copy of the register file.
func (regs Registers) Clone() Registers {
	out := make(Registers, len(regs))
	maps.Copy(out, regs)
	return out
}

// Load sets every register yielded by seq, in order.
func (regs Registers) Load(seq iter.Seq2[Register, int]) {
	for reg, value := range seq {
		regs[reg] = value
	}
}

// All iterates the registers in name order.
func (regs Registers) All() iter.Seq2[Register, int] {
	return func(yield func(Register, int) bool) {
		for _, reg := range slices.Sorted(maps.Keys(regs)) {
			if !yield(reg, regs[reg]) {
				return
			}
		}
	}
}

// String formats the register file as "a=1 b=2".
func (regs Registers) String() string {
	var parts []string
	for reg, value := range regs.All() {
		parts = append(parts, fmt.Sprintf("%v=%d", reg, value))
	}
	return strings.Join(parts, " ")
}

// ParseRegisters parses a comma separated "a=7,c=1" list. Empty text is an
// empty register file.
func ParseRegisters(text string) (regs Registers, err error) {
	regs = Registers{}

	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		name, value, found := strings.Cut(item, "=")
		if !found {
			err = ErrRegisterInvalid
			return
		}
		reg, ok := ParseRegister(strings.TrimSpace(name))
		if !ok {
			err = ErrRegisterInvalid
			return
		}
		value = strings.TrimSpace(value)
		n, perr := strconv.Atoi(value)
		if perr != nil {
			err = ErrParseNumber(value)
			return
		}
		regs[reg] = n
	}

	return
}
