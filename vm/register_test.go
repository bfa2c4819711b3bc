package vm

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{}
	assert.Equal(0, regs.Get('a'))
	assert.Empty(regs)

	regs.Set('c', 1)
	regs.Set('a', -7)
	assert.Equal("a=-7 c=1", regs.String())

	clone := regs.Clone()
	clone.Set('a', 0)
	assert.Equal(-7, regs.Get('a'))

	var empty Registers
	assert.NotNil(empty.Clone())

	regs.Load(maps.All(map[Register]int{'c': 5, 'd': 2}))
	assert.Equal(Registers{'a': -7, 'c': 5, 'd': 2}, regs)
}

func TestParseRegisters(t *testing.T) {
	assert := assert.New(t)

	regs, err := ParseRegisters("a=7, c = 1")
	assert.NoError(err)
	assert.Equal(Registers{'a': 7, 'c': 1}, regs)

	regs, err = ParseRegisters("")
	assert.NoError(err)
	assert.Equal(Registers{}, regs)

	_, err = ParseRegisters("a7")
	assert.ErrorIs(err, ErrRegisterInvalid)

	_, err = ParseRegisters("A=7")
	assert.ErrorIs(err, ErrRegisterInvalid)

	_, err = ParseRegisters("a=x")
	assert.ErrorIs(err, ErrParseNumber("x"))

	reg, ok := ParseRegister("z")
	assert.True(ok)
	assert.Equal("z", reg.String())
}
