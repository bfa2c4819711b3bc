package puzzle_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/regvm/vm"
)

func TestPuzzle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Puzzle Suite")
}

func assemble(lines ...string) *vm.Program {
	asm := &vm.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	Expect(err).NotTo(HaveOccurred())
	return prog
}

var fibonacci = []string{
	"cpy 1 a",
	"cpy 1 b",
	"cpy 6 d",
	"jnz c 2",
	"jnz 1 5",
	"cpy 7 c",
	"inc d",
	"dec c",
	"jnz c -2",
	"cpy a c",
	"inc a",
	"dec b",
	"jnz b -2",
	"cpy c b",
	"dec d",
	"jnz d -6",
}

var factorial = []string{
	"cpy a b",
	"dec b",
	"cpy a d",
	"cpy 0 a",
	"cpy b c",
	"inc a",
	"dec c",
	"jnz c -2",
	"dec d",
	"jnz d -5",
	"dec b",
	"cpy b c",
	"cpy c d",
	"dec d",
	"inc c",
	"jnz d -2",
	"tgl c",
	"cpy -16 c",
	"jnz 1 c",
	"cpy 73 c",
	"jnz 71 d",
	"inc a",
	"inc d",
	"jnz d -2",
	"inc c",
	"jnz c -5",
}

var clock = []string{
	"cpy a d",
	"cpy 4 c",
	"cpy 643 b",
	"inc d",
	"dec b",
	"jnz b -2",
	"dec c",
	"jnz c -5",
	"cpy d a",
	"jnz 0 0",
	"cpy a b",
	"cpy 0 a",
	"cpy 2 c",
	"jnz b 2",
	"jnz 1 6",
	"dec b",
	"dec c",
	"jnz c -4",
	"inc a",
	"jnz 1 -7",
	"cpy 2 b",
	"jnz c 2",
	"jnz 1 4",
	"dec b",
	"dec c",
	"jnz 1 -4",
	"jnz 0 0",
	"out b",
	"jnz a -19",
	"jnz 1 -21",
}
