package puzzle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/puzzle"
	"github.com/ezrec/regvm/vm"
)

var _ = Describe("Search", func() {
	var search puzzle.Search

	BeforeEach(func() {
		search = puzzle.Search{
			Register: 'a',
			Pattern:  []int{0, 1},
			Samples:  20,
			MaxTicks: 1000000,
		}
	})

	It("repeats the pattern over the samples", func() {
		search.Samples = 5
		Expect(search.Expected()).To(Equal([]int{0, 1, 0, 1, 0}))
	})

	It("requires a register, pattern and samples", func() {
		Expect(search.Validate()).To(Succeed())
		Expect((&puzzle.Search{Pattern: []int{0}, Samples: 1}).Validate()).To(MatchError(puzzle.ErrSearchInvalid))
		Expect((&puzzle.Search{Register: 'a', Samples: 1}).Validate()).To(MatchError(puzzle.ErrSearchInvalid))
		Expect((&puzzle.Search{Register: 'a', Pattern: []int{0}}).Validate()).To(MatchError(puzzle.ErrSearchInvalid))
	})

	It("finds the smallest clock seed", func() {
		seed, err := search.Run(assemble(clock...), vm.Registers{})
		Expect(err).NotTo(HaveOccurred())
		Expect(seed).To(Equal(158))
	})

	It("starts from the first candidate", func() {
		search.Start = 158
		search.Limit = 1
		seed, err := search.Run(assemble(clock...), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(seed).To(Equal(158))
	})

	It("gives up after the limit", func() {
		search.Limit = 10
		_, err := search.Run(assemble(clock...), nil)
		Expect(err).To(MatchError(puzzle.ErrSearchExhausted))
	})

	It("rejects programs that halt early", func() {
		search.Limit = 3
		_, err := search.Run(assemble("out 0", "out 1"), nil)
		Expect(err).To(MatchError(puzzle.ErrSearchExhausted))
	})

	It("stops silent programs at the tick budget", func() {
		search.Limit = 2
		search.MaxTicks = 100
		_, err := search.Run(assemble("jnz 1 0"), nil)
		Expect(err).To(MatchError(puzzle.ErrSearchExhausted))
	})

	It("is reachable through the builtin variant", func() {
		emu := emulator.NewEmulator()
		emu.Program = assemble(clock...)

		ans, err := puzzle.Solve(emu, puzzle.Builtin()["day25.1"], nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(ans.Value).To(Equal(158))
		Expect(ans.String()).To(Equal("158"))
	})
})
