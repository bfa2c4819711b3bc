package puzzle_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/puzzle"
	"github.com/ezrec/regvm/vm"
)

var _ = Describe("Variants", func() {
	Describe("Builtin", func() {
		It("lists the puzzle parts in day order", func() {
			Expect(puzzle.Builtin().Names()).To(Equal([]string{
				"day12.1", "day12.2", "day23.1", "day23.2", "day25.1",
			}))
		})

		It("seeds each part", func() {
			vars := puzzle.Builtin()
			Expect(vars["day12.1"].Seed).To(BeEmpty())
			Expect(vars["day12.2"].Seed).To(Equal(vm.Registers{'c': 1}))
			Expect(vars["day23.1"].Seed).To(Equal(vm.Registers{'a': 7}))
			Expect(vars["day23.2"].Seed).To(Equal(vm.Registers{'a': 12}))
			Expect(vars["day23.2"].Answer).To(Equal(vm.Register('a')))
		})

		It("searches for the clock signal", func() {
			search := puzzle.Builtin()["day25.1"].Search
			Expect(search).NotTo(BeNil())
			Expect(search.Register).To(Equal(vm.Register('a')))
			Expect(search.Pattern).To(Equal([]int{0, 1}))
			Expect(search.Samples).To(Equal(100))
			Expect(search.MaxTicks).To(Equal(10000000))
		})
	})

	Describe("Lookup", func() {
		It("finds known variants", func() {
			v, err := puzzle.Builtin().Lookup("day23.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Name).To(Equal("day23.1"))
		})

		It("rejects unknown variants", func() {
			_, err := puzzle.Builtin().Lookup("day99.9")
			Expect(err).To(MatchError(puzzle.ErrVariantUnknown))
		})
	})

	Describe("LoadVariants", func() {
		It("defaults the answer register to a", func() {
			vars, err := puzzle.LoadVariants(strings.NewReader("[plain]\nseed = b=2, c=3\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(vars["plain"].Answer).To(Equal(vm.Register('a')))
			Expect(vars["plain"].Seed).To(Equal(vm.Registers{'b': 2, 'c': 3}))
		})

		It("leaves output variants without an answer register", func() {
			vars, err := puzzle.LoadVariants(strings.NewReader("[signal]\noutputs = 4\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(vars["signal"].Answer).To(BeZero())
			Expect(vars["signal"].Outputs).To(Equal(4))
		})

		It("merges over the builtin set", func() {
			vars := puzzle.Builtin()
			extra, err := puzzle.LoadVariants(strings.NewReader("[day23.1]\nseed = a=6\n[day9.1]\nanswer = b\n"))
			Expect(err).NotTo(HaveOccurred())
			vars.Merge(extra)
			Expect(vars["day23.1"].Seed).To(Equal(vm.Registers{'a': 6}))
			Expect(vars.Names()[0]).To(Equal("day9.1"))
		})

		DescribeTable("rejects malformed settings",
			func(text string, key string, target error) {
				vars, err := puzzle.LoadVariants(strings.NewReader(text))
				Expect(vars).To(BeNil())
				var verr *puzzle.ErrVariant
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.Name).To(Equal("bad"))
				Expect(verr.Key).To(Equal(key))
				Expect(err).To(MatchError(target))
			},
			Entry("unknown key", "[bad]\ncolour = red\n", "colour", puzzle.ErrKeyUnknown),
			Entry("answer register", "[bad]\nanswer = 1\n", "answer", vm.ErrRegisterInvalid),
			Entry("seed register", "[bad]\nseed = ab=1\n", "seed", vm.ErrRegisterInvalid),
			Entry("negative count", "[bad]\noutputs = -1\n", "outputs", vm.ErrParseNumber("-1")),
			Entry("pattern number", "[bad]\nsearch = a\npattern = 0,x\n", "pattern", vm.ErrParseNumber("x")),
			Entry("incomplete search", "[bad]\nsearch = a\n", "search", puzzle.ErrSearchInvalid),
		)
	})

	Describe("Solve", func() {
		var emu *emulator.Emulator

		BeforeEach(func() {
			emu = emulator.NewEmulator()
		})

		It("computes the fibonacci register", func() {
			emu.Program = assemble(fibonacci...)
			vars := puzzle.Builtin()

			ans, err := puzzle.Solve(emu, vars["day12.1"], nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(ans.Value).To(Equal(21))
			Expect(ans.String()).To(Equal("21"))
			Expect(ans.Ticks).To(BeNumerically(">", 0))

			ans, err = puzzle.Solve(emu, vars["day12.2"], nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(ans.Value).To(Equal(610))
		})

		It("applies register overrides over the seed", func() {
			emu.Program = assemble(fibonacci...)

			ans, err := puzzle.Solve(emu, puzzle.Builtin()["day12.1"], vm.Registers{'c': 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(ans.Value).To(Equal(610))
		})

		It("survives self modifying programs", func() {
			emu.Program = assemble(factorial...)

			ans, err := puzzle.Solve(emu, puzzle.Builtin()["day23.1"], nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(ans.Value).To(Equal(5040 + 73*71))

			// The loaded program is untouched by toggles.
			Expect(emu.Program.Code[18]).To(Equal(vm.Jnz(vm.Literal(1), vm.Ref('c'))))
		})

		It("collects output for output variants", func() {
			emu.Program = assemble(clock...)
			v := puzzle.Variant{Name: "signal", Seed: vm.Registers{'a': 158}, Outputs: 6}

			ans, err := puzzle.Solve(emu, v, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(ans.OutputOnly).To(BeTrue())
			Expect(ans.String()).To(Equal("0,1,0,1,0,1"))
		})

		It("fails runs over the tick budget", func() {
			emu.Program = assemble(fibonacci...)
			v := puzzle.Builtin()["day12.1"]
			v.MaxTicks = 10

			_, err := puzzle.Solve(emu, v, nil)
			Expect(err).To(MatchError(emulator.ErrTickLimit))
		})

		It("rejects an empty program", func() {
			_, err := puzzle.Solve(emu, puzzle.Builtin()["day12.1"], nil)
			Expect(err).To(MatchError(emulator.ErrProgramEmpty))
		})
	})
})
