package puzzle

import (
	"log"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/ezrec/regvm/internal"
	"github.com/ezrec/regvm/vm"
)

// DEFAULT_SEARCH_LIMIT bounds searches that do not set a limit.
const DEFAULT_SEARCH_LIMIT = 1 << 20

// Search looks for the first seed value of a register that makes a program
// output a repeating pattern.
type Search struct {
	Verbose bool // If set, logs each attempt.

	Register vm.Register // Register seeded with each candidate.
	Pattern  []int       // Expected output, repeated.
	Samples  int         // Output values checked per attempt.
	Start    int         // First candidate.
	Limit    int         // Number of candidates; DEFAULT_SEARCH_LIMIT if zero.
	MaxTicks int         // If non-zero, the per attempt instruction budget.
}

// Validate checks that the search is well formed.
func (s *Search) Validate() error {
	if s.Register == 0 || len(s.Pattern) == 0 || s.Samples <= 0 {
		return ErrSearchInvalid
	}
	return nil
}

// Expected returns the output an attempt must produce.
func (s *Search) Expected() []int {
	return slices.Collect(internal.Take(internal.Cycle(s.Pattern...), s.Samples))
}

// Run tries seeds in order and returns the first that matches.
func (s *Search) Run(prog *vm.Program, base vm.Registers) (seed int, err error) {
	err = s.Validate()
	if err != nil {
		return
	}

	limit := s.Limit
	if limit == 0 {
		limit = DEFAULT_SEARCH_LIMIT
	}

	expected := s.Expected()

	for seed = s.Start; seed < s.Start+limit; seed++ {
		regs := base.Clone()
		regs.Set(s.Register, seed)
		ok, ticks := s.attempt(prog, regs, expected)
		if s.Verbose {
			log.Printf("search: %v=%d %v after %s ticks", s.Register, seed, ok, humanize.Comma(int64(ticks)))
		}
		if ok {
			return
		}
	}

	err = ErrSearchExhausted
	return
}

// attempt runs one candidate, stopping at the first wrong output value.
func (s *Search) attempt(prog *vm.Program, regs vm.Registers, expected []int) (ok bool, ticks int) {
	mismatch := vm.PolicyFunc(func(m *vm.Machine) bool {
		n := len(m.Output)
		return n > 0 && m.Output[n-1] != expected[n-1]
	})

	var policy vm.Policy = vm.AnyOf(vm.UntilOutput(len(expected)), mismatch)
	if s.MaxTicks > 0 {
		policy = vm.StepLimit(s.MaxTicks, policy)
	}

	m := vm.NewMachine(prog, regs)
	m.Run(policy)

	return slices.Equal(m.Output, expected), m.Ticks
}
