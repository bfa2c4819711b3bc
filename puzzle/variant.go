// Package puzzle runs register machine programs as puzzle variants: a seed
// register file, a stop policy, and the value that answers the puzzle.
package puzzle

import (
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"

	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/internal"
	"github.com/ezrec/regvm/vm"
)

//go:embed variants.ini
var builtinVariants string

// Variant describes one way to run a program.
type Variant struct {
	Name     string
	Seed     vm.Registers // Registers set before the run.
	Answer   vm.Register  // Register reported after the run, if any.
	Outputs  int          // If non-zero, stop after this many outputs.
	MaxTicks int          // If non-zero, fail runs longer than this.
	Search   *Search      // If set, search for a seed instead.
}

// Variants is a set of variants by name.
type Variants map[string]Variant

// Builtin returns the variants of the original puzzles.
func Builtin() Variants {
	vars, err := LoadVariants(strings.NewReader(builtinVariants))
	if err != nil {
		panic(err)
	}
	return vars
}

// Merge adds other to vars, replacing variants with the same name.
func (vars Variants) Merge(other Variants) {
	for name, v := range other {
		vars[name] = v
	}
}

// Names returns the variant names, ordered by day then part.
func (vars Variants) Names() (names []string) {
	for name := range vars {
		names = append(names, name)
	}
	slices.SortFunc(names, compareNames)
	return
}

// compareNames orders "day9.1" before "day12.1".
func compareNames(a, b string) int {
	na, sa := splitName(a)
	nb, sb := splitName(b)
	if na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	return strings.Compare(sa, sb)
}

// splitName splits the leading day number from a variant name.
func splitName(name string) (int, string) {
	rest := strings.TrimPrefix(name, "day")
	i := 0
	for ; i < len(rest); i++ {
		c := rest[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(rest[:i])
	if err != nil {
		return -1, name
	}
	return n, rest[i:]
}

// Lookup returns the named variant.
func (vars Variants) Lookup(name string) (v Variant, err error) {
	v, ok := vars[name]
	if !ok {
		err = &ErrVariant{Name: name, Err: ErrVariantUnknown}
	}
	return
}

// LoadVariants parses INI formatted variant sections.
func LoadVariants(input io.Reader) (vars Variants, err error) {
	file, err := ini.Load(input)
	if err != nil {
		return
	}

	vars = Variants{}
	for name, section := range file {
		if len(name) == 0 {
			continue
		}
		var v Variant
		v, err = parseVariant(name, section)
		if err != nil {
			vars = nil
			return
		}
		vars[name] = v
	}

	return
}

// parseVariant decodes one INI section.
func parseVariant(name string, section ini.Section) (v Variant, err error) {
	v = Variant{Name: name, Seed: vm.Registers{}}

	var search Search
	searching := false

	// Sorted for a deterministic first error.
	keys := make([]string, 0, len(section))
	for key := range section {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := section[key]
		var kerr error
		switch key {
		case "seed":
			v.Seed, kerr = vm.ParseRegisters(value)
		case "answer":
			v.Answer, kerr = parseRegister(value)
		case "outputs":
			v.Outputs, kerr = parseCount(value)
		case "max_ticks":
			v.MaxTicks, kerr = parseCount(value)
		case "search":
			searching = true
			search.Register, kerr = parseRegister(value)
		case "pattern":
			search.Pattern, kerr = parseInts(value)
		case "samples":
			search.Samples, kerr = parseCount(value)
		case "start":
			search.Start, kerr = strconv.Atoi(value)
			if kerr != nil {
				kerr = vm.ErrParseNumber(value)
			}
		case "limit":
			search.Limit, kerr = parseCount(value)
		default:
			kerr = ErrKeyUnknown
		}
		if kerr != nil {
			err = &ErrVariant{Name: name, Key: key, Err: kerr}
			return
		}
	}

	if searching {
		search.MaxTicks = v.MaxTicks
		err = search.Validate()
		if err != nil {
			err = &ErrVariant{Name: name, Key: "search", Err: err}
			return
		}
		v.Search = &search
	} else if v.Answer == 0 && v.Outputs == 0 {
		v.Answer = 'a'
	}

	return
}

func parseRegister(value string) (reg vm.Register, err error) {
	reg, ok := vm.ParseRegister(value)
	if !ok {
		err = vm.ErrRegisterInvalid
	}
	return
}

func parseCount(value string) (n int, err error) {
	n, err = strconv.Atoi(value)
	if err != nil || n < 0 {
		err = vm.ErrParseNumber(value)
	}
	return
}

func parseInts(value string) (vals []int, err error) {
	for _, word := range strings.Split(value, ",") {
		word = strings.TrimSpace(word)
		n, perr := strconv.Atoi(word)
		if perr != nil {
			err = vm.ErrParseNumber(word)
			return
		}
		vals = append(vals, n)
	}
	return
}

// Answer is the result of solving a variant.
type Answer struct {
	Value      int          // Answer register or found seed.
	Output     []int        // Collected output.
	Registers  vm.Registers // Final registers.
	Ticks      int          // Executed instructions.
	OutputOnly bool         // The output is the answer.
}

func (ans Answer) String() string {
	if ans.OutputOnly {
		words := make([]string, len(ans.Output))
		for n, value := range ans.Output {
			words[n] = strconv.Itoa(value)
		}
		return strings.Join(words, ",")
	}
	return fmt.Sprint(ans.Value)
}

// Solve runs the emulator's program as the variant. Overrides are applied
// on top of the variant's seed.
func Solve(emu *emulator.Emulator, v Variant, overrides vm.Registers) (ans Answer, err error) {
	seed := vm.Registers{}
	seed.Load(internal.IterSeq2Concat(v.Seed.All(), overrides.All()))

	if v.Search != nil {
		search := *v.Search
		search.Verbose = emu.Verbose
		ans.Value, err = search.Run(emu.Program, seed)
		return
	}

	emu.MaxTicks = v.MaxTicks
	err = emu.Reset(seed)
	if err != nil {
		return
	}

	policy := vm.UntilHalt()
	if v.Outputs > 0 {
		policy = vm.UntilOutput(v.Outputs)
	}

	_, err = emu.Run(policy)
	if err != nil {
		return
	}

	ans.Output = emu.Machine.Output
	ans.Registers = emu.Machine.Register
	ans.Ticks = emu.Machine.Ticks
	if v.Answer != 0 {
		ans.Value = emu.Machine.Register.Get(v.Answer)
	} else {
		ans.OutputOnly = true
	}

	return
}
