// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/tebeka/atexit"

	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/internal"
	"github.com/ezrec/regvm/monitor"
	"github.com/ezrec/regvm/puzzle"
	"github.com/ezrec/regvm/vm"
)

// predefines collects repeated -D NAME=VALUE flags.
type predefines map[string]string

func (pd predefines) String() string {
	var words []string
	for name, value := range pd {
		words = append(words, name+"="+value)
	}
	return strings.Join(words, ",")
}

func (pd predefines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return vm.ErrEquateSyntax
	}
	pd[name] = value
	return nil
}

func main() {
	var compile string
	var variant string
	var config string
	var registers string
	var outputs int
	var output string
	var debug bool
	var verbose bool
	var profile string
	defines := predefines{}

	flag.StringVar(&compile, "c", "", "program file to run")
	flag.StringVar(&variant, "p", "day12.1", "puzzle variant")
	flag.StringVar(&config, "config", "", ".ini file of extra variants")
	flag.StringVar(&registers, "r", "", "register overrides, as a=1,b=2")
	flag.IntVar(&outputs, "n", 0, "stop after this many outputs")
	flag.StringVar(&output, "o", "", "Tape output, '-' for stdout")
	flag.Var(defines, "D", "predefine an equate, as NAME=VALUE")
	flag.BoolVar(&debug, "d", false, "interactive monitor")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&profile, "fgprof", "", "write a wall clock profile to this file")

	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c program file is required", os.Args[0])
	}

	if len(profile) != 0 {
		ouf, err := os.Create(profile)
		if err != nil {
			log.Fatalf("%v: %v", profile, err)
		}
		stop := fgprof.Start(ouf, fgprof.FormatPprof)
		atexit.Register(func() {
			err := stop()
			if err != nil {
				log.Printf("%v: %v", profile, err)
			}
			ouf.Close()
		})
	}

	inf, err := os.Open(compile)
	if err != nil {
		atexit.Fatalf("%v: %v", compile, err)
	}

	asm := &vm.Assembler{Verbose: verbose}
	for name, value := range defines {
		asm.Predefine(name, value)
	}
	prog, err := asm.Parse(inf)
	inf.Close()
	if err != nil {
		atexit.Fatalf("%v: %v", compile, err)
	}

	vars := puzzle.Builtin()
	if len(config) != 0 {
		cf, err := os.Open(config)
		if err != nil {
			atexit.Fatalf("%v: %v", config, err)
		}
		extra, err := puzzle.LoadVariants(cf)
		cf.Close()
		if err != nil {
			atexit.Fatalf("%v: %v", config, err)
		}
		vars.Merge(extra)
	}

	v, err := vars.Lookup(variant)
	if err != nil {
		atexit.Fatalf("%v (have %v)", err, strings.Join(vars.Names(), ", "))
	}

	overrides, err := vm.ParseRegisters(registers)
	if err != nil {
		atexit.Fatalf("-r %v: %v", registers, err)
	}

	// The output becomes the answer.
	if outputs > 0 && v.Search == nil {
		v.Outputs = outputs
		v.Answer = 0
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	switch output {
	case "":
	case "-":
		emu.Tape.Output = os.Stdout
	default:
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		emu.Tape.Output = ouf
	}

	if debug {
		runMonitor(emu, v, overrides)
		atexit.Exit(0)
	}

	ans, err := puzzle.Solve(emu, v, overrides)
	if err != nil {
		atexit.Fatalf("%v: %v: %v", compile, v.Name, err)
	}

	fmt.Println(ans)

	if verbose {
		log.Printf("%v: %v after %s ticks, registers %v", v.Name, ans, humanize.Comma(int64(ans.Ticks)), ans.Registers)
	}

	atexit.Exit(0)
}

// runMonitor hands the emulator to the interactive monitor.
func runMonitor(emu *emulator.Emulator, v puzzle.Variant, overrides vm.Registers) {
	seed := vm.Registers{}
	seed.Load(internal.IterSeq2Concat(v.Seed.All(), overrides.All()))

	mon := monitor.NewMonitor(emu, os.Stdout)
	mon.Seed = seed
	if v.Outputs > 0 {
		mon.Policy = vm.UntilOutput(v.Outputs)
	}

	_, err := mon.Command("reset")
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "regvm> ",
	})
	if err != nil {
		atexit.Fatalf("%v", err)
	}
	defer rl.Close()

	err = mon.Run(rl)
	if err != nil {
		atexit.Fatalf("%v", err)
	}
}
