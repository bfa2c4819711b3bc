// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// link is an operand waiting for a label address.
type link struct {
	index  int    // Instruction index.
	second bool   // Operand B, else operand A.
	label  string // Label to resolve.
	lineNo int
	line   string
}

// Assembler is a single pass assembler for register machine programs.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string
	Label     map[string]int    // Map of labels to instruction indexes.
	Equate    map[string]string // Map of equates.

	code   []Instruction
	lineNo []int
	links  []link
}

// Predefine defines an equate that is visible to the next Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reLabel      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]+$`)
)

// isLabel reports whether word can name a label. Single letters are
// always registers.
func isLabel(word string) bool {
	return reLabel.MatchString(word)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Non-integer equates may be registers or labels.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands a single line into words, handling expressions,
// equates and labels.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return strconv.Itoa(value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if !isLabel(label) {
			err = ErrLabelInvalid
			return
		}
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.code)
		words = words[1:]
	}

	return
}

// parseWords decodes a line's words into an instruction, deferring label
// operands of jnz and tgl until all labels are known.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	if len(words) == 0 {
		return
	}

	var pending *link
	if len(words) == 3 && words[0] == OP_JNZ.String() && isLabel(words[2]) {
		pending = &link{second: true, label: words[2]}
		words = []string{words[0], words[1], "0"}
	} else if len(words) == 2 && words[0] == OP_TGL.String() && isLabel(words[1]) {
		pending = &link{label: words[1]}
		words = []string{words[0], "0"}
	}

	ins, err := ParseInstruction(words)
	if err != nil {
		return
	}

	if pending != nil {
		pending.index = len(asm.code)
		pending.lineNo = lineno
		pending.line = line
		asm.links = append(asm.links, *pending)
	}

	asm.code = append(asm.code, ins)
	asm.lineNo = append(asm.lineNo, lineno)

	return
}

// Parse parses an input stream into a Program. Any error aborts the whole
// parse; no partial program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			var syn *ErrSyntax
			if !errors.As(err, &syn) {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}
	asm.code = nil
	asm.lineNo = nil
	asm.links = nil

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels, relative to the referencing instruction.
	for _, lk := range asm.links {
		target, ok := asm.Label[lk.label]
		if !ok {
			err = &ErrSyntax{LineNo: lk.lineNo, Line: lk.line, Err: ErrLabelMissing(lk.label)}
			return
		}
		offset := Literal(target - lk.index)
		if lk.second {
			asm.code[lk.index].B = offset
		} else {
			asm.code[lk.index].A = offset
		}
		if asm.Verbose {
			log.Printf("%v: linked %v to %v", lk.lineNo, lk.label, offset)
		}
	}

	prog = &Program{
		Code:   asm.code,
		LineNo: asm.lineNo,
	}

	return
}
