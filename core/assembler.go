// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

func init() {
	maps.Copy(sysEquate, _core_defines)
}

// Assembler is a single pass macro assembler for the uavr core.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to word addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word. Negative values carry
// through as Go integers; the operand encoders narrow them
// two's-complement.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	v64, err := strconv.ParseInt(word, 0, 17)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	if invert {
		value = ^value
	}

	return
}

// byteValue narrows a word to an 8-bit immediate. Negative values
// wrap two's-complement, so both -1 and ~0 encode as 0xff.
func (asm *Assembler) byteValue(word string) (value uint8, err error) {
	v, err := asm.valueOf(word)
	if err != nil {
		return
	}
	if v < -256 || v > 255 {
		err = ErrImmediateRange
		return
	}
	value = uint8(v)

	return
}

// wordValue narrows a word to a 16-bit value. Negative values wrap
// two's-complement.
func (asm *Assembler) wordValue(word string) (value uint16, err error) {
	v, err := asm.valueOf(word)
	if err != nil {
		return
	}
	if v < -65536 || v > 65535 {
		err = ErrImmediateRange
		return
	}
	value = uint16(v)

	return
}

// bitNumber parses a bit index 0..7.
func (asm *Assembler) bitNumber(word string) (b uint8, err error) {
	v, err := asm.valueOf(word)
	if err != nil {
		return
	}
	if v < 0 || v > 7 {
		err = ErrImmediateRange
		return
	}
	b = uint8(v)

	return
}

// register parses a general register name r0..r31.
func (asm *Assembler) register(word string) (sel uint8, err error) {
	if len(word) < 2 || (word[0] != 'r' && word[0] != 'R') {
		err = ErrRegisterInvalid
		return
	}
	n, aerr := strconv.Atoi(word[1:])
	if aerr != nil || n < 0 || n > 31 {
		err = ErrRegisterInvalid
		return
	}
	sel = uint8(n)

	return
}

// upperRegister parses a register name restricted to the upper bank
// r16..r31 reachable by the immediate operations.
func (asm *Assembler) upperRegister(word string) (sel uint8, err error) {
	sel, err = asm.register(word)
	if err != nil {
		return
	}
	if sel < 16 {
		err = ErrRegisterInvalid
	}

	return
}

// pointer parses a pointer operand: X, X+, -X, Y, Y+, -Y, Y+q, Z, Z+,
// -Z, Z+q. Only Y and Z take a displacement.
func (asm *Assembler) pointer(word string) (ptr uint8, mode AddrMode, q uint8, err error) {
	text := word
	if strings.HasPrefix(text, "-") {
		mode = MODE_PREDEC
		text = text[1:]
	}

	if len(text) == 0 {
		err = ErrPointerInvalid
		return
	}

	switch text[0] {
	case 'X', 'x':
		ptr = REG_X
	case 'Y', 'y':
		ptr = REG_Y
	case 'Z', 'z':
		ptr = REG_Z
	default:
		err = ErrPointerInvalid
		return
	}
	text = text[1:]

	if len(text) == 0 {
		return
	}

	if mode == MODE_PREDEC || text[0] != '+' {
		err = ErrPointerInvalid
		return
	}
	text = text[1:]

	if len(text) == 0 {
		mode = MODE_POSTINC
		return
	}

	// Y+q and Z+q displacements.
	if ptr == REG_X {
		err = ErrPointerInvalid
		return
	}
	mode = MODE_DISP
	v, err := asm.valueOf(text)
	if err != nil {
		return
	}
	if v < 0 || v > 63 {
		err = ErrImmediateRange
		return
	}
	q = uint8(v)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var valueInt int
		valueInt, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(valueInt)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
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

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	// Operand commas are decoration. This happens after the $()
	// evaluations so expression argument lists survive.
	line = strings.ReplaceAll(line, ",", " ")

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if len(words) > 0 && words[0] == ".equ" {
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
		words = words[:0]
		return
	}

	for n, word := range words {
		if len(word) == 0 {
			continue
		}

		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", fmt.Sprintf("%v_%v_", name, lineno))
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, macro.LineNo+n)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddr gets the next free word address.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Codes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		all_words := strings.Split(strings.ReplaceAll(line, ",", " "), " ")

		var words []string
		for _, single := range all_words {
			if len(single) > 0 {
				words = append(words, single)
			}
		}

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		if len(op.Codes) < 1 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", op.LinkLabel, op.LineNo, op.Words)
		}
		last := len(op.Codes) - 1
		// Relative offsets count from the word after the
		// instruction.
		delta := addr - (op.Addr + len(op.Codes))
		switch op.Reloc {
		case RELOC_ABS:
			op.Codes[last] = uint16(addr)
		case RELOC_REL12:
			if delta < -2048 || delta > 2047 {
				lineno, line = op.LineNo, strings.Join(op.Words, " ")
				err = ErrBranchRange
				return
			}
			op.Codes[last] |= uint16(delta) & 0x0fff
		case RELOC_REL7:
			if delta < -64 || delta > 63 {
				lineno, line = op.LineNo, strings.Join(op.Words, " ")
				err = ErrBranchRange
				return
			}
			op.Codes[last] |= (uint16(delta) & 0x7f) << 3
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// twoRegShape maps the two-register mnemonics.
var twoRegShape = map[string]Shape{
	"add":  SHAPE_ADD,
	"adc":  SHAPE_ADC,
	"sub":  SHAPE_SUB,
	"sbc":  SHAPE_SBC,
	"and":  SHAPE_AND,
	"or":   SHAPE_OR,
	"eor":  SHAPE_EOR,
	"mov":  SHAPE_MOV,
	"cp":   SHAPE_CP,
	"cpc":  SHAPE_CPC,
	"cpse": SHAPE_CPSE,
}

// immediateShape maps the register-immediate mnemonics.
var immediateShape = map[string]Shape{
	"cpi":  SHAPE_CPI,
	"sbci": SHAPE_SBCI,
	"subi": SHAPE_SUBI,
	"ori":  SHAPE_ORI,
	"andi": SHAPE_ANDI,
	"ldi":  SHAPE_LDI,
}

// unaryShape maps the one-register mnemonics.
var unaryShape = map[string]Shape{
	"com":  SHAPE_COM,
	"neg":  SHAPE_NEG,
	"swap": SHAPE_SWAP,
	"inc":  SHAPE_INC,
	"asr":  SHAPE_ASR,
	"lsr":  SHAPE_LSR,
	"ror":  SHAPE_ROR,
	"dec":  SHAPE_DEC,
}

// fixedShape maps the operand-free mnemonics.
var fixedShape = map[string]Shape{
	"nop":   SHAPE_NOP,
	"ijmp":  SHAPE_IJMP,
	"icall": SHAPE_ICALL,
	"ret":   SHAPE_RET,
	"reti":  SHAPE_RETI,
}

// bitShape maps the register bit mnemonics.
var bitShape = map[string]Shape{
	"bld":  SHAPE_BLD,
	"bst":  SHAPE_BST,
	"sbrc": SHAPE_SBRC,
	"sbrs": SHAPE_SBRS,
}

// selfShape maps the aliases that expand to a two-register operation
// on a single register.
var selfShape = map[string]string{
	"lsl": "add",
	"rol": "adc",
	"tst": "and",
	"clr": "eor",
}

// branchAlias maps the conditional branch aliases onto a status bit
// branch.
var branchAlias = map[string]struct {
	mnem string
	bit  uint8
}{
	"brcs": {"brbs", SREG_C},
	"brlo": {"brbs", SREG_C},
	"brcc": {"brbc", SREG_C},
	"brsh": {"brbc", SREG_C},
	"breq": {"brbs", SREG_Z},
	"brne": {"brbc", SREG_Z},
	"brmi": {"brbs", SREG_N},
	"brpl": {"brbc", SREG_N},
	"brvs": {"brbs", SREG_V},
	"brvc": {"brbc", SREG_V},
	"brlt": {"brbs", SREG_S},
	"brge": {"brbc", SREG_S},
	"brhs": {"brbs", SREG_H},
	"brhc": {"brbc", SREG_H},
	"brts": {"brbs", SREG_T},
	"brtc": {"brbc", SREG_T},
	"brie": {"brbs", SREG_I},
	"brid": {"brbc", SREG_I},
}

// flagAlias maps the status flag aliases onto bset and bclr.
var flagAlias = map[string]struct {
	mnem string
	bit  uint8
}{
	"sec": {"bset", SREG_C},
	"clc": {"bclr", SREG_C},
	"sez": {"bset", SREG_Z},
	"clz": {"bclr", SREG_Z},
	"sen": {"bset", SREG_N},
	"cln": {"bclr", SREG_N},
	"sev": {"bset", SREG_V},
	"clv": {"bclr", SREG_V},
	"ses": {"bset", SREG_S},
	"cls": {"bclr", SREG_S},
	"seh": {"bset", SREG_H},
	"clh": {"bclr", SREG_H},
	"set": {"bset", SREG_T},
	"clt": {"bclr", SREG_T},
	"sei": {"bset", SREG_I},
	"cli": {"bclr", SREG_I},
}

// need checks the operand count for a mnemonic.
func need(args []string, count int) (err error) {
	if len(args) < count {
		return ErrOperandMissing
	}
	if len(args) > count {
		return ErrOperandExtra
	}
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []uint16
	var label string
	var reloc Reloc

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Codes: codes, LinkLabel: label, Reloc: reloc}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	mnem := strings.ToLower(words[0])
	args := words[1:]

	// Alias substitutions
	switch {
	case selfShape[mnem] != "":
		// lsl Rd => add Rd Rd and friends
		if err = need(args, 1); err != nil {
			return
		}
		mnem = selfShape[mnem]
		args = []string{args[0], args[0]}
	case mnem == "ser":
		// ser Rd => ldi Rd 0xff
		mnem = "ldi"
		args = append(args, "0xff")
	case mnem == "cbr":
		// cbr Rd K => andi Rd ~K
		if err = need(args, 2); err != nil {
			return
		}
		mnem = "andi"
		args = []string{args[0], "~" + args[1]}
	case mnem == "sbr":
		// sbr Rd K => ori Rd K
		mnem = "ori"
	default:
		if alias, ok := branchAlias[mnem]; ok {
			// breq k => brbs 1 k and friends
			mnem = alias.mnem
			args = append([]string{fmt.Sprintf("%v", alias.bit)}, args...)
		} else if alias, ok := flagAlias[mnem]; ok {
			// sei => bset 7 and friends
			mnem = alias.mnem
			args = append([]string{fmt.Sprintf("%v", alias.bit)}, args...)
		}
	}

	switch {
	case mnem == ".org":
		if err = need(args, 1); err != nil {
			return
		}
		var addr uint16
		addr, err = asm.wordValue(args[0])
		if err != nil {
			return
		}
		if int(addr) < asm.currentAddr() {
			err = ErrOrgBackward
			return
		}
		asm.Opcode = append(asm.Opcode, Opcode{LineNo: lineno, Addr: int(addr), Words: initial_words})

	case mnem == ".dw":
		if len(args) < 1 {
			err = ErrOperandMissing
			return
		}
		for _, arg := range args {
			var value uint16
			value, err = asm.wordValue(arg)
			if err != nil {
				return
			}
			codes = append(codes, value)
		}

	case fixedShape[mnem] != SHAPE_ILLEGAL:
		if err = need(args, 0); err != nil {
			return
		}
		codes = append(codes, MakeFixed(fixedShape[mnem]))

	case mnem == "movw":
		if err = need(args, 2); err != nil {
			return
		}
		var d, r uint8
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if r, err = asm.register(args[1]); err != nil {
			return
		}
		if d%2 != 0 || r%2 != 0 {
			err = ErrRegisterPair
			return
		}
		codes = append(codes, MakeMovw(d, r))

	case twoRegShape[mnem] != SHAPE_ILLEGAL:
		if err = need(args, 2); err != nil {
			return
		}
		var d, r uint8
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if r, err = asm.register(args[1]); err != nil {
			return
		}
		codes = append(codes, MakeTwoReg(twoRegShape[mnem], d, r))

	case immediateShape[mnem] != SHAPE_ILLEGAL:
		if err = need(args, 2); err != nil {
			return
		}
		var d, k uint8
		if d, err = asm.upperRegister(args[0]); err != nil {
			return
		}
		if k, err = asm.byteValue(args[1]); err != nil {
			return
		}
		codes = append(codes, MakeImmediate(immediateShape[mnem], d, k))

	case unaryShape[mnem] != SHAPE_ILLEGAL:
		if err = need(args, 1); err != nil {
			return
		}
		var d uint8
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		codes = append(codes, MakeUnary(unaryShape[mnem], d))

	case mnem == "ld" || mnem == "ldd":
		if err = need(args, 2); err != nil {
			return
		}
		var d, q uint8
		var ptr uint8
		var mode AddrMode
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if ptr, mode, q, err = asm.pointer(args[1]); err != nil {
			return
		}
		if mnem == "ldd" && mode != MODE_DISP {
			err = ErrPointerInvalid
			return
		}
		codes = append(codes, MakeLoadStore(SHAPE_LD, d, ptr, mode, q))

	case mnem == "st" || mnem == "std":
		if err = need(args, 2); err != nil {
			return
		}
		var d, q uint8
		var ptr uint8
		var mode AddrMode
		if ptr, mode, q, err = asm.pointer(args[0]); err != nil {
			return
		}
		if d, err = asm.register(args[1]); err != nil {
			return
		}
		if mnem == "std" && mode != MODE_DISP {
			err = ErrPointerInvalid
			return
		}
		codes = append(codes, MakeLoadStore(SHAPE_ST, d, ptr, mode, q))

	case mnem == "lds":
		if err = need(args, 2); err != nil {
			return
		}
		var d uint8
		var addr uint16
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if addr, err = asm.wordValue(args[1]); err != nil {
			return
		}
		codes = append(codes, MakeDirect(SHAPE_LDS, d), addr)

	case mnem == "sts":
		if err = need(args, 2); err != nil {
			return
		}
		var d uint8
		var addr uint16
		if addr, err = asm.wordValue(args[0]); err != nil {
			return
		}
		if d, err = asm.register(args[1]); err != nil {
			return
		}
		codes = append(codes, MakeDirect(SHAPE_STS, d), addr)

	case mnem == "push" || mnem == "pop":
		if err = need(args, 1); err != nil {
			return
		}
		var d uint8
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		shape := SHAPE_POP
		if mnem == "push" {
			shape = SHAPE_PUSH
		}
		codes = append(codes, MakeStack(shape, d))

	case mnem == "bset" || mnem == "bclr":
		if err = need(args, 1); err != nil {
			return
		}
		var b uint8
		if b, err = asm.bitNumber(args[0]); err != nil {
			return
		}
		shape := SHAPE_BSET
		if mnem == "bclr" {
			shape = SHAPE_BCLR
		}
		codes = append(codes, MakeFlag(shape, b))

	case mnem == "bld" || mnem == "bst" || mnem == "sbrc" || mnem == "sbrs":
		if err = need(args, 2); err != nil {
			return
		}
		var d, b uint8
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if b, err = asm.bitNumber(args[1]); err != nil {
			return
		}
		codes = append(codes, MakeBit(bitShape[mnem], d, b))

	case mnem == "adiw" || mnem == "sbiw":
		if err = need(args, 2); err != nil {
			return
		}
		var d, k uint8
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if d < 24 || d%2 != 0 {
			err = ErrRegisterPair
			return
		}
		if k, err = asm.byteValue(args[1]); err != nil {
			return
		}
		if k > 63 {
			err = ErrImmediateRange
			return
		}
		shape := SHAPE_ADIW
		if mnem == "sbiw" {
			shape = SHAPE_SBIW
		}
		codes = append(codes, MakeWordImm(shape, (d-24)/2, k))

	case mnem == "jmp" || mnem == "call":
		if err = need(args, 1); err != nil {
			return
		}
		shape := SHAPE_JMP
		if mnem == "call" {
			shape = SHAPE_CALL
		}
		addr, verr := asm.wordValue(args[0])
		switch {
		case verr == nil:
			codes = append(codes, MakeFar(shape), addr)
		case errors.Is(verr, ErrImmediateRange):
			err = verr
			return
		default:
			codes = append(codes, MakeFar(shape), 0)
			label = args[0]
			reloc = RELOC_ABS
		}

	case mnem == "rjmp" || mnem == "rcall":
		if err = need(args, 1); err != nil {
			return
		}
		shape := SHAPE_RJMP
		if mnem == "rcall" {
			shape = SHAPE_RCALL
		}
		offset, verr := asm.valueOf(args[0])
		if verr == nil {
			if offset < -2048 || offset > 2047 {
				err = ErrBranchRange
				return
			}
			codes = append(codes, MakeRelative(shape, offset))
		} else {
			codes = append(codes, MakeRelative(shape, 0))
			label = args[0]
			reloc = RELOC_REL12
		}

	case mnem == "brbs" || mnem == "brbc":
		if err = need(args, 2); err != nil {
			return
		}
		var b uint8
		if b, err = asm.bitNumber(args[0]); err != nil {
			return
		}
		shape := SHAPE_BRBS
		if mnem == "brbc" {
			shape = SHAPE_BRBC
		}
		offset, verr := asm.valueOf(args[1])
		if verr == nil {
			if offset < -64 || offset > 63 {
				err = ErrBranchRange
				return
			}
			codes = append(codes, MakeBranch(shape, b, offset))
		} else {
			codes = append(codes, MakeBranch(shape, b, 0))
			label = args[1]
			reloc = RELOC_REL7
		}

	default:
		err = ErrOpcodeInvalid
		return
	}

	return
}
