package core

import (
	"fmt"
)

// Shape is a decoded instruction shape. Each shape identifies one
// datapath routing; the assembler-level aliases (lsl, tst, breq, ser
// and friends) all reduce to one of these.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_ILLEGAL = Shape(0)  // illegal
	SHAPE_NOP     = Shape(1)  // nop
	SHAPE_MOVW    = Shape(2)  // movw
	SHAPE_CPC     = Shape(3)  // cpc
	SHAPE_CPSE    = Shape(4)  // cpse
	SHAPE_CP      = Shape(5)  // cp
	SHAPE_SBC     = Shape(6)  // sbc
	SHAPE_SUB     = Shape(7)  // sub
	SHAPE_ADD     = Shape(8)  // add
	SHAPE_ADC     = Shape(9)  // adc
	SHAPE_AND     = Shape(10) // and
	SHAPE_ANDI    = Shape(11) // andi
	SHAPE_EOR     = Shape(12) // eor
	SHAPE_OR      = Shape(13) // or
	SHAPE_ORI     = Shape(14) // ori
	SHAPE_MOV     = Shape(15) // mov
	SHAPE_CPI     = Shape(16) // cpi
	SHAPE_SBCI    = Shape(17) // sbci
	SHAPE_SUBI    = Shape(18) // subi
	SHAPE_LDI     = Shape(19) // ldi
	SHAPE_LD      = Shape(20) // ld
	SHAPE_ST      = Shape(21) // st
	SHAPE_LDS     = Shape(22) // lds
	SHAPE_STS     = Shape(23) // sts
	SHAPE_POP     = Shape(24) // pop
	SHAPE_PUSH    = Shape(25) // push
	SHAPE_COM     = Shape(26) // com
	SHAPE_NEG     = Shape(27) // neg
	SHAPE_SWAP    = Shape(28) // swap
	SHAPE_INC     = Shape(29) // inc
	SHAPE_ASR     = Shape(30) // asr
	SHAPE_LSR     = Shape(31) // lsr
	SHAPE_ROR     = Shape(32) // ror
	SHAPE_DEC     = Shape(33) // dec
	SHAPE_BSET    = Shape(34) // bset
	SHAPE_BCLR    = Shape(35) // bclr
	SHAPE_BLD     = Shape(36) // bld
	SHAPE_BST     = Shape(37) // bst
	SHAPE_IJMP    = Shape(38) // ijmp
	SHAPE_ICALL   = Shape(39) // icall
	SHAPE_RET     = Shape(40) // ret
	SHAPE_RETI    = Shape(41) // reti
	SHAPE_JMP     = Shape(42) // jmp
	SHAPE_CALL    = Shape(43) // call
	SHAPE_ADIW    = Shape(44) // adiw
	SHAPE_SBIW    = Shape(45) // sbiw
	SHAPE_RJMP    = Shape(46) // rjmp
	SHAPE_RCALL   = Shape(47) // rcall
	SHAPE_BRBS    = Shape(48) // brbs
	SHAPE_BRBC    = Shape(49) // brbc
	SHAPE_SBRC    = Shape(50) // sbrc
	SHAPE_SBRS    = Shape(51) // sbrs
)

// Inst is a decoded instruction. Field meaning depends on the shape;
// unused fields stay zero. K holds immediates, absolute word addresses
// and relative word offsets; offsets are stored two's-complement.
type Inst struct {
	Shape Shape
	Op    AluOp    // ALU routing for the arithmetic shapes
	D     uint8    // destination register select
	R     uint8    // source register select
	B     uint8    // status or register bit number
	Q     uint8    // pointer displacement
	Ptr   uint8    // low register of the pointer pair
	Mode  AddrMode // pointer addressing mode
	K     uint16
	Raw   uint16
	Words int // instruction length in words, 1 or 2

	// Cycles is the minimum cycle count. Taken branches and skips
	// stretch beyond it.
	Cycles int
}

// pattern is one row of the decode table: word&mask == value selects
// the shape. Rows are ordered most-specific mask first and are
// disjoint, so order is cosmetic.
type pattern struct {
	mask  uint16
	value uint16
	shape Shape
}

var patterns = []pattern{
	{0xffff, 0x0000, SHAPE_NOP},
	{0xffff, 0x9409, SHAPE_IJMP},
	{0xffff, 0x9508, SHAPE_RET},
	{0xffff, 0x9509, SHAPE_ICALL},
	{0xffff, 0x9518, SHAPE_RETI},
	{0xff8f, 0x9408, SHAPE_BSET},
	{0xff8f, 0x9488, SHAPE_BCLR},
	{0xfe0f, 0x9000, SHAPE_LDS},
	{0xfe0f, 0x9001, SHAPE_LD}, // Z+
	{0xfe0f, 0x9002, SHAPE_LD}, // -Z
	{0xfe0f, 0x9009, SHAPE_LD}, // Y+
	{0xfe0f, 0x900a, SHAPE_LD}, // -Y
	{0xfe0f, 0x900c, SHAPE_LD}, // X
	{0xfe0f, 0x900d, SHAPE_LD}, // X+
	{0xfe0f, 0x900e, SHAPE_LD}, // -X
	{0xfe0f, 0x900f, SHAPE_POP},
	{0xfe0f, 0x9200, SHAPE_STS},
	{0xfe0f, 0x9201, SHAPE_ST}, // Z+
	{0xfe0f, 0x9202, SHAPE_ST}, // -Z
	{0xfe0f, 0x9209, SHAPE_ST}, // Y+
	{0xfe0f, 0x920a, SHAPE_ST}, // -Y
	{0xfe0f, 0x920c, SHAPE_ST}, // X
	{0xfe0f, 0x920d, SHAPE_ST}, // X+
	{0xfe0f, 0x920e, SHAPE_ST}, // -X
	{0xfe0f, 0x920f, SHAPE_PUSH},
	{0xfe0f, 0x9400, SHAPE_COM},
	{0xfe0f, 0x9401, SHAPE_NEG},
	{0xfe0f, 0x9402, SHAPE_SWAP},
	{0xfe0f, 0x9403, SHAPE_INC},
	{0xfe0f, 0x9405, SHAPE_ASR},
	{0xfe0f, 0x9406, SHAPE_LSR},
	{0xfe0f, 0x9407, SHAPE_ROR},
	{0xfe0f, 0x940a, SHAPE_DEC},
	{0xfe0e, 0x940c, SHAPE_JMP},
	{0xfe0e, 0x940e, SHAPE_CALL},
	{0xff00, 0x0100, SHAPE_MOVW},
	{0xff00, 0x9600, SHAPE_ADIW},
	{0xff00, 0x9700, SHAPE_SBIW},
	{0xfe08, 0xf800, SHAPE_BLD},
	{0xfe08, 0xfa00, SHAPE_BST},
	{0xfe08, 0xfc00, SHAPE_SBRC},
	{0xfe08, 0xfe00, SHAPE_SBRS},
	{0xfc00, 0x0400, SHAPE_CPC},
	{0xfc00, 0x0800, SHAPE_SBC},
	{0xfc00, 0x0c00, SHAPE_ADD},
	{0xfc00, 0x1000, SHAPE_CPSE},
	{0xfc00, 0x1400, SHAPE_CP},
	{0xfc00, 0x1800, SHAPE_SUB},
	{0xfc00, 0x1c00, SHAPE_ADC},
	{0xfc00, 0x2000, SHAPE_AND},
	{0xfc00, 0x2400, SHAPE_EOR},
	{0xfc00, 0x2800, SHAPE_OR},
	{0xfc00, 0x2c00, SHAPE_MOV},
	{0xfc00, 0xf000, SHAPE_BRBS},
	{0xfc00, 0xf400, SHAPE_BRBC},
	{0xf000, 0x3000, SHAPE_CPI},
	{0xf000, 0x4000, SHAPE_SBCI},
	{0xf000, 0x5000, SHAPE_SUBI},
	{0xf000, 0x6000, SHAPE_ORI},
	{0xf000, 0x7000, SHAPE_ANDI},
	{0xf000, 0xc000, SHAPE_RJMP},
	{0xf000, 0xd000, SHAPE_RCALL},
	{0xf000, 0xe000, SHAPE_LDI},
	{0xd000, 0x8000, SHAPE_LD}, // displacement forms, bit 9 selects store
}

// signExtend widens the low bits of v to a two's-complement 16-bit word.
func signExtend(v uint16, bits uint) uint16 {
	sign := uint16(1) << (bits - 1)
	return (v ^ sign) - sign
}

// Decode matches word against the pattern table and extracts the shape
// fields. Anything the table does not claim decodes to SHAPE_ILLEGAL,
// one word, one cycle.
func Decode(word uint16) (inst Inst) {
	inst.Raw = word
	inst.Words = 1
	inst.Cycles = 1

	for _, p := range patterns {
		if word&p.mask == p.value {
			inst.Shape = p.shape
			break
		}
	}

	switch inst.Shape {
	case SHAPE_MOVW:
		inst.D = uint8(word>>4&0x0f) * 2
		inst.R = uint8(word&0x0f) * 2

	case SHAPE_CPC, SHAPE_CPSE, SHAPE_CP, SHAPE_SBC, SHAPE_SUB,
		SHAPE_ADD, SHAPE_ADC, SHAPE_AND, SHAPE_EOR, SHAPE_OR, SHAPE_MOV:
		inst.D = uint8(word >> 4 & 0x1f)
		inst.R = uint8(word&0x0f | word>>5&0x10)
		switch inst.Shape {
		case SHAPE_CPC, SHAPE_SBC:
			inst.Op = ALU_SBC
		case SHAPE_CP, SHAPE_SUB:
			inst.Op = ALU_SUB
		case SHAPE_ADD:
			inst.Op = ALU_ADD
		case SHAPE_ADC:
			inst.Op = ALU_ADC
		case SHAPE_AND:
			inst.Op = ALU_AND
		case SHAPE_EOR:
			inst.Op = ALU_EOR
		case SHAPE_OR:
			inst.Op = ALU_OR
		case SHAPE_MOV:
			inst.Op = ALU_PASS
		}

	case SHAPE_CPI, SHAPE_SBCI, SHAPE_SUBI, SHAPE_ORI, SHAPE_ANDI, SHAPE_LDI:
		// The immediate shapes only reach the upper register bank.
		inst.D = uint8(word>>4&0x0f) | 0x10
		inst.K = word&0x0f | word>>4&0xf0
		switch inst.Shape {
		case SHAPE_CPI, SHAPE_SUBI:
			inst.Op = ALU_SUB
		case SHAPE_SBCI:
			inst.Op = ALU_SBC
		case SHAPE_ORI:
			inst.Op = ALU_OR
		case SHAPE_ANDI:
			inst.Op = ALU_AND
		case SHAPE_LDI:
			inst.Op = ALU_PASS
		}

	case SHAPE_COM, SHAPE_NEG, SHAPE_SWAP, SHAPE_INC, SHAPE_ASR,
		SHAPE_LSR, SHAPE_ROR, SHAPE_DEC:
		inst.D = uint8(word >> 4 & 0x1f)
		switch inst.Shape {
		case SHAPE_COM:
			inst.Op = ALU_COM
		case SHAPE_NEG:
			inst.Op = ALU_NEG
		case SHAPE_SWAP:
			inst.Op = ALU_SWAP
		case SHAPE_INC:
			inst.Op = ALU_INC
		case SHAPE_ASR:
			inst.Op = ALU_ASR
		case SHAPE_LSR:
			inst.Op = ALU_LSR
		case SHAPE_ROR:
			inst.Op = ALU_ROR
		case SHAPE_DEC:
			inst.Op = ALU_DEC
		}

	case SHAPE_LD, SHAPE_ST:
		inst.D = uint8(word >> 4 & 0x1f)
		inst.Cycles = 2
		if word&0x1000 == 0 {
			// Displacement form; bit 9 was already split into the
			// load and store patterns above, bit 3 picks the pair.
			if word&0x0200 != 0 {
				inst.Shape = SHAPE_ST
			}
			inst.Mode = MODE_DISP
			inst.Q = uint8(word&0x07 | word>>7&0x18 | word>>8&0x20)
			if word&0x08 != 0 {
				inst.Ptr = REG_Y
			} else {
				inst.Ptr = REG_Z
			}
		} else {
			switch word & 0x0f {
			case 0x1, 0x2:
				inst.Ptr = REG_Z
			case 0x9, 0xa:
				inst.Ptr = REG_Y
			default:
				inst.Ptr = REG_X
			}
			switch word & 0x03 {
			case 0x1:
				inst.Mode = MODE_POSTINC
			case 0x2:
				inst.Mode = MODE_PREDEC
			default:
				inst.Mode = MODE_PLAIN
			}
		}

	case SHAPE_LDS, SHAPE_STS:
		inst.D = uint8(word >> 4 & 0x1f)
		inst.Words = 2
		inst.Cycles = 2

	case SHAPE_POP, SHAPE_PUSH:
		inst.D = uint8(word >> 4 & 0x1f)
		inst.Cycles = 2

	case SHAPE_BSET, SHAPE_BCLR:
		inst.B = uint8(word >> 4 & 0x07)

	case SHAPE_BLD, SHAPE_BST, SHAPE_SBRC, SHAPE_SBRS:
		inst.D = uint8(word >> 4 & 0x1f)
		inst.B = uint8(word & 0x07)

	case SHAPE_IJMP, SHAPE_RJMP:
		inst.Cycles = 2
		if inst.Shape == SHAPE_RJMP {
			inst.K = signExtend(word&0x0fff, 12)
		} else {
			inst.Ptr = REG_Z
		}

	case SHAPE_ICALL, SHAPE_RCALL:
		inst.Cycles = 3
		if inst.Shape == SHAPE_RCALL {
			inst.K = signExtend(word&0x0fff, 12)
		} else {
			inst.Ptr = REG_Z
		}

	case SHAPE_JMP:
		inst.Words = 2
		inst.Cycles = 3

	case SHAPE_CALL:
		inst.Words = 2
		inst.Cycles = 4

	case SHAPE_RET, SHAPE_RETI:
		inst.Cycles = 4

	case SHAPE_ADIW, SHAPE_SBIW:
		inst.D = uint8(word >> 4 & 0x03)
		inst.K = word&0x0f | word>>2&0x30
		inst.Cycles = 2
		if inst.Shape == SHAPE_ADIW {
			inst.Op = ALU_ADDW
		} else {
			inst.Op = ALU_SUBW
		}

	case SHAPE_BRBS, SHAPE_BRBC:
		inst.B = uint8(word & 0x07)
		inst.K = signExtend(word>>3&0x7f, 7)
	}

	return
}

// Extend absorbs the second word of a two-word instruction.
func (inst *Inst) Extend(word uint16) {
	switch inst.Shape {
	case SHAPE_LDS, SHAPE_STS, SHAPE_JMP, SHAPE_CALL:
		inst.K = word
	}
}

// PairSel returns the low register of the destination pair for the
// word-immediate shapes.
func (inst *Inst) PairSel() uint8 {
	return 24 + inst.D*2
}

var twoRegBase = map[Shape]uint16{
	SHAPE_CPC:  0x0400,
	SHAPE_SBC:  0x0800,
	SHAPE_ADD:  0x0c00,
	SHAPE_CPSE: 0x1000,
	SHAPE_CP:   0x1400,
	SHAPE_SUB:  0x1800,
	SHAPE_ADC:  0x1c00,
	SHAPE_AND:  0x2000,
	SHAPE_EOR:  0x2400,
	SHAPE_OR:   0x2800,
	SHAPE_MOV:  0x2c00,
}

var immediateBase = map[Shape]uint16{
	SHAPE_CPI:  0x3000,
	SHAPE_SBCI: 0x4000,
	SHAPE_SUBI: 0x5000,
	SHAPE_ORI:  0x6000,
	SHAPE_ANDI: 0x7000,
	SHAPE_LDI:  0xe000,
}

var unaryBase = map[Shape]uint16{
	SHAPE_COM:  0x9400,
	SHAPE_NEG:  0x9401,
	SHAPE_SWAP: 0x9402,
	SHAPE_INC:  0x9403,
	SHAPE_ASR:  0x9405,
	SHAPE_LSR:  0x9406,
	SHAPE_ROR:  0x9407,
	SHAPE_DEC:  0x940a,
}

var fixedWord = map[Shape]uint16{
	SHAPE_NOP:   0x0000,
	SHAPE_IJMP:  0x9409,
	SHAPE_ICALL: 0x9509,
	SHAPE_RET:   0x9508,
	SHAPE_RETI:  0x9518,
}

var bitBase = map[Shape]uint16{
	SHAPE_BLD:  0xf800,
	SHAPE_BST:  0xfa00,
	SHAPE_SBRC: 0xfc00,
	SHAPE_SBRS: 0xfe00,
}

// MakeTwoReg encodes a two-register operation word.
func MakeTwoReg(shape Shape, d, r uint8) uint16 {
	return twoRegBase[shape] | uint16(r&0x10)<<5 | uint16(d&0x1f)<<4 | uint16(r&0x0f)
}

// MakeImmediate encodes a register-immediate operation word. The
// register select is taken modulo the upper bank.
func MakeImmediate(shape Shape, d uint8, k uint8) uint16 {
	return immediateBase[shape] | uint16(k&0xf0)<<4 | uint16(d&0x0f)<<4 | uint16(k&0x0f)
}

// MakeUnary encodes a one-register operation word.
func MakeUnary(shape Shape, d uint8) uint16 {
	return unaryBase[shape] | uint16(d&0x1f)<<4
}

// MakeFixed encodes an operand-free instruction word.
func MakeFixed(shape Shape) uint16 {
	return fixedWord[shape]
}

// MakeMovw encodes a register pair move. Both selects round down to
// even.
func MakeMovw(d, r uint8) uint16 {
	return 0x0100 | uint16(d&0x1e)<<3 | uint16(r&0x1e)>>1
}

// MakeLoadStore encodes a pointer-addressed load or store. The
// displacement mode uses the long format, everything else the short
// one. X has no displacement format; callers pass q=0 with X.
func MakeLoadStore(shape Shape, d uint8, ptr uint8, mode AddrMode, q uint8) uint16 {
	var store uint16
	if shape == SHAPE_ST {
		store = 0x0200
	}

	if mode == MODE_DISP {
		word := 0x8000 | store | uint16(d&0x1f)<<4
		word |= uint16(q&0x07) | uint16(q&0x18)<<7 | uint16(q&0x20)<<8
		if ptr == REG_Y {
			word |= 0x08
		}
		return word
	}

	word := 0x9000 | store | uint16(d&0x1f)<<4
	switch ptr {
	case REG_X:
		word |= 0x0c
	case REG_Y:
		word |= 0x08
	}
	switch mode {
	case MODE_POSTINC:
		word |= 0x01
	case MODE_PREDEC:
		word |= 0x02
	}

	// Plain Y and Z accesses live in the long format with q=0.
	if mode == MODE_PLAIN && ptr != REG_X {
		word = 0x8000 | store | uint16(d&0x1f)<<4
		if ptr == REG_Y {
			word |= 0x08
		}
	}

	return word
}

// MakeStack encodes a push or pop word.
func MakeStack(shape Shape, d uint8) uint16 {
	if shape == SHAPE_PUSH {
		return 0x920f | uint16(d&0x1f)<<4
	}
	return 0x900f | uint16(d&0x1f)<<4
}

// MakeDirect encodes the first word of a direct load or store; the
// data-space address follows as the second word.
func MakeDirect(shape Shape, d uint8) uint16 {
	if shape == SHAPE_STS {
		return 0x9200 | uint16(d&0x1f)<<4
	}
	return 0x9000 | uint16(d&0x1f)<<4
}

// MakeFlag encodes a status flag set or clear word.
func MakeFlag(shape Shape, b uint8) uint16 {
	if shape == SHAPE_BCLR {
		return 0x9488 | uint16(b&0x07)<<4
	}
	return 0x9408 | uint16(b&0x07)<<4
}

// MakeBit encodes a register bit transfer or skip word.
func MakeBit(shape Shape, d uint8, b uint8) uint16 {
	return bitBase[shape] | uint16(d&0x1f)<<4 | uint16(b&0x07)
}

// MakeFar encodes the first word of an absolute jump or call; the
// target word address follows as the second word.
func MakeFar(shape Shape) uint16 {
	if shape == SHAPE_CALL {
		return 0x940e
	}
	return 0x940c
}

// MakeWordImm encodes a word-immediate add or subtract. The pair select
// counts pairs from r24.
func MakeWordImm(shape Shape, pair uint8, k uint8) uint16 {
	base := uint16(0x9600)
	if shape == SHAPE_SBIW {
		base = 0x9700
	}
	return base | uint16(k&0x30)<<2 | uint16(pair&0x03)<<4 | uint16(k&0x0f)
}

// MakeRelative encodes a relative jump or call with a signed word
// offset.
func MakeRelative(shape Shape, k int) uint16 {
	base := uint16(0xc000)
	if shape == SHAPE_RCALL {
		base = 0xd000
	}
	return base | uint16(k)&0x0fff
}

// MakeBranch encodes a conditional branch on a status bit with a
// signed word offset.
func MakeBranch(shape Shape, b uint8, k int) uint16 {
	base := uint16(0xf000)
	if shape == SHAPE_BRBC {
		base = 0xf400
	}
	return base | (uint16(k)&0x7f)<<3 | uint16(b&0x07)
}

// ptrOperand renders a pointer operand in assembly syntax.
func ptrOperand(ptr uint8, mode AddrMode, q uint8) string {
	name := "Z"
	switch ptr {
	case REG_X:
		name = "X"
	case REG_Y:
		name = "Y"
	}

	switch mode {
	case MODE_POSTINC:
		return name + "+"
	case MODE_PREDEC:
		return "-" + name
	case MODE_DISP:
		if q != 0 {
			return fmt.Sprintf("%v+%v", name, q)
		}
	}
	return name
}

// String returns the assembly language representation of this
// instruction.
func (inst Inst) String() (out string) {
	mnem := inst.Shape.String()

	switch inst.Shape {
	case SHAPE_ILLEGAL:
		out = fmt.Sprintf("%v %#04x", mnem, inst.Raw)
	case SHAPE_NOP, SHAPE_IJMP, SHAPE_ICALL, SHAPE_RET, SHAPE_RETI:
		out = mnem
	case SHAPE_MOVW, SHAPE_CPC, SHAPE_CPSE, SHAPE_CP, SHAPE_SBC,
		SHAPE_SUB, SHAPE_ADD, SHAPE_ADC, SHAPE_AND, SHAPE_EOR,
		SHAPE_OR, SHAPE_MOV:
		out = fmt.Sprintf("%v r%v, r%v", mnem, inst.D, inst.R)
	case SHAPE_CPI, SHAPE_SBCI, SHAPE_SUBI, SHAPE_ORI, SHAPE_ANDI, SHAPE_LDI:
		out = fmt.Sprintf("%v r%v, %#02x", mnem, inst.D, inst.K)
	case SHAPE_LD:
		if inst.Mode == MODE_DISP && inst.Q != 0 {
			mnem = "ldd"
		}
		out = fmt.Sprintf("%v r%v, %v", mnem, inst.D, ptrOperand(inst.Ptr, inst.Mode, inst.Q))
	case SHAPE_ST:
		if inst.Mode == MODE_DISP && inst.Q != 0 {
			mnem = "std"
		}
		out = fmt.Sprintf("%v %v, r%v", mnem, ptrOperand(inst.Ptr, inst.Mode, inst.Q), inst.D)
	case SHAPE_LDS:
		out = fmt.Sprintf("%v r%v, %#04x", mnem, inst.D, inst.K)
	case SHAPE_STS:
		out = fmt.Sprintf("%v %#04x, r%v", mnem, inst.K, inst.D)
	case SHAPE_POP, SHAPE_PUSH, SHAPE_COM, SHAPE_NEG, SHAPE_SWAP,
		SHAPE_INC, SHAPE_ASR, SHAPE_LSR, SHAPE_ROR, SHAPE_DEC:
		out = fmt.Sprintf("%v r%v", mnem, inst.D)
	case SHAPE_BSET, SHAPE_BCLR:
		out = fmt.Sprintf("%v %v", mnem, inst.B)
	case SHAPE_BLD, SHAPE_BST, SHAPE_SBRC, SHAPE_SBRS:
		out = fmt.Sprintf("%v r%v, %v", mnem, inst.D, inst.B)
	case SHAPE_JMP, SHAPE_CALL:
		out = fmt.Sprintf("%v %#04x", mnem, inst.K)
	case SHAPE_ADIW, SHAPE_SBIW:
		out = fmt.Sprintf("%v r%v, %#02x", mnem, inst.PairSel(), inst.K)
	case SHAPE_RJMP, SHAPE_RCALL, SHAPE_BRBS, SHAPE_BRBC:
		k := int(int16(inst.K))
		if inst.Shape == SHAPE_BRBS || inst.Shape == SHAPE_BRBC {
			out = fmt.Sprintf("%v %v, %v", mnem, inst.B, k)
		} else {
			out = fmt.Sprintf("%v %v", mnem, k)
		}
	}

	return
}
