package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   uint16
		text   string
		words  int
		cycles int
	}){
		{0x0000, "nop", 1, 1},
		{0x0c01, "add r0, r1", 1, 1},
		{0x0f00, "add r16, r16", 1, 1},
		{0x1c23, "adc r2, r3", 1, 1},
		{0x1856, "sub r5, r6", 1, 1},
		{0x0812, "sbc r1, r2", 1, 1},
		{0x1478, "cp r7, r8", 1, 1},
		{0x049a, "cpc r9, r10", 1, 1},
		{0x1200, "cpse r0, r16", 1, 1},
		{0x2345, "and r20, r21", 1, 1},
		{0x2411, "eor r1, r1", 1, 1},
		{0x2834, "or r3, r4", 1, 1},
		{0x2ffe, "mov r31, r30", 1, 1},
		{0x01cf, "movw r24, r30", 1, 1},
		{0xef0f, "ldi r16, 0xff", 1, 1},
		{0x301a, "cpi r17, 0xa", 1, 1},
		{0x4021, "sbci r18, 0x1", 1, 1},
		{0x5130, "subi r19, 0x10", 1, 1},
		{0x6440, "ori r20, 0x40", 1, 1},
		{0x775f, "andi r21, 0x7f", 1, 1},
		{0x900c, "ld r0, X", 1, 2},
		{0x901d, "ld r1, X+", 1, 2},
		{0x902e, "ld r2, -X", 1, 2},
		{0x923c, "st X, r3", 1, 2},
		{0x924d, "st X+, r4", 1, 2},
		{0x925e, "st -X, r5", 1, 2},
		{0x8068, "ld r6, Y", 1, 2},
		{0x8070, "ld r7, Z", 1, 2},
		{0x9089, "ld r8, Y+", 1, 2},
		{0x909a, "ld r9, -Y", 1, 2},
		{0x90a1, "ld r10, Z+", 1, 2},
		{0x90b2, "ld r11, -Z", 1, 2},
		{0x80c2, "ldd r12, Z+2", 1, 2},
		{0xa0d9, "ldd r13, Y+33", 1, 2},
		{0x86e2, "std Z+10, r14", 1, 2},
		{0x900f, "pop r0", 1, 2},
		{0x93ff, "push r31", 1, 2},
		{0x9500, "com r16", 1, 1},
		{0x9511, "neg r17", 1, 1},
		{0x9522, "swap r18", 1, 1},
		{0x9533, "inc r19", 1, 1},
		{0x9545, "asr r20", 1, 1},
		{0x9556, "lsr r21", 1, 1},
		{0x9567, "ror r22", 1, 1},
		{0x957a, "dec r23", 1, 1},
		{0x9408, "bset 0", 1, 1},
		{0x9478, "bset 7", 1, 1},
		{0x9498, "bclr 1", 1, 1},
		{0x94f8, "bclr 7", 1, 1},
		{0xf800, "bld r0, 0", 1, 1},
		{0xfa17, "bst r1, 7", 1, 1},
		{0xfc23, "sbrc r2, 3", 1, 1},
		{0xfe35, "sbrs r3, 5", 1, 1},
		{0x9409, "ijmp", 1, 2},
		{0x9509, "icall", 1, 3},
		{0x9508, "ret", 1, 4},
		{0x9518, "reti", 1, 4},
		{0x9601, "adiw r24, 0x1", 1, 2},
		{0x96ff, "adiw r30, 0x3f", 1, 2},
		{0x9790, "sbiw r26, 0x20", 1, 2},
		{0xc000, "rjmp 0", 1, 2},
		{0xc005, "rjmp 5", 1, 2},
		{0xcfff, "rjmp -1", 1, 2},
		{0xdffe, "rcall -2", 1, 3},
		{0xf3f8, "brbs 0, -1", 1, 1},
		{0xf421, "brbc 1, 4", 1, 1},

		// Encodings the model does not implement decode as illegal:
		// multiply, i/o space, load-program-memory, sleep.
		{0x9c01, "illegal 0x9c01", 1, 1},
		{0xb600, "illegal 0xb600", 1, 1},
		{0x95c8, "illegal 0x95c8", 1, 1},
		{0x9588, "illegal 0x9588", 1, 1},
		{0x940b, "illegal 0x940b", 1, 1},
		{0xffff, "illegal 0xffff", 1, 1},
	}

	for _, entry := range table {
		inst := Decode(entry.word)
		assert.Equal(entry.text, inst.String(), "%#04x", entry.word)
		assert.Equal(entry.words, inst.Words, "%#04x", entry.word)
		assert.Equal(entry.cycles, inst.Cycles, "%#04x", entry.word)
		assert.Equal(entry.word, inst.Raw, "%#04x", entry.word)
	}
}

func TestDecodeTwoWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   uint16
		ext    uint16
		text   string
		cycles int
	}){
		{0x9020, 0x1234, "lds r2, 0x1234", 2},
		{0x91f0, 0x8100, "lds r31, 0x8100", 2},
		{0x9230, 0xbeef, "sts 0xbeef, r3", 2},
		{0x940c, 0x1234, "jmp 0x1234", 3},
		{0x940e, 0x2345, "call 0x2345", 4},
	}

	for _, entry := range table {
		inst := Decode(entry.word)
		assert.Equal(2, inst.Words, "%#04x", entry.word)
		assert.Equal(entry.cycles, inst.Cycles, "%#04x", entry.word)

		inst.Extend(entry.ext)
		assert.Equal(entry.ext, inst.K, "%#04x", entry.word)
		assert.Equal(entry.text, inst.String(), "%#04x", entry.word)
	}
}

func TestDecodePointerFields(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word uint16
		ptr  uint8
		mode AddrMode
		q    uint8
	}){
		{0x900c, REG_X, MODE_PLAIN, 0},
		{0x901d, REG_X, MODE_POSTINC, 0},
		{0x902e, REG_X, MODE_PREDEC, 0},
		{0x9089, REG_Y, MODE_POSTINC, 0},
		{0x90b2, REG_Z, MODE_PREDEC, 0},
		{0x8068, REG_Y, MODE_DISP, 0},
		{0x8070, REG_Z, MODE_DISP, 0},
		{0xa0d9, REG_Y, MODE_DISP, 33},
		{0xae3f, REG_Y, MODE_DISP, 63},
		{0x86e2, REG_Z, MODE_DISP, 10},
	}

	for _, entry := range table {
		inst := Decode(entry.word)
		assert.Equal(entry.ptr, inst.Ptr, "%#04x", entry.word)
		assert.Equal(entry.mode, inst.Mode, "%#04x", entry.word)
		assert.Equal(entry.q, inst.Q, "%#04x", entry.word)
	}
}

func TestDecodeImmediateBank(t *testing.T) {
	assert := assert.New(t)

	// The immediate shapes can only name r16..r31; the top select bit
	// is implied.
	for d := range uint8(16) {
		inst := Decode(MakeImmediate(SHAPE_LDI, d, 0x42))
		assert.Equal(d|0x10, inst.D)
		assert.Equal(uint16(0x42), inst.K)
	}
}

func TestEncodeDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word uint16
		text string
	}){
		{"two_reg", MakeTwoReg(SHAPE_ADD, 16, 17), "add r16, r17"},
		{"immediate", MakeImmediate(SHAPE_ANDI, 24, 0x5a), "andi r24, 0x5a"},
		{"unary", MakeUnary(SHAPE_COM, 31), "com r31"},
		{"fixed", MakeFixed(SHAPE_RETI), "reti"},
		{"movw", MakeMovw(2, 30), "movw r2, r30"},
		{"ld_x_inc", MakeLoadStore(SHAPE_LD, 4, REG_X, MODE_POSTINC, 0), "ld r4, X+"},
		{"st_z_disp", MakeLoadStore(SHAPE_ST, 5, REG_Z, MODE_DISP, 17), "std Z+17, r5"},
		{"st_y_plain", MakeLoadStore(SHAPE_ST, 6, REG_Y, MODE_PLAIN, 0), "st Y, r6"},
		{"stack", MakeStack(SHAPE_PUSH, 16), "push r16"},
		{"flag", MakeFlag(SHAPE_BCLR, 7), "bclr 7"},
		{"bit", MakeBit(SHAPE_SBRS, 12, 6), "sbrs r12, 6"},
		{"word_imm", MakeWordImm(SHAPE_SBIW, 2, 0x21), "sbiw r28, 0x21"},
		{"relative", MakeRelative(SHAPE_RJMP, -3), "rjmp -3"},
		{"branch", MakeBranch(SHAPE_BRBC, 2, -64), "brbc 2, -64"},
	}

	for _, entry := range table {
		inst := Decode(entry.word)
		assert.Equal(entry.text, inst.String(), entry.name)
	}
}

func FuzzDecode(f *testing.F) {
	seeds := []uint16{
		0x0000, 0x0c01, 0x2ffe, 0x01cf, 0xef0f, 0x9001, 0x900c, 0x8068,
		0xa0d9, 0x86e2, 0x900f, 0x920f, 0x9400, 0x9408, 0x940c, 0x940e,
		0x9409, 0x9508, 0x9601, 0x9790, 0xc005, 0xcfff, 0xdffe, 0xf3f8,
		0xf421, 0xf800, 0xfe35, 0x9020, 0x9230, 0x9c01, 0xb600, 0xffff,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		inst := Decode(word)

		// Structural invariants hold for every decode.
		assert.GreaterOrEqual(inst.Words, 1)
		assert.LessOrEqual(inst.Words, 2)
		assert.GreaterOrEqual(inst.Cycles, 1)
		assert.LessOrEqual(inst.Cycles, 4)
		assert.Less(inst.D, uint8(32))
		assert.Less(inst.B, uint8(8))
		assert.Less(inst.Q, uint8(64))
		assert.NotEmpty(inst.String())

		switch inst.Shape {
		case SHAPE_LDS, SHAPE_STS, SHAPE_JMP, SHAPE_CALL:
			assert.Equal(2, inst.Words)
		default:
			assert.Equal(1, inst.Words)
		}

		// Re-encoding the extracted fields must reproduce the word.
		switch inst.Shape {
		case SHAPE_CPC, SHAPE_CPSE, SHAPE_CP, SHAPE_SBC, SHAPE_SUB,
			SHAPE_ADD, SHAPE_ADC, SHAPE_AND, SHAPE_EOR, SHAPE_OR, SHAPE_MOV:
			assert.Equal(word, MakeTwoReg(inst.Shape, inst.D, inst.R))
		case SHAPE_MOVW:
			assert.Equal(word, MakeMovw(inst.D, inst.R))
		case SHAPE_CPI, SHAPE_SBCI, SHAPE_SUBI, SHAPE_ORI, SHAPE_ANDI, SHAPE_LDI:
			assert.Equal(word, MakeImmediate(inst.Shape, inst.D, uint8(inst.K)))
		case SHAPE_COM, SHAPE_NEG, SHAPE_SWAP, SHAPE_INC, SHAPE_ASR,
			SHAPE_LSR, SHAPE_ROR, SHAPE_DEC:
			assert.Equal(word, MakeUnary(inst.Shape, inst.D))
		case SHAPE_LD, SHAPE_ST:
			assert.Equal(word, MakeLoadStore(inst.Shape, inst.D, inst.Ptr, inst.Mode, inst.Q))
		case SHAPE_LDS, SHAPE_STS:
			assert.Equal(word, MakeDirect(inst.Shape, inst.D))
		case SHAPE_POP, SHAPE_PUSH:
			assert.Equal(word, MakeStack(inst.Shape, inst.D))
		case SHAPE_BSET, SHAPE_BCLR:
			assert.Equal(word, MakeFlag(inst.Shape, inst.B))
		case SHAPE_BLD, SHAPE_BST, SHAPE_SBRC, SHAPE_SBRS:
			assert.Equal(word, MakeBit(inst.Shape, inst.D, inst.B))
		case SHAPE_ADIW, SHAPE_SBIW:
			assert.Equal(word, MakeWordImm(inst.Shape, inst.D, uint8(inst.K)))
		case SHAPE_RJMP, SHAPE_RCALL:
			assert.Equal(word, MakeRelative(inst.Shape, int(int16(inst.K))))
		case SHAPE_BRBS, SHAPE_BRBC:
			assert.Equal(word, MakeBranch(inst.Shape, inst.B, int(int16(inst.K))))
		case SHAPE_JMP, SHAPE_CALL:
			// Bits outside the mask are address extension on larger
			// parts; the first word reduces to the base form.
			assert.Equal(word&0xfe0e, MakeFar(inst.Shape))
		case SHAPE_NOP, SHAPE_IJMP, SHAPE_ICALL, SHAPE_RET, SHAPE_RETI:
			assert.Equal(word, MakeFixed(inst.Shape))
		}
	})
}
