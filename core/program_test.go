package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"ldi", "r16", "0x10"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 16, 0x10)}},
			{LineNo: 2, Addr: 1, Words: []string{"ldi", "r17", "0x20"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 17, 0x20)}},
			{LineNo: 3, Addr: 2, Words: []string{"add", "r16", "r17"},
				Codes: []uint16{MakeTwoReg(SHAPE_ADD, 16, 17)}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"ldi", "r16", "0x10"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 16, 0x10)}},
		},
	}

	dbg := prog.Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_MultipleCodesPerOpcode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"jmp", "FUNC"},
				Codes:     []uint16{MakeFar(SHAPE_JMP), 0x0040},
				LinkLabel: "FUNC", Reloc: RELOC_ABS},
		},
	}

	dbg := prog.Debug(0)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(1)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(2)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"ldi", "r16", "0x10"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 16, 0x10)}},
			{LineNo: 2, Addr: 1, Words: []string{"ldi", "r17", "0x20"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 17, 0x20)}},
		},
	}

	bins := prog.Binary()
	assert.Equal(2, len(bins))

	assert.Equal(uint16(0xe100), bins[0])
	assert.Equal(uint16(0xe210), bins[1])
}

func TestProgram_Binary_OrgGap(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"rjmp", "start"},
				Codes: []uint16{MakeRelative(SHAPE_RJMP, 0x0f)}},
			{LineNo: 2, Addr: 0x10, Words: []string{".org", "0x10"}},
			{LineNo: 3, Addr: 0x10, Words: []string{"nop"},
				Codes: []uint16{MakeFixed(SHAPE_NOP)}},
			{LineNo: 4, Addr: 0x11, Words: []string{"ldi", "r16", "0x42"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 16, 0x42)}},
		},
	}

	bins := prog.Binary()
	assert.Equal(0x12, len(bins))

	assert.Equal(uint16(0xc00f), bins[0])
	// The .org gap executes as nop.
	for addr := 1; addr < 0x10; addr++ {
		assert.Equal(uint16(0), bins[addr])
	}
	assert.Equal(uint16(0x0000), bins[0x10])
	assert.Equal(uint16(0xe402), bins[0x11])
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"ldi", "r16", "0x10"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 16, 0x10)}},
			{LineNo: 2, Addr: 1, Words: []string{"ldi", "r17", "0x20"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 17, 0x20)}},
			{LineNo: 3, Addr: 2, Words: []string{"add", "r16", "r17"},
				Codes: []uint16{MakeTwoReg(SHAPE_ADD, 16, 17)}},
		},
	}

	addrs := []uint16{}
	codes := []uint16{}
	for addr, code := range prog.Codes() {
		addrs = append(addrs, addr)
		codes = append(codes, code)
	}

	assert.Equal(3, len(addrs))
	assert.Equal(3, len(codes))
	assert.Equal(uint16(0), addrs[0])
	assert.Equal(uint16(1), addrs[1])
	assert.Equal(uint16(2), addrs[2])
}

func TestProgram_Codes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"ldi", "r16", "0x10"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 16, 0x10)}},
			{LineNo: 2, Addr: 1, Words: []string{"ldi", "r17", "0x20"},
				Codes: []uint16{MakeImmediate(SHAPE_LDI, 17, 0x20)}},
		},
	}

	count := 0
	for range prog.Codes() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}

func TestProgram_Codes_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{},
	}

	count := 0
	for range prog.Codes() {
		count++
	}

	assert.Equal(0, count)
}

func TestProgram_Codes_MultipleCodesPerOpcode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{".dw", "1", "2", "3"},
				Codes: []uint16{0x0001, 0x0002, 0x0003}},
		},
	}

	count := 0
	for addr := range prog.Codes() {
		assert.Equal(uint16(count), addr)
		count++
	}

	assert.Equal(3, count)
}

func TestProgram_Integration_ParseAndBinary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"ldi r16 0x10",
		"ldi r17 0x20",
		"add r16 r17",
		"sts 0x0100 r16",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	bins := prog.Binary()
	assert.Equal(5, len(bins))

	assert.Equal(uint16(0xe100), bins[0])
	assert.Equal(uint16(0xe210), bins[1])
	assert.Equal(uint16(0x0f01), bins[2])
	assert.Equal(uint16(0x9300), bins[3])
	assert.Equal(uint16(0x0100), bins[4])
}

func TestProgram_Integration_ParseAndDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"ldi r16 0x10",
		"lds r17 0x0123",
		"add r16 r17",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)

	// Both words of the lds map back to line 2.
	dbg = prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
}
