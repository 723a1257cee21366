package core

import (
	"iter"
)

// Reloc is a link-time patch kind for an opcode's final code word.
type Reloc int

const (
	RELOC_NONE  = Reloc(0) // no patch
	RELOC_ABS   = Reloc(1) // absolute word address
	RELOC_REL12 = Reloc(2) // 12-bit signed word offset
	RELOC_REL7  = Reloc(3) // 7-bit signed word offset
)

// Opcode represents a line of assembled code with its source location
// and generated code words.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Codes     []uint16
	LinkLabel string
	Reloc     Reloc
}

// Program is the output of one assembler pass.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the source line an address was assembled from.
type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= uint16(op.Addr) && addr < uint16(op.Addr)+uint16(len(op.Codes)) {
			index := int(addr - uint16(op.Addr))
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  index,
			}
			break
		}
	}

	return
}

// Binary renders the program as a dense word image from address zero.
// Gaps left by .org fill with zero, which executes as nop.
func (prog *Program) Binary() (bins []uint16) {
	for addr, code := range prog.Codes() {
		for int(addr) >= len(bins) {
			bins = append(bins, 0)
		}
		bins[addr] = code
	}

	return
}

// Codes iterates the assembled words in address order.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(addr uint16, code uint16) bool) {
		for _, op := range prog.Opcodes {
			addr := uint16(op.Addr)
			for n, code := range op.Codes {
				if !yield(addr+uint16(n), code) {
					return
				}
			}
		}
	}
}
