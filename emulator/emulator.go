// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/uavr/bus"
	"github.com/ezrec/uavr/core"
	"github.com/ezrec/uavr/internal"
)

const (
	SRAM_SIZE  = 65536 // Data space size, in bytes.
	FLASH_SIZE = 65536 // Program space size, in words.

	RAMEND = SRAM_SIZE - 1 // Highest data-space address.
)

var _emulator_defines = map[string]string{
	"RAMEND":     fmt.Sprintf("%v", RAMEND),
	"SRAM_SIZE":  fmt.Sprintf("%v", SRAM_SIZE),
	"FLASH_SIZE": fmt.Sprintf("%v", FLASH_SIZE),
}

// Emulator state. Core + flash + SRAM behind a bus trace.
type Emulator struct {
	Verbose    bool          // If set, enables verbose logging.
	*core.Core               // Reference to the core simulation.
	Program    *core.Program // Reference to the currently loaded program listing.

	Flash bus.Flash // Program memory.
	Sram  bus.Sram  // Data memory.
	Trace bus.Trace // Data bus access recorder.

	InitialSP uint16 // Stack pointer applied on Reset.
}

// New creates a new emulator, with the core fetching from flash and
// reaching SRAM through the bus trace.
func New() (emu *Emulator) {
	emu = &Emulator{
		Program:   &core.Program{},
		InitialSP: RAMEND,
	}

	emu.Sram.Capacity = SRAM_SIZE
	emu.Flash.Capacity = FLASH_SIZE

	emu.Trace.Bus = &emu.Sram
	emu.Core = core.New(&emu.Flash, &emu.Trace)
	emu.Trace.Clock = func() int { return emu.Core.Ticks }

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	vector := map[string]string{
		"IRQ_VECTOR": fmt.Sprintf("%v", emu.IrqVector),
	}

	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		maps.All(vector),
		emu.Core.Defines(),
	)
}

// Assemble assembles source with the emulator's defines predefined as
// equates, and loads the resulting listing.
func (emu *Emulator) Assemble(source io.Reader) (err error) {
	asm := &core.Assembler{Verbose: emu.Verbose}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	prog, err := asm.Parse(source)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset reloads flash from the program listing and returns the machine
// to its power-on state, with the configured initial stack pointer.
func (emu *Emulator) Reset() {
	emu.Core.Verbose = emu.Verbose

	emu.Flash.Load(emu.Program.Binary())
	emu.Sram.Reset()
	emu.Trace.Reset()
	emu.Core.Reset()
	emu.SP = emu.InitialSP
}

// LineNo returns the source line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Code returns the listing word at the executing instruction.
func (emu *Emulator) Code() uint16 {
	for addr, code := range emu.Program.Codes() {
		if addr == emu.PC {
			return code
		}
	}

	return 0
}

// Step advances the machine one clock cycle, tagging any error with
// the source line it arose on.
func (emu *Emulator) Step() (err error) {
	emu.Core.Verbose = emu.Verbose

	lineno := emu.LineNo()
	err = emu.Core.Step()
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Err: err}
	}

	return
}

// StepInstruction runs one whole instruction. It reports done when the
// instruction retires onto its own address, the idiom a halted program
// spins on.
func (emu *Emulator) StepInstruction() (done bool, err error) {
	emu.Core.Verbose = emu.Verbose

	pc := emu.PC
	lineno := emu.LineNo()

	err = emu.Core.StepInstruction()
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Err: err}
		return
	}

	done = emu.PC == pc

	return
}

// Run steps whole instructions until the program halts on a
// jump-to-self, an error surfaces, or the tick budget runs out.
func (emu *Emulator) Run(maxTicks int) (err error) {
	for {
		var done bool
		done, err = emu.StepInstruction()
		if done || err != nil {
			return
		}
		if emu.Ticks >= maxTicks {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}
	}
}
