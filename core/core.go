package core

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/uavr/bus"
)

// Bus is a data-space bus interface.
type Bus bus.Bus

// Fetcher is a program-memory fetch interface.
type Fetcher bus.Fetcher

// State is a sequencer state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_FETCH   = State(0) // fetch
	STATE_EXECUTE = State(1) // execute
	STATE_SKIP    = State(2) // skip
	STATE_IRQ     = State(3) // irq
)

var _core_defines = map[string]string{
	"SREG_C": fmt.Sprintf("%d", SREG_C),
	"SREG_Z": fmt.Sprintf("%d", SREG_Z),
	"SREG_N": fmt.Sprintf("%d", SREG_N),
	"SREG_V": fmt.Sprintf("%d", SREG_V),
	"SREG_S": fmt.Sprintf("%d", SREG_S),
	"SREG_H": fmt.Sprintf("%d", SREG_H),
	"SREG_T": fmt.Sprintf("%d", SREG_T),
	"SREG_I": fmt.Sprintf("%d", SREG_I),
	"XL":     "r26",
	"XH":     "r27",
	"YL":     "r28",
	"YH":     "r29",
	"ZL":     "r30",
	"ZH":     "r31",
}

// Pins is the data-space bus snapshot for one clock cycle. RD or WR
// frames the single cycle an access strobe is active; outside that
// window all fields read zero.
type Pins struct {
	Addr uint16
	Data uint8
	RD   bool
	WR   bool
}

// Core is the simulation context for one 8-bit processor core. It
// advances in lock-step: every Step is one clock cycle, reads observe
// the state the previous cycle committed, and all writes land on the
// trailing edge.
type Core struct {
	Verbose bool // Set to enable verbose logging.

	PC   uint16 // Program counter, in words.
	SP   uint16 // Stack pointer, in data-space bytes.
	Sreg Sreg   // Status register.

	Regs RegFile // Register file.
	Alu  Alu     // Arithmetic/logic unit.

	Irq       [2]bool // External interrupt request lines, level held.
	IrqVector uint16  // Interrupt entry address, in words.

	Pins Pins // Data-space bus snapshot for the current cycle.

	State State // Sequencer state.
	Cycle int   // Cycle index within the current instruction.
	Ticks int   // Clock cycle counter.

	fetcher Fetcher
	bus     Bus

	// Datapath latches, valid between cycles of one instruction.
	inst Inst
	ea   uint16
	ret  uint16
	next uint16
}

// New creates a core fetching code words from fetcher and reaching
// data space through bus.
func New(fetcher Fetcher, bus Bus) (core *Core) {
	core = &Core{
		IrqVector: 0x0001,

		fetcher: fetcher,
		bus:     bus,
	}

	return
}

// Defines for the core
func (core *Core) Defines() iter.Seq2[string, string] {
	return maps.All(_core_defines)
}

// Reset returns the core to its power-on state. Configuration (the
// interrupt vector, verbosity, the attached memories) survives;
// everything architectural clears.
func (core *Core) Reset() {
	if core.Verbose {
		log.Printf("core: reset")
	}

	core.PC = 0
	core.SP = 0
	core.Sreg = 0
	core.Regs.Reset()
	core.Irq = [2]bool{}
	core.Pins = Pins{}
	core.State = STATE_FETCH
	core.Cycle = 0
	core.Ticks = 0
	core.inst = Inst{}
	core.ea = 0
	core.ret = 0
	core.next = 0
}

// SetIrq drives one of the two external interrupt request lines. The
// lines are level inputs: both held high together request entry, and a
// line stays asserted until driven low again.
func (core *Core) SetIrq(line int, level bool) {
	core.Irq[line&1] = level
}

// Inst returns the instruction latched by the most recent fetch.
func (core *Core) Inst() Inst {
	return core.inst
}

// String returns the current core state as a string.
func (core *Core) String() (text string) {
	text = fmt.Sprintf("   pc: %04x  sp: %04x  sreg: %v  ticks: %v\n",
		core.PC, core.SP, core.Sreg, core.Ticks)
	for n := range 32 {
		if n%8 == 0 {
			text += fmt.Sprintf("  r%-2d:", n)
		}
		text += fmt.Sprintf(" %02x", core.Regs.Read(uint8(n)))
		if n%8 == 7 {
			text += "\n"
		}
	}

	return
}

// busRead drives a one-cycle read strobe and returns the data the bus
// presented.
func (core *Core) busRead(addr uint16) (data uint8) {
	data = core.bus.Read(addr)
	core.Pins = Pins{Addr: addr, Data: data, RD: true}
	return
}

// busWrite drives a one-cycle write strobe.
func (core *Core) busWrite(addr uint16, data uint8) {
	core.bus.Write(addr, data)
	core.Pins = Pins{Addr: addr, Data: data, WR: true}
}

// retire commits the final cycle of an instruction: the program
// counter moves and the sequencer returns to fetch.
func (core *Core) retire(next uint16) {
	core.PC = next
	core.State = STATE_FETCH
}

// retireSkip is retire for a taken skip. The shadowed instruction
// still has to be fetched and sized before it can be stepped over, so
// the sequencer detours through the skip state.
func (core *Core) retireSkip(next uint16) {
	core.PC = next
	core.State = STATE_SKIP
	core.Cycle = 0
}

// Step advances the core by exactly one clock cycle. The returned
// error reports an undecodable instruction word; the word costs one
// cycle, the program counter steps over it, and the core remains
// runnable.
func (core *Core) Step() (err error) {
	core.Pins = Pins{}

	switch core.State {
	case STATE_FETCH:
		if core.Irq[0] && core.Irq[1] && core.Sreg.I() {
			core.ret = core.PC
			core.State = STATE_IRQ
			core.Cycle = 0
			core.stepIrq()
			break
		}

		word := core.fetcher.Fetch(core.PC)
		core.inst = Decode(word)
		if core.inst.Shape == SHAPE_ILLEGAL {
			if core.Verbose {
				log.Printf("%04x: %v", core.PC, core.inst)
			}
			core.PC++
			err = ErrIllegalOpcode(word)
			break
		}
		if core.inst.Words == 2 {
			core.inst.Extend(core.fetcher.Fetch(core.PC + 1))
		}
		if core.Verbose {
			log.Printf("%04x: %v", core.PC, core.inst)
		}
		core.State = STATE_EXECUTE
		core.Cycle = 0
		core.execute()

	case STATE_EXECUTE:
		core.Cycle++
		core.execute()

	case STATE_SKIP:
		core.Cycle++
		core.stepSkip()

	case STATE_IRQ:
		core.Cycle++
		core.stepIrq()
	}

	core.Regs.Clock()
	core.Ticks++

	return
}

// StepInstruction clocks the core until the instruction in flight
// retires. From the fetch state it runs exactly one instruction,
// including any trailing skip cycles, or one interrupt entry.
func (core *Core) StepInstruction() (err error) {
	for {
		err = core.Step()
		if err != nil || core.State == STATE_FETCH {
			return
		}
	}
}

// stepSkip consumes the instruction shadowed by a taken skip. A
// one-word shadow costs one cycle, a two-word shadow costs two.
func (core *Core) stepSkip() {
	switch core.Cycle {
	case 1:
		over := Decode(core.fetcher.Fetch(core.PC))
		if core.Verbose {
			log.Printf("%04x: skip %v", core.PC, over)
		}
		if over.Words == 1 {
			core.retire(core.PC + 1)
		}
	default:
		core.retire(core.PC + 2)
	}
}

// stepIrq runs the four-cycle interrupt entry: the return address is
// pushed low byte first, the interrupt enable clears, and execution
// lands on the vector.
func (core *Core) stepIrq() {
	switch core.Cycle {
	case 0:
		if core.Verbose {
			log.Printf("%04x: irq", core.PC)
		}
	case 1:
		core.busWrite(core.SP, uint8(core.ret))
		core.SP--
	case 2:
		core.busWrite(core.SP, uint8(core.ret>>8))
		core.SP--
	case 3:
		core.Sreg = core.Sreg.With(SREG_I, false)
		core.retire(core.IrqVector)
	}
}

// execute runs one cycle of the latched instruction's datapath
// routing. The final cycle of every route retires.
func (core *Core) execute() {
	inst := &core.inst

	switch inst.Shape {
	case SHAPE_NOP:
		core.retire(core.PC + 1)

	case SHAPE_MOVW:
		core.Regs.StagePair(inst.D, core.Regs.Pair(inst.R))
		core.retire(core.PC + 1)

	case SHAPE_CPC, SHAPE_CP, SHAPE_SBC, SHAPE_SUB, SHAPE_ADD,
		SHAPE_ADC, SHAPE_AND, SHAPE_EOR, SHAPE_OR, SHAPE_MOV:
		a, b := core.Regs.Read2(inst.D, inst.R)
		result, sreg := core.Alu.Execute(inst.Op, a, b, core.Sreg)
		core.Sreg = sreg
		if inst.Shape != SHAPE_CP && inst.Shape != SHAPE_CPC {
			core.Regs.Stage(inst.D, result)
		}
		core.retire(core.PC + 1)

	case SHAPE_CPI, SHAPE_SBCI, SHAPE_SUBI, SHAPE_ORI, SHAPE_ANDI, SHAPE_LDI:
		a := core.Regs.Read(inst.D)
		result, sreg := core.Alu.Execute(inst.Op, a, uint8(inst.K), core.Sreg)
		core.Sreg = sreg
		if inst.Shape != SHAPE_CPI {
			core.Regs.Stage(inst.D, result)
		}
		core.retire(core.PC + 1)

	case SHAPE_COM, SHAPE_NEG, SHAPE_SWAP, SHAPE_INC, SHAPE_ASR,
		SHAPE_LSR, SHAPE_ROR, SHAPE_DEC:
		a := core.Regs.Read(inst.D)
		result, sreg := core.Alu.Execute(inst.Op, a, 0, core.Sreg)
		core.Sreg = sreg
		core.Regs.Stage(inst.D, result)
		core.retire(core.PC + 1)

	case SHAPE_ADIW, SHAPE_SBIW:
		// Low byte on the first cycle, high byte with chained carry
		// and zero on the second. The staged low result commits on the
		// clock edge between them.
		core.Alu.PairCycle = core.Cycle
		sel := inst.PairSel() + core.Alu.PairPhase()
		op := inst.Op
		b := uint8(inst.K)
		if core.Cycle == 1 {
			b = 0
			if op == ALU_ADDW {
				op = ALU_ADCW
			} else {
				op = ALU_SBCW
			}
		}
		result, sreg := core.Alu.Execute(op, core.Regs.Read(sel), b, core.Sreg)
		core.Sreg = sreg
		core.Regs.Stage(sel, result)
		if core.Cycle == 1 {
			core.retire(core.PC + 1)
		}

	case SHAPE_LD:
		switch core.Cycle {
		case 0:
			addr, update, updated := ComputeAddr(inst.Mode, core.Regs.Pair(inst.Ptr), inst.Q)
			core.ea = addr
			if updated {
				core.Regs.StagePair(inst.Ptr, update)
			}
		case 1:
			core.Regs.Stage(inst.D, core.busRead(core.ea))
			core.retire(core.PC + 1)
		}

	case SHAPE_ST:
		switch core.Cycle {
		case 0:
			addr, update, updated := ComputeAddr(inst.Mode, core.Regs.Pair(inst.Ptr), inst.Q)
			core.ea = addr
			if updated {
				core.Regs.StagePair(inst.Ptr, update)
			}
		case 1:
			core.busWrite(core.ea, core.Regs.Read(inst.D))
			core.retire(core.PC + 1)
		}

	case SHAPE_LDS:
		switch core.Cycle {
		case 0:
			core.ea = inst.K
		case 1:
			core.Regs.Stage(inst.D, core.busRead(core.ea))
			core.retire(core.PC + 2)
		}

	case SHAPE_STS:
		switch core.Cycle {
		case 0:
			core.ea = inst.K
		case 1:
			core.busWrite(core.ea, core.Regs.Read(inst.D))
			core.retire(core.PC + 2)
		}

	case SHAPE_POP:
		if core.Cycle == 1 {
			core.SP++
			core.Regs.Stage(inst.D, core.busRead(core.SP))
			core.retire(core.PC + 1)
		}

	case SHAPE_PUSH:
		if core.Cycle == 1 {
			core.busWrite(core.SP, core.Regs.Read(inst.D))
			core.SP--
			core.retire(core.PC + 1)
		}

	case SHAPE_RJMP, SHAPE_IJMP:
		switch core.Cycle {
		case 0:
			if inst.Shape == SHAPE_RJMP {
				core.next = core.PC + 1 + inst.K
			} else {
				core.next = core.Regs.Pair(REG_Z)
			}
		case 1:
			core.retire(core.next)
		}

	case SHAPE_JMP:
		switch core.Cycle {
		case 0:
			core.next = inst.K
		case 2:
			core.retire(core.next)
		}

	case SHAPE_RCALL, SHAPE_ICALL:
		switch core.Cycle {
		case 0:
			core.ret = core.PC + 1
			if inst.Shape == SHAPE_RCALL {
				core.next = core.PC + 1 + inst.K
			} else {
				core.next = core.Regs.Pair(REG_Z)
			}
		case 1:
			core.busWrite(core.SP, uint8(core.ret))
			core.SP--
		case 2:
			core.busWrite(core.SP, uint8(core.ret>>8))
			core.SP--
			core.retire(core.next)
		}

	case SHAPE_CALL:
		switch core.Cycle {
		case 0:
			core.ret = core.PC + 2
			core.next = inst.K
		case 2:
			core.busWrite(core.SP, uint8(core.ret))
			core.SP--
		case 3:
			core.busWrite(core.SP, uint8(core.ret>>8))
			core.SP--
			core.retire(core.next)
		}

	case SHAPE_RET, SHAPE_RETI:
		switch core.Cycle {
		case 2:
			core.SP++
			core.ret = uint16(core.busRead(core.SP)) << 8
		case 3:
			core.SP++
			core.ret |= uint16(core.busRead(core.SP))
			if inst.Shape == SHAPE_RETI {
				core.Sreg = core.Sreg.With(SREG_I, true)
			}
			core.retire(core.ret)
		}

	case SHAPE_BRBS, SHAPE_BRBC:
		switch core.Cycle {
		case 0:
			taken := core.Sreg.Bit(inst.B)
			if inst.Shape == SHAPE_BRBC {
				taken = !taken
			}
			if taken {
				core.next = core.PC + 1 + inst.K
			} else {
				core.retire(core.PC + 1)
			}
		case 1:
			core.retire(core.next)
		}

	case SHAPE_CPSE:
		a, b := core.Regs.Read2(inst.D, inst.R)
		if a == b {
			core.retireSkip(core.PC + 1)
		} else {
			core.retire(core.PC + 1)
		}

	case SHAPE_SBRC, SHAPE_SBRS:
		set := core.Regs.Read(inst.D)&(1<<inst.B) != 0
		if set == (inst.Shape == SHAPE_SBRS) {
			core.retireSkip(core.PC + 1)
		} else {
			core.retire(core.PC + 1)
		}

	case SHAPE_BSET:
		core.Sreg = core.Sreg.With(inst.B, true)
		core.retire(core.PC + 1)

	case SHAPE_BCLR:
		core.Sreg = core.Sreg.With(inst.B, false)
		core.retire(core.PC + 1)

	case SHAPE_BLD:
		value := core.Regs.Read(inst.D)
		if core.Sreg.T() {
			value |= 1 << inst.B
		} else {
			value &^= 1 << inst.B
		}
		core.Regs.Stage(inst.D, value)
		core.retire(core.PC + 1)

	case SHAPE_BST:
		core.Sreg = core.Sreg.With(SREG_T, core.Regs.Read(inst.D)&(1<<inst.B) != 0)
		core.retire(core.PC + 1)
	}
}
