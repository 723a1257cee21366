package core

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_PASS = AluOp(0)  // pass
	ALU_ADD  = AluOp(1)  // add
	ALU_ADC  = AluOp(2)  // adc
	ALU_SUB  = AluOp(3)  // sub
	ALU_SBC  = AluOp(4)  // sbc
	ALU_AND  = AluOp(5)  // and
	ALU_OR   = AluOp(6)  // or
	ALU_EOR  = AluOp(7)  // eor
	ALU_COM  = AluOp(8)  // com
	ALU_NEG  = AluOp(9)  // neg
	ALU_INC  = AluOp(10) // inc
	ALU_DEC  = AluOp(11) // dec
	ALU_LSR  = AluOp(12) // lsr
	ALU_ROR  = AluOp(13) // ror
	ALU_ASR  = AluOp(14) // asr
	ALU_SWAP = AluOp(15) // swap
	ALU_ADDW = AluOp(16) // addw
	ALU_ADCW = AluOp(17) // adcw
	ALU_SUBW = AluOp(18) // subw
	ALU_SBCW = AluOp(19) // sbcw
)

// Alu is the combinational 8-bit arithmetic/logic unit. Execute is a
// pure function of its inputs and the incoming status register.
//
// PairCycle is the side channel for the two-cycle word operations: the
// sequencer drives it with the cycle counter, and the register-file
// select synthesis consumes its low bit as the byte phase.
type Alu struct {
	PairCycle int
}

// PairPhase returns the byte phase (0 = low, 1 = high) of the active
// word-operation cycle.
func (alu *Alu) PairPhase() uint8 {
	return uint8(alu.PairCycle & 1)
}

// addFlags computes C, Z, N, V, S and optionally H for a + b + carry = r.
func addFlags(in Sreg, a, b, r uint8, carry uint8, half bool) (out Sreg) {
	out = in
	out = out.With(SREG_C, uint16(a)+uint16(b)+uint16(carry) > 0xff)
	out = out.With(SREG_Z, r == 0)
	out = out.With(SREG_N, r&0x80 != 0)
	out = out.With(SREG_V, (a^r)&(b^r)&0x80 != 0)
	out = out.With(SREG_S, out.N() != out.V())
	if half {
		out = out.With(SREG_H, (a&0x0f)+(b&0x0f)+carry > 0x0f)
	}
	return
}

// subFlags computes C, Z, N, V, S and optionally H for a - b - carry = r.
// With chain set, Z clears on a non-zero result but a zero result keeps
// the previous Z, which is how multi-byte compares propagate zero.
func subFlags(in Sreg, a, b, r uint8, carry uint8, half, chain bool) (out Sreg) {
	out = in
	out = out.With(SREG_C, uint16(b)+uint16(carry) > uint16(a))
	if chain {
		out = out.With(SREG_Z, r == 0 && in.Z())
	} else {
		out = out.With(SREG_Z, r == 0)
	}
	out = out.With(SREG_N, r&0x80 != 0)
	out = out.With(SREG_V, (a^b)&(a^r)&0x80 != 0)
	out = out.With(SREG_S, out.N() != out.V())
	if half {
		out = out.With(SREG_H, (b&0x0f)+carry > (a&0x0f))
	}
	return
}

// logicFlags computes Z, N, S and clears V for a bitwise result.
func logicFlags(in Sreg, r uint8) (out Sreg) {
	out = in
	out = out.With(SREG_Z, r == 0)
	out = out.With(SREG_N, r&0x80 != 0)
	out = out.With(SREG_V, false)
	out = out.With(SREG_S, out.N() != out.V())
	return
}

// shiftFlags computes C, Z, N, V=N^C, S for a right shift where c is the
// shifted-out bit.
func shiftFlags(in Sreg, r uint8, c bool) (out Sreg) {
	out = in
	out = out.With(SREG_C, c)
	out = out.With(SREG_Z, r == 0)
	out = out.With(SREG_N, r&0x80 != 0)
	out = out.With(SREG_V, out.N() != out.C())
	out = out.With(SREG_S, out.N() != out.V())
	return
}

// Execute performs one combinational ALU pass. The incoming status
// register supplies the carry for the carry-chained operations and the
// retained value for every flag an operation leaves untouched. Compare
// operations are the subtract operations; not committing the result is
// the sequencer's business, not the ALU's.
func (alu *Alu) Execute(op AluOp, a, b uint8, in Sreg) (result uint8, out Sreg) {
	out = in

	var carry uint8
	if in.C() {
		carry = 1
	}

	switch op {
	case ALU_PASS:
		result = b
	case ALU_ADD:
		result = a + b
		out = addFlags(in, a, b, result, 0, true)
	case ALU_ADC:
		result = a + b + carry
		out = addFlags(in, a, b, result, carry, true)
	case ALU_SUB:
		result = a - b
		out = subFlags(in, a, b, result, 0, true, false)
	case ALU_SBC:
		result = a - b - carry
		out = subFlags(in, a, b, result, carry, true, true)
	case ALU_AND:
		result = a & b
		out = logicFlags(in, result)
	case ALU_OR:
		result = a | b
		out = logicFlags(in, result)
	case ALU_EOR:
		result = a ^ b
		out = logicFlags(in, result)
	case ALU_COM:
		result = ^a
		out = logicFlags(in, result)
		out = out.With(SREG_C, true)
	case ALU_NEG:
		result = -a
		out = subFlags(in, 0, a, result, 0, false, false)
		out = out.With(SREG_H, (result|a)&0x08 != 0)
		out = out.With(SREG_V, result == 0x80)
		out = out.With(SREG_C, result != 0)
		out = out.With(SREG_S, out.N() != out.V())
	case ALU_INC:
		result = a + 1
		out = logicFlags(in, result)
		out = out.With(SREG_V, result == 0x80)
		out = out.With(SREG_S, out.N() != out.V())
	case ALU_DEC:
		result = a - 1
		out = logicFlags(in, result)
		out = out.With(SREG_V, result == 0x7f)
		out = out.With(SREG_S, out.N() != out.V())
	case ALU_LSR:
		result = a >> 1
		out = shiftFlags(in, result, a&1 != 0)
	case ALU_ROR:
		result = a >> 1
		if in.C() {
			result |= 0x80
		}
		out = shiftFlags(in, result, a&1 != 0)
	case ALU_ASR:
		result = a>>1 | a&0x80
		out = shiftFlags(in, result, a&1 != 0)
	case ALU_SWAP:
		result = a<<4 | a>>4
	case ALU_ADDW:
		// Low half of a word add: full add flags, half carry retained.
		result = a + b
		out = addFlags(in, a, b, result, 0, false)
	case ALU_ADCW:
		// High half of a word add: carry chained in, zero chained from
		// the low half, half carry retained.
		result = a + b + carry
		out = addFlags(in, a, b, result, carry, false)
		out = out.With(SREG_Z, result == 0 && in.Z())
	case ALU_SUBW:
		result = a - b
		out = subFlags(in, a, b, result, 0, false, false)
	case ALU_SBCW:
		result = a - b - carry
		out = subFlags(in, a, b, result, carry, false, true)
	}

	return
}
