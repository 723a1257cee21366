package core

// SREG bit indices, avr-libc numbering. These are bit positions, not
// masks; the same values are predefined for assembler programs (bset,
// bclr, brbs, brbc operands).
const (
	SREG_C = uint8(0) // carry
	SREG_Z = uint8(1) // zero
	SREG_N = uint8(2) // negative
	SREG_V = uint8(3) // two's-complement overflow
	SREG_S = uint8(4) // sign, N xor V
	SREG_H = uint8(5) // half carry
	SREG_T = uint8(6) // bit copy storage
	SREG_I = uint8(7) // interrupt enable
)

// Sreg is the 8-bit status register. Arithmetic and logic operations
// recompute only the flags they declare; untouched flags keep their
// prior value.
type Sreg uint8

// Bit reports whether status bit n is set.
func (s Sreg) Bit(n uint8) bool {
	return (s>>n)&1 != 0
}

// With returns the status register with bit n forced to the given state.
func (s Sreg) With(n uint8, set bool) Sreg {
	if set {
		return s | Sreg(1)<<n
	}
	return s &^ (Sreg(1) << n)
}

// C reports the carry flag.
func (s Sreg) C() bool { return s.Bit(SREG_C) }

// Z reports the zero flag.
func (s Sreg) Z() bool { return s.Bit(SREG_Z) }

// N reports the negative flag.
func (s Sreg) N() bool { return s.Bit(SREG_N) }

// V reports the two's-complement overflow flag.
func (s Sreg) V() bool { return s.Bit(SREG_V) }

// S reports the sign flag.
func (s Sreg) S() bool { return s.Bit(SREG_S) }

// H reports the half-carry flag.
func (s Sreg) H() bool { return s.Bit(SREG_H) }

// T reports the bit copy storage flag.
func (s Sreg) T() bool { return s.Bit(SREG_T) }

// I reports the interrupt enable flag.
func (s Sreg) I() bool { return s.Bit(SREG_I) }

// String renders the flags MSB first, set bits as their letter and
// clear bits as '-', e.g. "I--S---C".
func (s Sreg) String() (text string) {
	letters := "CZNVSHTI"
	for n := 7; n >= 0; n-- {
		if s.Bit(uint8(n)) {
			text += string(letters[n])
		} else {
			text += "-"
		}
	}
	return
}
