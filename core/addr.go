package core

// AddrMode selects how the memory address unit forms a data-space
// address from a pointer register pair.
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	MODE_PLAIN   = AddrMode(0) // plain
	MODE_POSTINC = AddrMode(1) // postinc
	MODE_PREDEC  = AddrMode(2) // predec
	MODE_DISP    = AddrMode(3) // disp
)

// ComputeAddr forms the effective data-space address for a pointer
// access. For the updating modes it also returns the new pointer value
// to stage back into the register file; the displacement mode never
// writes back. All arithmetic wraps at 16 bits.
func ComputeAddr(mode AddrMode, ptr uint16, q uint8) (addr uint16, update uint16, updated bool) {
	switch mode {
	case MODE_POSTINC:
		addr = ptr
		update = ptr + 1
		updated = true
	case MODE_PREDEC:
		addr = ptr - 1
		update = addr
		updated = true
	case MODE_DISP:
		addr = ptr + uint16(q)
	default:
		addr = ptr
	}
	return
}
