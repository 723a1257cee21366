package bus

const (
	// SRAM_DEFAULT_CAPACITY is the default capacity in bytes for a new Sram.
	SRAM_DEFAULT_CAPACITY = 65536
)

// Sram is a byte-addressed data memory. The backing store allocates on
// first access; addresses wrap modulo the capacity, which models the
// address mirroring of a partially decoded bus.
type Sram struct {
	Capacity int

	Data []uint8
}

var _ Bus = (*Sram)(nil)

func (sram *Sram) mem() []uint8 {
	if sram.Data == nil {
		if sram.Capacity == 0 {
			sram.Capacity = SRAM_DEFAULT_CAPACITY
		}
		sram.Data = make([]uint8, sram.Capacity)
	}

	return sram.Data
}

// Read returns the byte at addr.
func (sram *Sram) Read(addr uint16) uint8 {
	mem := sram.mem()
	return mem[int(addr)%len(mem)]
}

// Write stores data at addr.
func (sram *Sram) Write(addr uint16, data uint8) {
	mem := sram.mem()
	mem[int(addr)%len(mem)] = data
}

// Reset zeros the memory.
func (sram *Sram) Reset() {
	clear(sram.mem())
}
