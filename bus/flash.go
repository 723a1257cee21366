package bus

const (
	// FLASH_DEFAULT_CAPACITY is the default capacity in words for a new Flash.
	FLASH_DEFAULT_CAPACITY = 65536
)

// Flash is a word-addressed program memory. Unprogrammed words read as
// zero, which the core executes as nop; fetches wrap modulo the
// capacity.
type Flash struct {
	Capacity int

	Data []uint16
}

var _ Fetcher = (*Flash)(nil)

func (flash *Flash) mem() []uint16 {
	if flash.Data == nil {
		if flash.Capacity == 0 {
			flash.Capacity = FLASH_DEFAULT_CAPACITY
		}
		flash.Data = make([]uint16, flash.Capacity)
	}

	return flash.Data
}

// Load programs the image starting at word address zero and erases
// everything past it.
func (flash *Flash) Load(image []uint16) {
	mem := flash.mem()
	clear(mem)
	copy(mem, image)
}

// Fetch returns the code word at addr.
func (flash *Flash) Fetch(addr uint16) uint16 {
	mem := flash.mem()
	return mem[int(addr)%len(mem)]
}
