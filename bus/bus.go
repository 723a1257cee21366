// Package bus provides the memory devices and bus plumbing for the
// uavr core: byte-addressed data SRAM, word-addressed program flash,
// and a tracing middleware that records accesses as they pass through.
package bus

// Bus defines the data-space access interface the core drives. An
// access never faults; what an unpopulated address decodes to is the
// implementation's business.
type Bus interface {
	// Read returns the byte at a data-space address.
	Read(addr uint16) uint8
	// Write stores a byte at a data-space address.
	Write(addr uint16, data uint8)
}

// Fetcher defines the program-memory interface the core fetches code
// words through. Program memory is word addressed and read only from
// the core's side.
type Fetcher interface {
	// Fetch returns the code word at a word address.
	Fetch(addr uint16) uint16
}
