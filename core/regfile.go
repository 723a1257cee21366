package core

// Pointer pair base registers. Each pair is the little-endian 16-bit
// view of two adjacent cells: low byte in the even register.
const (
	REG_X = uint8(26) // X pair, r26/r27
	REG_Y = uint8(28) // Y pair, r28/r29
	REG_Z = uint8(30) // Z pair, r30/r31
)

// RegFile models the 32 general-purpose 8-bit registers. Reads are
// combinational against committed state; writes are staged and commit
// on the next Clock edge.
//
// Two independent write ports exist: the general 8-bit port (Stage) and
// the 16-bit pair port (StagePair) used for pointer write-back and word
// moves. Both may be staged in the same cycle. When they target an
// overlapping cell the hardware leaves the result undefined; this model
// resolves the collision deterministically by applying the pair port
// first and the general port second, so the general port wins.
type RegFile struct {
	cell [32]uint8

	genPending bool
	genSel     uint8
	genData    uint8

	pairPending bool
	pairSel     uint8
	pairData    uint16
}

// Read returns the committed contents of one cell.
func (rf *RegFile) Read(sel uint8) uint8 {
	return rf.cell[sel&0x1f]
}

// Read2 returns the committed contents of the two addressed cells.
func (rf *RegFile) Read2(a, b uint8) (byteA, byteB uint8) {
	return rf.Read(a), rf.Read(b)
}

// Pair returns the 16-bit value of the pair whose low cell is lo.
func (rf *RegFile) Pair(lo uint8) uint16 {
	return uint16(rf.Read(lo+1))<<8 | uint16(rf.Read(lo))
}

// Stage latches a write on the general port; it commits on Clock.
// A second Stage in the same cycle replaces the first.
func (rf *RegFile) Stage(sel uint8, data uint8) {
	rf.genPending = true
	rf.genSel = sel & 0x1f
	rf.genData = data
}

// StagePair latches a 16-bit write on the pair port; both halves commit
// together on Clock, low byte into cell lo.
func (rf *RegFile) StagePair(lo uint8, data uint16) {
	rf.pairPending = true
	rf.pairSel = lo & 0x1f
	rf.pairData = data
}

// Reset zeros every cell and drops any staged write.
func (rf *RegFile) Reset() {
	clear(rf.cell[:])
	rf.genPending = false
	rf.pairPending = false
}

// Clock commits the staged writes: pair port first, general port
// second. An overlapping target therefore resolves general-port-wins.
func (rf *RegFile) Clock() {
	if rf.pairPending {
		rf.cell[rf.pairSel] = uint8(rf.pairData)
		rf.cell[(rf.pairSel+1)&0x1f] = uint8(rf.pairData >> 8)
		rf.pairPending = false
	}
	if rf.genPending {
		rf.cell[rf.genSel] = rf.genData
		rf.genPending = false
	}
}
