package bus

import (
	"fmt"
)

// TraceOp is a traced access type.
type TraceOp int

//go:generate go tool stringer -linecomment -type=TraceOp
const (
	TRACE_RD = TraceOp(0) // rd
	TRACE_WR = TraceOp(1) // wr
)

// Event is one recorded bus access.
type Event struct {
	Tick int
	Op   TraceOp
	Addr uint16
	Data uint8
}

// String returns the event as one trace listing line.
func (ev Event) String() string {
	return fmt.Sprintf("%8d %v %04x %02x", ev.Tick, ev.Op, ev.Addr, ev.Data)
}

// Trace is a bus middleware that records every access passing through
// it to the wrapped bus. Clock, when set, timestamps events; without
// it events number from zero in arrival order.
type Trace struct {
	Bus   Bus
	Clock func() int

	events []Event
}

var _ Bus = (*Trace)(nil)

func (trace *Trace) stamp() int {
	if trace.Clock != nil {
		return trace.Clock()
	}

	return len(trace.events)
}

// Read passes through to the wrapped bus and records the access.
func (trace *Trace) Read(addr uint16) (data uint8) {
	data = trace.Bus.Read(addr)
	trace.events = append(trace.events, Event{Tick: trace.stamp(), Op: TRACE_RD, Addr: addr, Data: data})
	return
}

// Write records the access and passes through to the wrapped bus.
func (trace *Trace) Write(addr uint16, data uint8) {
	trace.Bus.Write(addr, data)
	trace.events = append(trace.events, Event{Tick: trace.stamp(), Op: TRACE_WR, Addr: addr, Data: data})
}

// Events returns the recorded accesses in order.
func (trace *Trace) Events() []Event {
	return trace.events
}

// Reset drops the recorded accesses.
func (trace *Trace) Reset() {
	trace.events = nil
}
