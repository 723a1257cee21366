// Package core implements the execution engine of an AVR-class 8-bit CPU
// and its assembler.
//
// The engine models the instruction decode/sequencing path cycle by cycle:
// a 32-cell register file with the X/Y/Z pointer pairs, a combinational
// 8-bit ALU with SREG flag computation, the effective-address unit for the
// indirect addressing modes, and the control sequencer that owns PC, SP,
// the per-instruction cycle counter, and the external bus strobes. State
// advances in lock step, one clock per Step call; everything observable
// (registers, flags, pins) can be inspected between cycles.
//
// The assembler provides a single-pass macro assembler for the instruction
// set, supporting macros, labels, equates, and compile-time expression
// evaluation.
package core
