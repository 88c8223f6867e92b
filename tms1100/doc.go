// Package tms1100 implements the Texas Instruments TMS1100 microcontroller
// and an assembler for its instruction set.
//
// The TMS1100 is a 4-bit machine with a 4-bit accumulator (A), a RAM address
// split across the X file and Y word registers, 2048 words of program ROM
// addressed by chapter (CA), page (PA), and a 6-bit polynomial program
// counter (PC), a one-level subroutine stack, and a single status line
// feeding the branch logic. Each instruction takes six oscillator cycles,
// worked through a fixed sub-cycle sequence: the instruction PLA drives the
// micro operations of the arithmetic set, while the branch, call, memory
// select, and I/O instructions are fixed-decoded.
//
// The assembler provides the standard TMS1100 mnemonic set, supporting
// macros, labels, equates, and compile-time expression evaluation, and lays
// consecutive instructions out along the program counter polynomial.
package tms1100
