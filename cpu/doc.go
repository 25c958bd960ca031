// Package cpu implements a 16-bit register virtual machine: a
// byte-addressable memory, a twelve-register file, a closed
// instruction set, and the fetch/decode/execute engine with a
// downward-growing stack and call-frame save/restore.
//
// All 16-bit memory traffic is big-endian, matching the instruction
// operand encoding. The engine owns its memory exclusively; debug
// collaborators get read-only views between steps.
package cpu
