package cpu

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	MEMORY_LIMIT = 0x10000 // Full 16-bit address space.
)

// Memory is a fixed-size, zero-initialized, byte-addressable store.
// Every 16-bit access is big-endian, matching the instruction operand
// encoding.
type Memory struct {
	cells []byte
}

// NewMemory creates a zeroed memory of the given size. Sizes above
// MEMORY_LIMIT are clamped; a 16-bit register cannot address them.
func NewMemory(size uint) (mem *Memory) {
	size = min(size, MEMORY_LIMIT)
	mem = &Memory{
		cells: make([]byte, size),
	}

	return
}

// Len returns the memory size in bytes.
func (mem *Memory) Len() int {
	return len(mem.cells)
}

// check widens the address so the addr+width-1 access cannot wrap.
func (mem *Memory) check(addr uint16, width int) (err error) {
	if int(addr)+width > len(mem.cells) {
		err = errors.Join(ErrMemoryBounds, ErrAddress(addr))
	}
	return
}

// Read8 returns the byte at addr.
func (mem *Memory) Read8(addr uint16) (value uint8, err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}
	value = mem.cells[addr]
	return
}

// Write8 stores value at addr.
func (mem *Memory) Write8(addr uint16, value uint8) (err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}
	mem.cells[addr] = value
	return
}

// Read16 returns the 16-bit value at addr, most significant byte
// first.
func (mem *Memory) Read16(addr uint16) (value uint16, err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}
	value = (uint16(mem.cells[addr]) << 8) | uint16(mem.cells[int(addr)+1])
	return
}

// Write16 stores value at addr, most significant byte first.
func (mem *Memory) Write16(addr uint16, value uint16) (err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}
	mem.cells[addr] = uint8(value >> 8)
	mem.cells[int(addr)+1] = uint8(value & 0xff)
	return
}

// ViewAt returns a read-only copy of n bytes starting at addr.
func (mem *Memory) ViewAt(addr uint16, n int) (view []byte, err error) {
	err = mem.check(addr, n)
	if err != nil {
		return
	}
	view = slices.Clone(mem.cells[addr : int(addr)+n])
	return
}

// Dump returns a one-line hex view in the form
// "0x0100: 0x19 0x03 ...".
func (mem *Memory) Dump(addr uint16, n int) (text string, err error) {
	view, err := mem.ViewAt(addr, n)
	if err != nil {
		return
	}

	hexed := make([]string, len(view))
	for n, b := range view {
		hexed[n] = fmt.Sprintf("0x%02x", b)
	}
	text = fmt.Sprintf("0x%04x: %v", addr, strings.Join(hexed, " "))

	return
}
