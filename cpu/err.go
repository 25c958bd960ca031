package cpu

import (
	"errors"

	"github.com/eyepatchSamurAI/VirtualMachine16Bit/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrRegisterName   = errors.New(f("register name unknown"))
	ErrRegisterIndex  = errors.New(f("register index out of range"))
	ErrMemoryBounds   = errors.New(f("memory address out of range"))
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))

	// Program builder errors
	ErrOperandCount = errors.New(f("operand count mismatch"))
	ErrOperandRange = errors.New(f("operand out of range"))
	ErrImageSize    = errors.New(f("image does not fit in memory"))
)

// ErrOpcode reports a byte that decodes to no instruction.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("invalid opcode 0x%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress carries the faulting memory address.
type ErrAddress uint32

func (ea ErrAddress) Error() string {
	return f("address 0x%04x", uint32(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrExecute wraps an execution error with the failing instruction.
type ErrExecute struct {
	In  Instruction
	Err error
}

func (err *ErrExecute) Error() string {
	return f("%v: %v", err.In, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
