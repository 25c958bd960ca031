package emulator

import (
	"github.com/eyepatchSamurAI/VirtualMachine16Bit/translate"
)

var f = translate.From

// ErrRuntime locates a runtime fault at the instruction pointer that
// was current when the step began.
type ErrRuntime struct {
	Ip  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip 0x%04x %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
