// Package emulator wraps the CPU core in a runnable machine: TOML
// configuration, program-image loading, a bounded run loop, and the
// single-step trace used by the interactive driver.
package emulator

import (
	"fmt"
	"io"

	"github.com/eyepatchSamurAI/VirtualMachine16Bit/cpu"
)

const (
	MEMORY_SIZE = 0x10000 // Default memory size: the full address space.
	DUMP_WINDOW = 8       // Default bytes shown at IP and SP in traces.
)

// Emulator drives a CPU.
type Emulator struct {
	Verbose bool // Set to enable verbose logging.
	*cpu.Cpu

	dumpWindow int
}

// NewEmulator creates an emulator from a machine configuration.
// Zeroed config fields fall back to the defaults.
func NewEmulator(config Config) (emu *Emulator) {
	if config.MemorySize == 0 {
		config.MemorySize = MEMORY_SIZE
	}
	if config.DumpWindow == 0 {
		config.DumpWindow = DUMP_WINDOW
	}

	emu = &Emulator{
		Cpu:        cpu.NewCpu(config.MemorySize),
		Verbose:    config.Verbose,
		dumpWindow: config.DumpWindow,
	}
	emu.Cpu.Verbose = config.Verbose

	return
}

// LoadImage reads a raw binary image and loads it at address zero.
func (emu *Emulator) LoadImage(r io.Reader) (n int, err error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return
	}
	err = emu.Cpu.Load(0, image)
	if err != nil {
		return
	}
	n = len(image)

	return
}

// Run steps the CPU until a fault or the step limit. A limit of zero
// or less runs until the CPU faults; the instruction set has no halt,
// so every program ends in an error the caller inspects.
func (emu *Emulator) Run(limit int) (steps int, err error) {
	for limit <= 0 || steps < limit {
		var ip uint16
		ip, err = emu.Cpu.GetRegister(cpu.IP)
		if err != nil {
			return
		}
		err = emu.Cpu.Step()
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
			return
		}
		steps++
	}

	return
}

// StepTrace performs one step and writes the register dump plus the
// memory windows at IP and the stack top, the interactive debug view.
func (emu *Emulator) StepTrace(w io.Writer) (err error) {
	ip, err := emu.Cpu.GetRegister(cpu.IP)
	if err != nil {
		return
	}
	err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Ip: ip, Err: err}
		return
	}

	fmt.Fprint(w, emu.Cpu.String())

	for _, name := range []cpu.RegisterName{cpu.IP, cpu.SP} {
		var addr uint16
		addr, err = emu.Cpu.GetRegister(name)
		if err != nil {
			return
		}
		window := emu.dumpWindow
		if int(addr)+window > emu.Cpu.MemorySize() {
			window = emu.Cpu.MemorySize() - int(addr)
		}
		var text string
		text, err = emu.Cpu.DumpMemory(addr, window)
		if err != nil {
			return
		}
		fmt.Fprintln(w, text)
	}

	return
}
