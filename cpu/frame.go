package cpu

import (
	"errors"
)

// frame is the machine state captured when a call opens a stack frame
// and restored when the matching return closes it. Keeping it as a
// descriptor makes save and restore exact inverses slot for slot,
// rather than two push/pop sequences kept in sync by convention.
type frame struct {
	Regs [8]uint16 // R1..R8 at call time.
	Ret  uint16    // Return address: IP after the call's operands.
	Size uint16    // Bytes in the frame, counter slot included.
}

// push writes value at SP, moves SP down one slot, and accounts the
// bytes against the open frame.
func (cpu *Cpu) push(value uint16) (err error) {
	sp, err := cpu.GetRegister(SP)
	if err != nil {
		return
	}
	if sp < 2 {
		err = ErrStackOverflow
		return
	}
	err = cpu.memory.Write16(sp, value)
	if err != nil {
		return
	}
	err = cpu.setRegister(SP, sp-2)
	if err != nil {
		return
	}
	cpu.frameBytes += 2

	return
}

// pop moves SP up one slot and reads the value there. Popping past
// the initial top-of-memory slot is underflow, not a wrapped read.
func (cpu *Cpu) pop() (value uint16, err error) {
	sp, err := cpu.GetRegister(SP)
	if err != nil {
		return
	}
	if int(sp) >= cpu.memory.Len()-2 {
		err = ErrStackUnderflow
		return
	}
	sp += 2
	err = cpu.setRegister(SP, sp)
	if err != nil {
		return
	}
	cpu.frameBytes -= 2
	value, err = cpu.memory.Read16(sp)

	return
}

// saveFrame pushes the caller state for a call and opens a fresh
// frame: R1..R8, the return address, then the frame byte count. The
// +2 covers the counter's own slot. FP is left at the top of the
// completed save, and the byte counter restarts for the callee.
func (cpu *Cpu) saveFrame() (err error) {
	var fr frame
	for n := range fr.Regs {
		fr.Regs[n], err = cpu.GetRegister(R1 + RegisterName(n))
		if err != nil {
			return
		}
	}
	fr.Ret, err = cpu.GetRegister(IP)
	if err != nil {
		return
	}

	for _, reg := range fr.Regs {
		err = cpu.push(reg)
		if err != nil {
			return
		}
	}
	err = cpu.push(fr.Ret)
	if err != nil {
		return
	}
	fr.Size = cpu.frameBytes + 2
	err = cpu.push(fr.Size)
	if err != nil {
		return
	}

	sp, err := cpu.GetRegister(SP)
	if err != nil {
		return
	}
	err = cpu.setRegister(FP, sp)
	if err != nil {
		return
	}
	cpu.frameBytes = 0

	return
}

// restoreFrame discards anything the callee left above its saved
// frame, pops the descriptor back in exact reverse order, drops the
// caller's argument block, and walks FP back up by the recorded frame
// size. The size is applied exactly as pushed.
func (cpu *Cpu) restoreFrame() (err error) {
	fp, err := cpu.GetRegister(FP)
	if err != nil {
		return
	}
	err = cpu.setRegister(SP, fp)
	if err != nil {
		return
	}

	var fr frame
	fr.Size, err = cpu.pop()
	if err != nil {
		return
	}
	cpu.frameBytes = fr.Size
	fr.Ret, err = cpu.pop()
	if err != nil {
		return
	}
	for n := len(fr.Regs) - 1; n >= 0; n-- {
		fr.Regs[n], err = cpu.pop()
		if err != nil {
			return
		}
	}

	err = cpu.setRegister(IP, fr.Ret)
	if err != nil {
		return
	}
	for n := range fr.Regs {
		err = cpu.setRegister(R1+RegisterName(n), fr.Regs[n])
		if err != nil {
			return
		}
	}

	args, err := cpu.pop()
	if err != nil {
		return
	}
	for range args {
		_, err = cpu.pop()
		if err != nil {
			return
		}
	}

	next := int(fp) + int(fr.Size)
	if next > cpu.memory.Len()-2 {
		err = errors.Join(ErrStackUnderflow, ErrAddress(next))
		return
	}
	err = cpu.setRegister(FP, uint16(next))

	return
}
