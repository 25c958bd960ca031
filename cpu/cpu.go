package cpu

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Cpu is the execution engine: a register file and the memory it
// exclusively owns, driven one instruction at a time by Step.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	mu         sync.Mutex
	memory     *Memory
	registers  [REGISTER_COUNT]uint16
	frameBytes uint16 // Bytes pushed since the current frame opened.
}

// NewCpu creates a CPU owning a zeroed memory of the given size. SP
// and FP start at the last complete 16-bit slot, and the stack grows
// downward from there.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		memory: NewMemory(size),
	}

	if top := cpu.memory.Len() - 2; top >= 0 {
		cpu.registers[SP] = uint16(top)
		cpu.registers[FP] = uint16(top)
	}

	return
}

// MemorySize returns the size of the owned memory in bytes.
func (cpu *Cpu) MemorySize() int {
	return cpu.memory.Len()
}

// Load copies a program image into memory starting at addr.
func (cpu *Cpu) Load(addr uint16, image []byte) (err error) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	if int(addr)+len(image) > cpu.memory.Len() {
		err = errors.Join(ErrImageSize, ErrAddress(addr))
		return
	}
	for n, b := range image {
		err = cpu.memory.Write8(addr+uint16(n), b)
		if err != nil {
			return
		}
	}
	return
}

// ViewMemoryAt returns a read-only copy of n bytes at addr.
func (cpu *Cpu) ViewMemoryAt(addr uint16, n int) (view []byte, err error) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	return cpu.memory.ViewAt(addr, n)
}

// DumpMemory returns a one-line hex view of n bytes at addr.
func (cpu *Cpu) DumpMemory(addr uint16, n int) (text string, err error) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	return cpu.memory.Dump(addr, n)
}

// String returns the current register state, one "name: 0xNNNN" line
// per register.
func (cpu *Cpu) String() (text string) {
	for n := range REGISTER_COUNT {
		name := RegisterName(n)
		text += fmt.Sprintf("% 3v: 0x%04x\n", name, cpu.registers[name])
	}

	return
}

// advance moves IP forward n bytes. The sum is widened before the
// check so running off the top of memory is an error, never a wrap.
func (cpu *Cpu) advance(n int) (err error) {
	ip, err := cpu.GetRegister(IP)
	if err != nil {
		return
	}
	next := int(ip) + n
	if next > cpu.memory.Len() || next >= MEMORY_LIMIT {
		err = errors.Join(ErrMemoryBounds, ErrAddress(next))
		return
	}
	err = cpu.setRegister(IP, uint16(next))
	return
}

// fetch reads the byte at IP and advances IP past it.
func (cpu *Cpu) fetch() (value uint8, err error) {
	ip, err := cpu.GetRegister(IP)
	if err != nil {
		return
	}
	value, err = cpu.memory.Read8(ip)
	if err != nil {
		return
	}
	err = cpu.advance(1)
	return
}

// fetch16 reads the big-endian pair at IP and advances IP past it.
func (cpu *Cpu) fetch16() (value uint16, err error) {
	ip, err := cpu.GetRegister(IP)
	if err != nil {
		return
	}
	value, err = cpu.memory.Read16(ip)
	if err != nil {
		return
	}
	err = cpu.advance(2)
	return
}

// fetchRegisterIndex reads one operand byte reduced modulo the
// register count. Every byte value aliases onto some register; the
// encoding contract requires this instead of failing on bytes >= 12.
func (cpu *Cpu) fetchRegisterIndex() (name RegisterName, err error) {
	value, err := cpu.fetch()
	if err != nil {
		return
	}
	name, err = getRegisterName(value % REGISTER_COUNT)
	return
}

// Step fetches, decodes, and executes one instruction. Exactly one
// Step runs at a time; inspection interleaves between steps.
//
// The opcode byte is decoded before IP advances, so a byte outside
// the instruction set fails without mutating any machine state.
func (cpu *Cpu) Step() (err error) {
	cpu.mu.Lock()
	defer cpu.mu.Unlock()

	ip, err := cpu.GetRegister(IP)
	if err != nil {
		return
	}
	opcode, err := cpu.memory.Read8(ip)
	if err != nil {
		return
	}
	in, err := Decode(opcode)
	if err != nil {
		return
	}
	err = cpu.advance(1)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", ip, in)
	}

	return cpu.execute(in)
}

// execute applies a single decoded instruction. Operand fetch order
// is part of the encoding contract and must not be reordered.
func (cpu *Cpu) execute(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrExecute{In: in, Err: err}
		}
	}()

	switch in {
	case MOVE_LIT_REG:
		var literal uint16
		var dst RegisterName
		literal, err = cpu.fetch16()
		if err != nil {
			return
		}
		dst, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		err = cpu.setRegister(dst, literal)

	case MOVE_REG_REG:
		var src, dst RegisterName
		src, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		dst, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var value uint16
		value, err = cpu.GetRegister(src)
		if err != nil {
			return
		}
		err = cpu.setRegister(dst, value)

	case MOVE_REG_MEM:
		var src RegisterName
		src, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var value uint16
		value, err = cpu.GetRegister(src)
		if err != nil {
			return
		}
		var addr uint16
		addr, err = cpu.fetch16()
		if err != nil {
			return
		}
		err = cpu.memory.Write16(addr, value)

	case MOVE_MEM_REG:
		var addr uint16
		addr, err = cpu.fetch16()
		if err != nil {
			return
		}
		var dst RegisterName
		dst, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var value uint16
		value, err = cpu.memory.Read16(addr)
		if err != nil {
			return
		}
		err = cpu.setRegister(dst, value)

	case ADD_REG_REG:
		var a, b RegisterName
		a, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		b, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var va, vb uint16
		va, err = cpu.GetRegister(a)
		if err != nil {
			return
		}
		vb, err = cpu.GetRegister(b)
		if err != nil {
			return
		}
		// uint16 addition wraps modulo 65536.
		err = cpu.setRegister(ACC, va+vb)

	case JMP_NOT_EQ:
		var value, addr uint16
		value, err = cpu.fetch16()
		if err != nil {
			return
		}
		addr, err = cpu.fetch16()
		if err != nil {
			return
		}
		var acc uint16
		acc, err = cpu.GetRegister(ACC)
		if err != nil {
			return
		}
		if acc != value {
			err = cpu.setRegister(IP, addr)
		}

	case PSH_LIT:
		var value uint16
		value, err = cpu.fetch16()
		if err != nil {
			return
		}
		err = cpu.push(value)

	case PSH_REG:
		var src RegisterName
		src, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var value uint16
		value, err = cpu.GetRegister(src)
		if err != nil {
			return
		}
		err = cpu.push(value)

	case POP:
		var dst RegisterName
		dst, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var value uint16
		value, err = cpu.pop()
		if err != nil {
			return
		}
		err = cpu.setRegister(dst, value)

	case CAL_LIT:
		var addr uint16
		addr, err = cpu.fetch16()
		if err != nil {
			return
		}
		err = cpu.saveFrame()
		if err != nil {
			return
		}
		err = cpu.setRegister(IP, addr)

	case CAL_REG:
		var src RegisterName
		src, err = cpu.fetchRegisterIndex()
		if err != nil {
			return
		}
		var addr uint16
		addr, err = cpu.GetRegister(src)
		if err != nil {
			return
		}
		err = cpu.saveFrame()
		if err != nil {
			return
		}
		err = cpu.setRegister(IP, addr)

	case RET:
		err = cpu.restoreFrame()

	default:
		err = ErrOpcode(byte(in))
	}

	return
}
