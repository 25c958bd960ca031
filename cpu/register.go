package cpu

// RegisterName identifies one 16-bit register. The enum value is the
// register's index in the file.
type RegisterName int

//go:generate go tool stringer -linecomment -type=RegisterName
const (
	IP  = RegisterName(0)  // ip
	ACC = RegisterName(1)  // acc
	R1  = RegisterName(2)  // r1
	R2  = RegisterName(3)  // r2
	R3  = RegisterName(4)  // r3
	R4  = RegisterName(5)  // r4
	R5  = RegisterName(6)  // r5
	R6  = RegisterName(7)  // r6
	R7  = RegisterName(8)  // r7
	R8  = RegisterName(9)  // r8
	SP  = RegisterName(10) // sp
	FP  = RegisterName(11) // fp
)

const (
	REGISTER_COUNT = 12 // Number of registers in the file.
)

// getRegisterName resolves a reduced index to its register. The index
// arrives already taken modulo REGISTER_COUNT, so the range check is
// defensive.
func getRegisterName(index uint8) (name RegisterName, err error) {
	if int(index) >= REGISTER_COUNT {
		err = ErrRegisterIndex
		return
	}
	name = RegisterName(index)
	return
}

// GetRegister returns the current value of a named register.
func (cpu *Cpu) GetRegister(name RegisterName) (value uint16, err error) {
	if name < 0 || int(name) >= REGISTER_COUNT {
		err = ErrRegisterName
		return
	}
	value = cpu.registers[name]
	return
}

func (cpu *Cpu) setRegister(name RegisterName, value uint16) (err error) {
	if name < 0 || int(name) >= REGISTER_COUNT {
		err = ErrRegisterName
		return
	}
	cpu.registers[name] = value
	return
}
