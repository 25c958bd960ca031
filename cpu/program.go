package cpu

import (
	"slices"
)

// Program accumulates an encoded instruction stream for loading into
// a CPU. It is the encode direction of the opcode bijection; tests
// and the driver build images with it.
type Program struct {
	image []byte
}

// Emit appends one instruction and its operands, validated against
// the instruction's operand shape. Register operands must fit in one
// byte; 16-bit operands are encoded most significant byte first.
func (prog *Program) Emit(in Instruction, operands ...uint16) (err error) {
	shape := in.Operands()
	if shape == nil {
		err = ErrOpcode(byte(in))
		return
	}
	if len(operands) != len(shape) {
		err = ErrOperandCount
		return
	}
	for n, op := range shape {
		if op == OPERAND_REG && operands[n] > 0xff {
			err = ErrOperandRange
			return
		}
	}

	prog.image = append(prog.image, in.Opcode())
	for n, op := range shape {
		value := operands[n]
		if op == OPERAND_REG {
			prog.image = append(prog.image, uint8(value))
		} else {
			prog.image = append(prog.image, uint8(value>>8), uint8(value&0xff))
		}
	}

	return
}

// Len returns the encoded length in bytes.
func (prog *Program) Len() int {
	return len(prog.image)
}

// Bytes returns a copy of the encoded image.
func (prog *Program) Bytes() (image []byte) {
	return slices.Clone(prog.image)
}
