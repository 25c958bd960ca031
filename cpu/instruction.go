package cpu

// Instruction is a decoded opcode. The value of each constant is its
// encoded opcode byte, so decode and encode are two views of one
// bijection.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	MOVE_LIT_REG = Instruction(0x10) // mov_lit_reg
	MOVE_REG_REG = Instruction(0x11) // mov_reg_reg
	MOVE_REG_MEM = Instruction(0x12) // mov_reg_mem
	MOVE_MEM_REG = Instruction(0x13) // mov_mem_reg
	ADD_REG_REG  = Instruction(0x14) // add_reg_reg
	JMP_NOT_EQ   = Instruction(0x15) // jne
	PSH_LIT      = Instruction(0x16) // psh_lit
	PSH_REG      = Instruction(0x17) // psh_reg
	POP          = Instruction(0x18) // pop
	CAL_LIT      = Instruction(0x19) // cal_lit
	CAL_REG      = Instruction(0x1a) // cal_reg
	RET          = Instruction(0x1b) // ret
)

// Operand is an instruction operand encoding type.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_LIT  = Operand(0) // lit
	OPERAND_REG  = Operand(1) // reg
	OPERAND_ADDR = Operand(2) // addr
)

// Width returns the encoded operand width in bytes.
func (op Operand) Width() int {
	if op == OPERAND_REG {
		return 1
	}
	return 2
}

// operandShapes maps each instruction to the operands that follow its
// opcode byte, in fetch order.
var operandShapes = map[Instruction][]Operand{
	MOVE_LIT_REG: {OPERAND_LIT, OPERAND_REG},
	MOVE_REG_REG: {OPERAND_REG, OPERAND_REG},
	MOVE_REG_MEM: {OPERAND_REG, OPERAND_ADDR},
	MOVE_MEM_REG: {OPERAND_ADDR, OPERAND_REG},
	ADD_REG_REG:  {OPERAND_REG, OPERAND_REG},
	JMP_NOT_EQ:   {OPERAND_LIT, OPERAND_ADDR},
	PSH_LIT:      {OPERAND_LIT},
	PSH_REG:      {OPERAND_REG},
	POP:          {OPERAND_REG},
	CAL_LIT:      {OPERAND_ADDR},
	CAL_REG:      {OPERAND_REG},
	RET:          {},
}

// Decode maps an opcode byte to its instruction, failing with
// ErrOpcode for any byte outside the closed set.
func Decode(opcode byte) (in Instruction, err error) {
	in = Instruction(opcode)
	if _, ok := operandShapes[in]; !ok {
		in = Instruction(0)
		err = ErrOpcode(opcode)
	}
	return
}

// Opcode returns the encoded opcode byte, the inverse of Decode.
func (in Instruction) Opcode() byte {
	return byte(in)
}

// Operands returns the operand shape in fetch order, or nil for an
// unknown instruction.
func (in Instruction) Operands() (shape []Operand) {
	return operandShapes[in]
}

// Size returns the encoded instruction length in bytes, opcode
// included.
func (in Instruction) Size() (size int) {
	size = 1
	for _, op := range in.Operands() {
		size += op.Width()
	}
	return
}
