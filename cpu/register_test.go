package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)

	for n := range REGISTER_COUNT {
		name := RegisterName(n)
		assert.NoError(cpu.setRegister(name, uint16(0x1000+n)))

		value, err := cpu.GetRegister(name)
		assert.NoError(err)
		assert.Equal(uint16(0x1000+n), value, name.String())
	}
}

func TestRegister_UnknownName(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)

	_, err := cpu.GetRegister(RegisterName(REGISTER_COUNT))
	assert.ErrorIs(err, ErrRegisterName)

	_, err = cpu.GetRegister(RegisterName(-1))
	assert.ErrorIs(err, ErrRegisterName)

	err = cpu.setRegister(RegisterName(REGISTER_COUNT), 1)
	assert.ErrorIs(err, ErrRegisterName)
}

func TestRegister_IndexLookup(t *testing.T) {
	assert := assert.New(t)

	name, err := getRegisterName(0)
	assert.NoError(err)
	assert.Equal(IP, name)

	name, err = getRegisterName(11)
	assert.NoError(err)
	assert.Equal(FP, name)

	_, err = getRegisterName(12)
	assert.ErrorIs(err, ErrRegisterIndex)
}

func TestRegister_Names(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ip", IP.String())
	assert.Equal("acc", ACC.String())
	assert.Equal("r1", R1.String())
	assert.Equal("r8", R8.String())
	assert.Equal("sp", SP.String())
	assert.Equal("fp", FP.String())
}

func TestRegister_InitialStackPointers(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(256)

	sp, err := cpu.GetRegister(SP)
	assert.NoError(err)
	assert.Equal(uint16(254), sp)

	fp, err := cpu.GetRegister(FP)
	assert.NoError(err)
	assert.Equal(uint16(254), fp)
}
