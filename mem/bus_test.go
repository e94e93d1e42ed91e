package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBusZeroPadsImage(t *testing.T) {
	b, err := NewBus([]int32{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, int32(1), b.Read(0))
	assert.Equal(t, int32(2), b.Read(1))
	assert.Equal(t, int32(3), b.Read(2))
	assert.Equal(t, int32(0), b.Read(3))
	assert.Equal(t, int32(0), b.Read(Size-1))
}

func TestNewBusRejectsOversizeImage(t *testing.T) {
	_, err := NewBus(make([]int32, Size+1))
	assert.Error(t, err)
}

func TestBusReadWrite(t *testing.T) {
	b := &Bus{}
	b.Write(64, 1)
	assert.Equal(t, int32(1), b.Read(64))
}

func TestFileAccessors(t *testing.T) {
	f := &File{}
	f.Set(R0, 1)
	f.Set(R1, 2)
	f.Set(R2, 3)
	f.Set(R3, 4)
	f.Set(R4, 5)
	f.Set(IP, 6)
	f.Set(IR, 7)

	assert.Equal(t, int32(1), f.R0())
	assert.Equal(t, int32(2), f.R1())
	assert.Equal(t, int32(3), f.R2())
	assert.Equal(t, int32(4), f.R3())
	assert.Equal(t, int32(5), f.R4())
	assert.Equal(t, int32(6), f.ProgramCounter())
	assert.Equal(t, int32(7), f.InstructionRegister())

	assert.Equal(t, int32(1), f.Get(R0))
	assert.Equal(t, int32(7), f.Get(IR))
}

func TestFileZeroedOnCreation(t *testing.T) {
	f := &File{}
	for i := 0; i < numRegisters; i++ {
		assert.Equal(t, int32(0), f.Get(i))
	}
}
