// Package mem provides the flat, word-addressed memory and the named
// register file that the CPU and assembler both operate on.
package mem

import "fmt"

// Size is the fixed capacity, in 32-bit words, of a Bus.
const Size = 256

// A Bus is the central object that connects the CPU and its collaborators
// (the assembler's image loader, a debugger, a display updater) to a flat
// array of signed 32-bit words. It is word-addressed and fixed at Size
// words -- a memory cell is a 32-bit word, never a byte, and the same
// cell may hold either data or an encoded Instruction: the codec is what
// tells them apart, not the storage.
type Bus struct {
	Words [Size]int32
}

// NewBus returns a zeroed Bus with image copied into its first
// len(image) words. It returns an error if image is longer than Size,
// matching the "implementation should trap" guidance for out-of-range
// access.
func NewBus(image []int32) (*Bus, error) {
	if len(image) > Size {
		return nil, fmt.Errorf("mem: image of %d words exceeds bus capacity %d", len(image), Size)
	}
	b := &Bus{}
	copy(b.Words[:], image)
	return b, nil
}

// Read returns the word at addr. It panics on an out-of-range address.
func (b *Bus) Read(addr int32) int32 {
	return b.Words[addr]
}

// Write stores data at addr. It panics on an out-of-range address.
func (b *Bus) Write(addr int32, data int32) {
	b.Words[addr] = data
}

// A register index identifies one of the seven slots in a File, in the
// order the instruction encoding relies on: the numeric identity of each
// register is observable on the wire.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	IP
	IR
	numRegisters
)

// A File is the register file: five general-purpose registers, the
// instruction pointer, and the instruction register that holds the most
// recently fetched raw word.
type File struct {
	slots [numRegisters]int32
}

// Get returns the value of the register at idx. It panics if idx is
// outside [0,6].
func (f *File) Get(idx int) int32 {
	return f.slots[idx]
}

// Set stores v in the register at idx. It panics if idx is outside
// [0,6].
func (f *File) Set(idx int, v int32) {
	f.slots[idx] = v
}

// R0 returns the value of register R0.
func (f *File) R0() int32 { return f.slots[R0] }

// R1 returns the value of register R1.
func (f *File) R1() int32 { return f.slots[R1] }

// R2 returns the value of register R2.
func (f *File) R2() int32 { return f.slots[R2] }

// R3 returns the value of register R3.
func (f *File) R3() int32 { return f.slots[R3] }

// R4 returns the value of register R4.
func (f *File) R4() int32 { return f.slots[R4] }

// ProgramCounter returns the value of IP, the address of the next word to
// be fetched.
func (f *File) ProgramCounter() int32 { return f.slots[IP] }

// InstructionRegister returns the raw word most recently fetched into IR.
func (f *File) InstructionRegister() int32 { return f.slots[IR] }
