// Package isa defines the corevm instruction set: the logical instruction
// tuple, the numeric opcode enumeration, and the codec that packs a tuple
// into the 32-bit word the assembler writes and the CPU fetches.
//
// The codec is the shared contract between the assembler and the CPU; both
// must agree on it bit-exactly, so neither package is allowed to
// reimplement it locally.
package isa

import "corevm/mask"

// An Op identifies the operation an Instruction performs. Values are fixed
// by the wire format: reordering them would break every assembled image.
type Op byte

const (
	Halt Op = iota
	LoadImmediate
	Add
	AddImmediate
	And
	Or
	Xor
	Jump
	BranchOnEqual
	Move
	LoadDirect
	StoreDirect
	LoadIndirect
	StoreIndirect
	Invalid // assembler sentinel; never appears in a valid image
)

// Names maps every defined Op to its assembly mnemonic, in opcode order.
// The assembler resolves mnemonics through this slice (see ByName); the
// CPU's dispatch table carries its own copy of each name.
var Names = [...]string{
	Halt:          "Halt",
	LoadImmediate: "LoadImmediate",
	Add:           "Add",
	AddImmediate:  "AddImmediate",
	And:           "And",
	Or:            "Or",
	Xor:           "Xor",
	Jump:          "Jump",
	BranchOnEqual: "BranchOnEqual",
	Move:          "Move",
	LoadDirect:    "LoadDirect",
	StoreDirect:   "StoreDirect",
	LoadIndirect:  "LoadIndirect",
	StoreIndirect: "StoreIndirect",
	Invalid:       "Invalid",
}

// String renders an Op as its assembly mnemonic, or "Unknown" for a byte
// value outside the defined enumeration.
func (o Op) String() string {
	if int(o) < len(Names) {
		return Names[o]
	}
	return "Unknown"
}

// ByName resolves an assembly mnemonic to its Op. The second return value
// is false for any name outside the defined enumeration, including
// "Invalid" itself -- Invalid is a decode-time sentinel, not something the
// assembler can ever target.
func ByName(name string) (Op, bool) {
	for i, n := range Names {
		if Op(i) == Invalid {
			continue
		}
		if n == name {
			return Op(i), true
		}
	}
	return Invalid, false
}

// An Instruction is the logical four-tuple a wire word decodes into: the
// operation and its two register operands plus a signed immediate.
type Instruction struct {
	Op  Op
	Src byte
	Dst byte
	Imm int32 // already sign-extended from the wire's signed byte
}

// Encode packs an Instruction into its 32-bit wire word: four bytes, op |
// src | dst | imm, little-endian. src, dst and imm are truncated to a
// byte, matching the wire format's width; callers that need a signed
// immediate outside [-128,127] are out of the format's range.
func Encode(op Op, src, dst byte, imm int32) int32 {
	return mask.Pack32(byte(op), src, dst, byte(imm))
}

// Decode unpacks a 32-bit wire word into its Instruction, sign-extending
// the immediate byte. Decode(Encode(op, src, dst, imm)) round-trips for
// every op in [0,255] and every src, dst in [0,255] and imm in
// [-128,127].
func Decode(word int32) Instruction {
	op, src, dst, imm := mask.Unpack32(word)
	return Instruction{
		Op:  Op(op),
		Src: src,
		Dst: dst,
		Imm: mask.SignExtend8(imm),
	}
}
