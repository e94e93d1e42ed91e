package cpu

import (
	"corevm/isa"
	"corevm/mem"
)

// An Opcode pairs a mnemonic with the Exec function that carries out its
// semantics. Opcodes is the CPU's dispatch table, a map-of-structs keyed
// by Op.
type Opcode struct {
	Name string
	Exec func(c *CPU, ins isa.Instruction)
}

// Opcodes maps every Op the CPU can execute to its Opcode. Halt has an
// entry here so that CPU.Tick's lookup accepts it as a known opcode, even
// though CPU.Tick special-cases Halt before ever calling Exec.
//
// LoadDirect, StoreDirect, LoadIndirect and StoreIndirect read or write
// memory directly or through a register-held address:
//
//	LoadDirect  dst imm -> dst <- memory[imm]
//	StoreDirect src imm -> memory[imm] <- src
//	LoadIndirect  dst src -> dst <- memory[reg[src]]
//	StoreIndirect dst src -> memory[reg[dst]] <- reg[src]
var Opcodes = map[isa.Op]Opcode{
	isa.Halt: {Name: "Halt", Exec: func(c *CPU, ins isa.Instruction) {}},

	isa.LoadImmediate: {Name: "LoadImmediate", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), ins.Imm)
	}},

	isa.Add: {Name: "Add", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Reg.Get(int(ins.Dst))+c.Reg.Get(int(ins.Src)))
	}},

	isa.AddImmediate: {Name: "AddImmediate", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Reg.Get(int(ins.Src))+ins.Imm)
	}},

	isa.And: {Name: "And", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Reg.Get(int(ins.Dst))&c.Reg.Get(int(ins.Src)))
	}},

	isa.Or: {Name: "Or", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Reg.Get(int(ins.Dst))|c.Reg.Get(int(ins.Src)))
	}},

	isa.Xor: {Name: "Xor", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Reg.Get(int(ins.Dst))^c.Reg.Get(int(ins.Src)))
	}},

	isa.Jump: {Name: "Jump", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(mem.IP, ins.Imm-1)
	}},

	isa.BranchOnEqual: {Name: "BranchOnEqual", Exec: func(c *CPU, ins isa.Instruction) {
		if c.Reg.Get(int(ins.Src)) == c.Reg.Get(int(ins.Dst)) {
			c.Reg.Set(mem.IP, ins.Imm-1)
		}
	}},

	isa.Move: {Name: "Move", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Reg.Get(int(ins.Src)))
	}},

	isa.LoadDirect: {Name: "LoadDirect", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Bus.Read(ins.Imm))
	}},

	isa.StoreDirect: {Name: "StoreDirect", Exec: func(c *CPU, ins isa.Instruction) {
		c.Bus.Write(ins.Imm, c.Reg.Get(int(ins.Src)))
	}},

	isa.LoadIndirect: {Name: "LoadIndirect", Exec: func(c *CPU, ins isa.Instruction) {
		c.Reg.Set(int(ins.Dst), c.Bus.Read(c.Reg.Get(int(ins.Src))))
	}},

	isa.StoreIndirect: {Name: "StoreIndirect", Exec: func(c *CPU, ins isa.Instruction) {
		c.Bus.Write(c.Reg.Get(int(ins.Dst)), c.Reg.Get(int(ins.Src)))
	}},
}
