// Package cpu implements the corevm processor: a seven-register machine
// with a 256-word memory, advanced one fetch/decode/execute tick at a
// time.
package cpu

import (
	"fmt"

	"corevm/isa"
	"corevm/mem"
)

// A CPU ties a register File to a Bus and runs the tick cycle against
// them. It has no storage of its own beyond its registers; all memory
// lives in the Bus.
type CPU struct {
	Bus *mem.Bus
	Reg *mem.File
}

// New returns a CPU wired to the given Bus and register File. Both stay
// owned by the caller: the CPU holds references to them, not copies, and
// mutates them in place.
func New(bus *mem.Bus, reg *mem.File) *CPU {
	return &CPU{Bus: bus, Reg: reg}
}

// fetch copies the word at IP into IR and returns it.
func (c *CPU) fetch() int32 {
	word := c.Bus.Read(c.Reg.ProgramCounter())
	c.Reg.Set(mem.IR, word)
	return word
}

// decode interprets a raw word via the isa codec.
func (c *CPU) decode(word int32) isa.Instruction {
	return isa.Decode(word)
}

// Tick runs a single fetch/decode/execute/advance step.
//
// It returns true if the machine should continue (another Tick is
// permitted), false if a Halt was executed. It returns a non-nil error if
// the decoded instruction's Op is outside the defined enumeration --
// executing an unknown opcode is fatal.
//
// The fetch always completes before the decode, which always completes
// before any write to IP, a register, or memory: there is no observable
// intermediate state within a tick.
func (c *CPU) Tick() (bool, error) {
	word := c.fetch()
	ins := c.decode(word)

	exec, ok := Opcodes[ins.Op]
	if !ok {
		return false, fmt.Errorf("cpu: unknown opcode %d at IP=%d", ins.Op, c.Reg.ProgramCounter())
	}

	if ins.Op == isa.Halt {
		return false, nil
	}

	exec.Exec(c, ins)
	c.Reg.Set(mem.IP, c.Reg.ProgramCounter()+1)
	return true, nil
}
