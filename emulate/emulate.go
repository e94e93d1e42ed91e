// Package emulate drives a CPU's tick cycle to completion.
package emulate

import "corevm/cpu"

// A Hook runs after every tick. It is the seam an external collaborator
// -- a display updater polling a memory-mapped dirty flag, or a pacing
// loop -- would use; the core itself carries neither.
type Hook func(c *cpu.CPU)

// Run invokes c.Tick repeatedly until it returns false (a Halt was
// executed) or returns an error (an unknown opcode was executed). Each
// hook, if any, runs after every successful tick, in the order given.
//
// Run is cooperatively single-threaded and synchronous: it performs no
// pacing and no real-time sleeps.
func Run(c *cpu.CPU, hooks ...Hook) error {
	for {
		cont, err := c.Tick()
		if err != nil {
			return err
		}
		for _, h := range hooks {
			h(c)
		}
		if !cont {
			return nil
		}
	}
}
