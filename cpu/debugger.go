package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"corevm/isa"
	"corevm/mem"
)

// model is the bubbletea model driving the step debugger: it owns a CPU
// and single-steps it one Tick per keypress.
type model struct {
	cpu *CPU

	prevIP int32
	err    error
	halted bool
}

// Init performs no initial command; the CPU is expected to already be
// wired to an image-loaded Bus by the caller.
func (m model) Init() tea.Cmd {
	return nil
}

// Update advances the CPU by one Tick per "space" or "j" keypress, and
// quits on "q" or on a fatal error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			if m.halted {
				return m, nil
			}
			m.prevIP = m.cpu.Reg.ProgramCounter()
			cont, err := m.cpu.Tick()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if !cont {
				m.halted = true
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-word page of memory as a line, highlighting
// the current IP.
func (m model) renderPage(start int32) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%3d | ", start)
	for i := int32(0); i < 16; i++ {
		addr := start + i
		v := m.cpu.Bus.Read(addr)
		if addr == m.cpu.Reg.ProgramCounter() {
			s += fmt.Sprintf("[%4d] ", v)
		} else {
			s += fmt.Sprintf(" %4d  ", v)
		}
	}
	return s
}

func (m model) status() string {
	r := m.cpu.Reg
	return fmt.Sprintf(`
IP: %d (was %d)
IR: %d
R0: %d  R1: %d  R2: %d
R3: %d  R4: %d
`,
		r.ProgramCounter(), m.prevIP,
		r.InstructionRegister(),
		r.R0(), r.R1(), r.R2(),
		r.R3(), r.R4(),
	)
}

func (m model) pageTable() string {
	header := "addr | " + strings.Repeat(" ", 1)
	lines := []string{header}
	for page := int32(0); page < mem.Size; page += 16 {
		lines = append(lines, m.renderPage(page))
	}
	return strings.Join(lines, "\n")
}

// View renders the page table, the register status panel, and a spew
// dump of the currently decoded instruction.
func (m model) View() string {
	ins := isa.Decode(m.cpu.Bus.Read(m.cpu.Reg.ProgramCounter()))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(ins),
	)
}

// Debug starts an interactive step debugger over an already-assembled
// image. It operates purely on an in-memory image; there is no file I/O
// here.
func Debug(image []int32) error {
	bus, err := mem.NewBus(image)
	if err != nil {
		return err
	}
	c := New(bus, &mem.File{})

	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if final, ok := m.(model); ok && final.err != nil {
		return final.err
	}
	return nil
}
