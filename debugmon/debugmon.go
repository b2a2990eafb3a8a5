// Package debugmon is an interactive bubbletea TUI for stepping the CPU
// one instruction at a time and inspecting registers, flags and a memory
// page table. It's a developer aid only: nothing it does changes
// emulation semantics, and it is never wired in except when --monitor is
// passed on the command line.
package debugmon

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// Inspectable is the subset of cpu8080.CPU the monitor reads. Defined here
// so debugmon never imports cpu8080 for anything but this shape, keeping
// the dependency one-directional.
type Inspectable interface {
	Step() int
	Snapshot() Snapshot
}

// Snapshot is a point-in-time copy of everything the monitor displays.
type Snapshot struct {
	PC, SP        uint16
	A, B, C, D, E byte
	H, L, F       byte
	IE, Halted    bool
	MemoryWindow  func(start uint16) [16]byte
}

type model struct {
	cpu    Inspectable
	prevPC uint16
	last   Snapshot
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.prevPC = m.last.PC
			m.cpu.Step()
			m.last = m.cpu.Snapshot()
		}
	}
	return m, nil
}

func (m model) status() string {
	snap := m.last
	flagBits := []struct {
		name string
		set  bool
	}{
		{"S", snap.F&0x80 != 0},
		{"Z", snap.F&0x40 != 0},
		{"AC", snap.F&0x10 != 0},
		{"P", snap.F&0x04 != 0},
		{"CY", snap.F&0x01 != 0},
	}
	var flags strings.Builder
	for _, f := range flagBits {
		if f.set {
			fmt.Fprintf(&flags, "%s ", f.name)
		} else {
			fmt.Fprintf(&flags, "- ")
		}
	}
	return fmt.Sprintf(
		"PC: %04x (was %04x)\nSP: %04x\nA: %02x  B: %02x  C: %02x  D: %02x  E: %02x  H: %02x  L: %02x\n"+
			"IE: %v  Halted: %v\nFlags: %s",
		snap.PC, m.prevPC, snap.SP, snap.A, snap.B, snap.C, snap.D, snap.E, snap.H, snap.L,
		snap.IE, snap.Halted, flags.String(),
	)
}

func (m model) memoryPage() string {
	if m.last.MemoryWindow == nil {
		return ""
	}
	start := m.last.PC &^ 0x000F
	window := m.last.MemoryWindow(start)
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range window {
		if start+uint16(i) == m.last.PC {
			s += fmt.Sprintf("[%02x]", b)
		} else {
			s += fmt.Sprintf(" %02x ", b)
		}
	}
	return s
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.memoryPage(),
		"",
		m.status(),
		"",
		"space/s: step  q: quit",
	)
}

// Run starts the interactive monitor, stepping cpu one instruction at a
// time under user control. It blocks until the user quits.
func Run(cpu Inspectable) error {
	prog := tea.NewProgram(model{cpu: cpu, last: cpu.Snapshot()})
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Dump is a standalone helper (not part of the interactive loop) that
// spew-dumps an arbitrary value to a string.
func Dump(v interface{}) string {
	return spew.Sdump(v)
}
