package cabinet

// Memory is the subset of memory.Memory the Machine needs; kept as an
// interface here so cabinet never imports the memory package and the two
// stay decoupled (wired together in main.go).
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// Machine wires Memory, the two input ports, the shift register and the
// sound trigger into one cpu8080.Bus. It is the cabinet's entire
// memory-mapped I/O surface: the CPU core never knows any of these devices
// exist beyond Read/Write/In/Out.
type Machine struct {
	Memory Memory
	Ports  *Ports
	Shift  *ShiftRegister
	Sound  *SoundTrigger
}

// NewMachine wires mem to a fresh set of idle peripherals.
func NewMachine(mem Memory) *Machine {
	return &Machine{
		Memory: mem,
		Ports:  NewPorts(),
		Shift:  &ShiftRegister{},
		Sound:  NewSoundTrigger(),
	}
}

func (m *Machine) Read(addr uint16) byte        { return m.Memory.Read(addr) }
func (m *Machine) Write(addr uint16, v byte)    { m.Memory.Write(addr, v) }

// In implements IN port, per §4.5: port 1/2 read the input latches, port 3
// reads the shift register window, anything else leaves A unchanged.
func (m *Machine) In(port byte, current byte) byte {
	switch port {
	case 1:
		return m.Ports.Input1
	case 2:
		return m.Ports.Input2
	case 3:
		return m.Shift.Read()
	default:
		return current
	}
}

// Out implements OUT port, per §4.5.
func (m *Machine) Out(port byte, v byte) {
	switch port {
	case 2:
		m.Shift.SetOffset(v)
	case 3:
		m.Sound.Write3(v)
	case 4:
		m.Shift.Store(v)
	case 5:
		m.Sound.Write5(v)
	}
}
