package cpu8080

// Bus is everything the CPU core needs from the outside world: program
// memory and the cabinet's two I/O ports. The cabinet package supplies the
// concrete implementation that wires Memory, the shift register and the
// sound trigger together; tests can supply a bare-bones fake.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	// In reads a port. current is the CPU's A register at the time of the
	// read, so implementations covering only a subset of ports can return
	// it unchanged for anything they don't recognize (§4.5: "any other
	// port: leave A unchanged").
	In(port byte, current byte) byte
	Out(port byte, value byte)
}
