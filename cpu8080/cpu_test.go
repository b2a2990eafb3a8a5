package cpu8080

import "testing"

// testBus is a flat 64KiB RAM implementing Bus, with an output trace for
// the instructions that exercise cabinet I/O.
type testBus struct {
	mem    [1 << 16]byte
	inVal  byte
	outLog []struct{ port, value byte }
}

func (b *testBus) Read(addr uint16) byte         { return b.mem[addr] }
func (b *testBus) Write(addr uint16, v byte)     { b.mem[addr] = v }
func (b *testBus) In(port byte, current byte) byte { return b.inVal }
func (b *testBus) Out(port byte, value byte) {
	b.outLog = append(b.outLog, struct{ port, value byte }{port, value})
}

func newTestCPU(program ...byte) (*CPU, *testBus) {
	bus := &testBus{}
	copy(bus.mem[:], program)
	c := New(bus, false)
	return c, bus
}

func (c *CPU) stepN(n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

func TestNOPAdvancesPCAndCostsFourCycles(t *testing.T) {
	c, _ := newTestCPU(0x00, 0x00)
	cycles := c.Step()
	if c.PC != 1 {
		t.Fatalf("PC = %d, want 1", c.PC)
	}
	if cycles != 4 {
		t.Fatalf("cycles = %d, want 4", cycles)
	}
}

func TestMVIAndMOV(t *testing.T) {
	c, _ := newTestCPU(
		0x06, 0x42, // MVI B, 0x42
		0x78, // MOV A, B
	)
	c.stepN(2)
	if c.A != 0x42 {
		t.Fatalf("A = 0x%02X, want 0x42", c.A)
	}
	if c.PC != 3 {
		t.Fatalf("PC = %d, want 3", c.PC)
	}
}

func TestMOVThroughMemory(t *testing.T) {
	c, bus := newTestCPU(
		0x21, 0x00, 0x10, // LXI H, 0x1000
		0x36, 0x99, // MVI M, 0x99
		0x7E, // MOV A, M
	)
	c.stepN(3)
	if bus.mem[0x1000] != 0x99 {
		t.Fatalf("Memory[0x1000] = 0x%02X, want 0x99", bus.mem[0x1000])
	}
	if c.A != 0x99 {
		t.Fatalf("A = 0x%02X, want 0x99", c.A)
	}
}

func TestLXIAndDAD(t *testing.T) {
	c, _ := newTestCPU(
		0x21, 0x34, 0x12, // LXI H, 0x1234
		0x01, 0x01, 0x00, // LXI B, 0x0001
		0x09, // DAD B
	)
	c.stepN(3)
	if c.HL() != 0x1235 {
		t.Fatalf("HL = 0x%04X, want 0x1235", c.HL())
	}
	if c.Flag(flagCY) {
		t.Fatalf("CY set, want clear")
	}
}

func TestDADSetsCarryOnOverflow(t *testing.T) {
	c, _ := newTestCPU(
		0x21, 0xFF, 0xFF, // LXI H, 0xFFFF
		0x01, 0x01, 0x00, // LXI B, 0x0001
		0x09, // DAD B
	)
	c.stepN(3)
	if c.HL() != 0x0000 {
		t.Fatalf("HL = 0x%04X, want 0x0000", c.HL())
	}
	if !c.Flag(flagCY) {
		t.Fatalf("CY clear, want set")
	}
}

func TestINRPreservesCarry(t *testing.T) {
	c, _ := newTestCPU(
		0x3E, 0xFF, // MVI A, 0xFF
		0x37, // STC
		0x06, 0x00, // MVI B, 0x00
		0x04, // INR B
	)
	c.stepN(4)
	if !c.Flag(flagCY) {
		t.Fatalf("CY clear after INR, want preserved set")
	}
	if c.B != 1 {
		t.Fatalf("B = %d, want 1", c.B)
	}
}

func TestDCRSetsZeroFlag(t *testing.T) {
	c, _ := newTestCPU(
		0x06, 0x01, // MVI B, 1
		0x05, // DCR B
	)
	c.stepN(2)
	if c.B != 0 {
		t.Fatalf("B = %d, want 0", c.B)
	}
	if !c.Flag(flagZ) {
		t.Fatalf("Z clear, want set")
	}
}

func TestADDSetsAuxCarryAndCarry(t *testing.T) {
	c, _ := newTestCPU(
		0x3E, 0xFF, // MVI A, 0xFF
		0x06, 0x01, // MVI B, 1
		0x80, // ADD B
	)
	c.stepN(3)
	if c.A != 0 {
		t.Fatalf("A = 0x%02X, want 0x00", c.A)
	}
	if !c.Flag(flagCY) {
		t.Fatalf("CY clear, want set")
	}
	if !c.Flag(flagAC) {
		t.Fatalf("AC clear, want set")
	}
	if !c.Flag(flagZ) {
		t.Fatalf("Z clear, want set")
	}
}

func TestSUBProducesBorrow(t *testing.T) {
	c, _ := newTestCPU(
		0x3E, 0x00, // MVI A, 0
		0x06, 0x01, // MVI B, 1
		0x90, // SUB B
	)
	c.stepN(3)
	if c.A != 0xFF {
		t.Fatalf("A = 0x%02X, want 0xFF", c.A)
	}
	if !c.Flag(flagCY) {
		t.Fatalf("CY clear, want set (borrow)")
	}
}

func TestCMPDoesNotModifyA(t *testing.T) {
	c, _ := newTestCPU(
		0x3E, 0x05, // MVI A, 5
		0x06, 0x05, // MVI B, 5
		0xB8, // CMP B
	)
	c.stepN(3)
	if c.A != 5 {
		t.Fatalf("A = %d, want 5 (unmodified)", c.A)
	}
	if !c.Flag(flagZ) {
		t.Fatalf("Z clear, want set (A == B)")
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU(
		0x21, 0xCD, 0xAB, // LXI H, 0xABCD
		0xE5, // PUSH H
		0x01, 0x00, 0x00, // LXI B, 0x0000
		0xC1, // POP B
	)
	c.SP = 0x2000
	c.stepN(4)
	if c.BC() != 0xABCD {
		t.Fatalf("BC = 0x%04X, want 0xABCD", c.BC())
	}
}

func TestPushPopPSWNormalizesReservedBits(t *testing.T) {
	c, _ := newTestCPU(
		0xF5, // PUSH PSW
		0xF1, // POP PSW
	)
	c.SP = 0x2000
	c.F = 0xFF // garbage, including bits that should never be settable
	c.stepN(2)
	if c.F&(1<<1) == 0 {
		t.Fatalf("reserved bit 1 not forced set")
	}
	if c.F&(1<<3) != 0 || c.F&(1<<5) != 0 {
		t.Fatalf("reserved bits 3/5 not forced clear, F=0x%02X", c.F)
	}
}

func TestConditionalCallTakenAddsSixCycles(t *testing.T) {
	c, _ := newTestCPU(
		0xC4, 0x06, 0x00, // CNZ 0x0006 (Z currently clear -> taken)
	)
	c.SP = 0x2000
	cycles := c.Step()
	if cycles != cycleLUT[0xC4]+6 {
		t.Fatalf("cycles = %d, want %d", cycles, cycleLUT[0xC4]+6)
	}
	if c.PC != 6 {
		t.Fatalf("PC = 0x%04X, want 0x0006", c.PC)
	}
}

func TestConditionalCallNotTakenNoPenalty(t *testing.T) {
	c, _ := newTestCPU(
		0xCC, 0x06, 0x00, // CZ 0x0006 (Z currently clear -> not taken)
	)
	c.SP = 0x2000
	cycles := c.Step()
	if cycles != cycleLUT[0xCC] {
		t.Fatalf("cycles = %d, want %d", cycles, cycleLUT[0xCC])
	}
	if c.PC != 3 {
		t.Fatalf("PC = %d, want 3 (fallthrough)", c.PC)
	}
}

func TestJccAlwaysConsumesImmediateBytes(t *testing.T) {
	c, _ := newTestCPU(
		0xCA, 0x00, 0x10, // JZ 0x1000 (Z clear -> not taken)
		0x00, // NOP, should execute next
	)
	c.Step()
	if c.PC != 3 {
		t.Fatalf("PC = %d, want 3 (immediate always consumed)", c.PC)
	}
}

func TestGenerateInterruptPushesAndJumps(t *testing.T) {
	c, bus := newTestCPU(0x00)
	c.PC = 0x1234
	c.SP = 0x2000
	c.IE = true
	c.GenerateInterrupt(2)
	if c.PC != 16 {
		t.Fatalf("PC = 0x%04X, want 0x0010", c.PC)
	}
	if c.IE {
		t.Fatalf("IE still set after interrupt")
	}
	lo := bus.mem[0x1FFE]
	hi := bus.mem[0x1FFF]
	if uint16(hi)<<8|uint16(lo) != 0x1234 {
		t.Fatalf("pushed return address = 0x%04X, want 0x1234", uint16(hi)<<8|uint16(lo))
	}
}

func TestOutWritesAToPort(t *testing.T) {
	c, bus := newTestCPU(
		0x3E, 0x77, // MVI A, 0x77
		0xD3, 0x03, // OUT 3
	)
	c.stepN(2)
	if len(bus.outLog) != 1 || bus.outLog[0].port != 3 || bus.outLog[0].value != 0x77 {
		t.Fatalf("out log = %+v, want one entry {3, 0x77}", bus.outLog)
	}
}

func TestInReadsPortIntoA(t *testing.T) {
	c, bus := newTestCPU(0xDB, 0x01) // IN 1
	bus.inVal = 0xAB
	c.Step()
	if c.A != 0xAB {
		t.Fatalf("A = 0x%02X, want 0xAB", c.A)
	}
}

func TestHaltStopsExecutionAndHoldsOwnCycleCost(t *testing.T) {
	c, _ := newTestCPU(0x76, 0x00) // HLT, NOP
	c.Step()
	if !c.IsHalted() {
		t.Fatalf("not halted after HLT")
	}
	pc := c.PC
	cycles := c.Step()
	if c.PC != pc {
		t.Fatalf("PC advanced while halted: %d -> %d", pc, c.PC)
	}
	if cycles != cycleLUT[0x76] {
		t.Fatalf("cycles while halted = %d, want %d", cycles, cycleLUT[0x76])
	}
}
