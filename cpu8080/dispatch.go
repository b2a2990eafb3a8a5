package cpu8080

// buildDispatch populates the 256-entry opcode table. Regular families
// (MOV, MVI, ALU, INR/DCR, INX/DCX/DAD/LXI, Jcc/Ccc/Rcc, RST, PUSH/POP)
// are filled by iterating their bit-field encodings so the family is
// modeled once rather than duplicated per opcode; the handful of
// irregular single-byte opcodes are assigned explicitly afterwards.
func (c *CPU) buildDispatch() {
	ops := &c.ops

	// 01 dst src — MOV r,r' (0x76 is HLT, overwritten below).
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		ops[opcode] = func(op byte) func(*CPU) {
			return func(c *CPU) { c.opMOV(op) }
		}(byte(opcode))
	}

	// 00 rp0 0001 — LXI rp,imm16 (rp at bits 4..5, one per 0x10 block).
	for _, base := range []int{0x01, 0x11, 0x21, 0x31} {
		ops[base] = func(op byte) func(*CPU) {
			return func(c *CPU) { c.opLXI(op) }
		}(byte(base))
	}

	// 00 rp0 0011 / 1011 — INX / DCX rp.
	for _, base := range []int{0x03, 0x13, 0x23, 0x33} {
		ops[base] = func(op byte) func(*CPU) { return func(c *CPU) { c.opINX(op) } }(byte(base))
	}
	for _, base := range []int{0x0B, 0x1B, 0x2B, 0x3B} {
		ops[base] = func(op byte) func(*CPU) { return func(c *CPU) { c.opDCX(op) } }(byte(base))
	}

	// 00 rp0 1001 — DAD rp.
	for _, base := range []int{0x09, 0x19, 0x29, 0x39} {
		ops[base] = func(op byte) func(*CPU) { return func(c *CPU) { c.opDAD(op) } }(byte(base))
	}

	// 00 rrr 100 / 101 — INR r / DCR r (r at bits 3..5, all 8 values
	// including M).
	for r := 0; r < 8; r++ {
		inc := (r << 3) | 0x04
		dec := (r << 3) | 0x05
		ops[inc] = func(op byte) func(*CPU) { return func(c *CPU) { c.opINR(op) } }(byte(inc))
		ops[dec] = func(op byte) func(*CPU) { return func(c *CPU) { c.opDCR(op) } }(byte(dec))
	}

	// 00 rrr 110 — MVI r,imm8.
	for r := 0; r < 8; r++ {
		opcode := (r << 3) | 0x06
		ops[opcode] = func(op byte) func(*CPU) { return func(c *CPU) { c.opMVI(op) } }(byte(opcode))
	}

	// 10 ooo sss — ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r.
	for opcode := 0x80; opcode <= 0xBF; opcode++ {
		ops[opcode] = func(op byte) func(*CPU) { return func(c *CPU) { c.opALUReg(op) } }(byte(opcode))
	}

	// 11 ccc 010 / 100 / 000 — Jcc / Ccc / Rcc a16.
	for cc := 0; cc < 8; cc++ {
		j := (cc << 3) | 0xC2
		cal := (cc << 3) | 0xC4
		ret := (cc << 3) | 0xC0
		ops[j] = func(op byte) func(*CPU) { return func(c *CPU) { c.opJcc(op) } }(byte(j))
		ops[cal] = func(op byte) func(*CPU) { return func(c *CPU) { c.opCcc(op) } }(byte(cal))
		ops[ret] = func(op byte) func(*CPU) { return func(c *CPU) { c.opRcc(op) } }(byte(ret))
	}

	// 11 nnn 111 — RST n.
	for n := 0; n < 8; n++ {
		opcode := 0xC7 | (n << 3)
		ops[opcode] = func(op byte) func(*CPU) { return func(c *CPU) { c.opRST(op) } }(byte(opcode))
	}

	// 11 rp0 101 / 001 — PUSH rp / POP rp.
	for _, base := range []int{0xC5, 0xD5, 0xE5, 0xF5} {
		ops[base] = func(op byte) func(*CPU) { return func(c *CPU) { c.opPUSH(op) } }(byte(base))
	}
	for _, base := range []int{0xC1, 0xD1, 0xE1, 0xF1} {
		ops[base] = func(op byte) func(*CPU) { return func(c *CPU) { c.opPOP(op) } }(byte(base))
	}

	// ALU immediate forms.
	ops[0xC6] = c.opALUImm(aluADD)
	ops[0xCE] = c.opALUImm(aluADC)
	ops[0xD6] = c.opALUImm(aluSUB)
	ops[0xDE] = c.opALUImm(aluSBB)
	ops[0xE6] = c.opALUImm(aluANA)
	ops[0xEE] = c.opALUImm(aluXRA)
	ops[0xF6] = c.opALUImm(aluORA)
	ops[0xFE] = c.opALUImm(aluCMP)

	// LDA/STA/LDAX/STAX/LHLD/SHLD/XCHG/XTHL.
	ops[0x0A] = func(c *CPU) { c.opLDAX(0x0A) }
	ops[0x1A] = func(c *CPU) { c.opLDAX(0x1A) }
	ops[0x02] = func(c *CPU) { c.opSTAX(0x02) }
	ops[0x12] = func(c *CPU) { c.opSTAX(0x12) }
	ops[0x22] = func(c *CPU) { c.opSHLD() }
	ops[0x2A] = func(c *CPU) { c.opLHLD() }
	ops[0x32] = func(c *CPU) { c.opSTA() }
	ops[0x3A] = func(c *CPU) { c.opLDA() }
	ops[0xEB] = func(c *CPU) { c.opXCHG() }
	ops[0xE3] = func(c *CPU) { c.opXTHL() }

	// Rotates.
	ops[0x07] = func(c *CPU) { c.opRLC() }
	ops[0x0F] = func(c *CPU) { c.opRRC() }
	ops[0x17] = func(c *CPU) { c.opRAL() }
	ops[0x1F] = func(c *CPU) { c.opRAR() }

	// Specials.
	ops[0x27] = func(c *CPU) { c.opDAA() }
	ops[0x2F] = func(c *CPU) { c.opCMA() }
	ops[0x37] = func(c *CPU) { c.opSTC() }
	ops[0x3F] = func(c *CPU) { c.opCMC() }

	// Control flow.
	ops[0xC3] = func(c *CPU) { c.opJMP() }
	ops[0xC9] = func(c *CPU) { c.opRET() }
	ops[0xCD] = func(c *CPU) { c.opCALL() }
	ops[0xE9] = func(c *CPU) { c.opPCHL() }
	ops[0xF9] = func(c *CPU) { c.SP = c.HL() } // SPHL

	// Undocumented aliases of JMP, RET and CALL.
	ops[0xCB] = func(c *CPU) { c.opJMP() }
	ops[0xD9] = func(c *CPU) { c.opRET() }
	for _, opcode := range []int{0xDD, 0xED, 0xFD} {
		ops[opcode] = func(c *CPU) { c.opCALL() }
	}

	// Interrupt control and halt.
	ops[0xF3] = func(c *CPU) { c.opDI() }
	ops[0xFB] = func(c *CPU) { c.opEI() }
	ops[0x76] = func(c *CPU) { c.opHLT() }

	// Cabinet I/O.
	ops[0xD3] = func(c *CPU) { c.opOUT() }
	ops[0xDB] = func(c *CPU) { c.opIN() }

	// NOP and its seven undocumented aliases.
	for _, opcode := range []int{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		ops[opcode] = func(c *CPU) { c.opNOP() }
	}
}
