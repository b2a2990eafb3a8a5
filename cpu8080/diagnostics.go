package cpu8080

import "fmt"

// IEEnabled reports whether interrupts are currently enabled, safe to call
// from outside the instruction loop (the frame scheduler polls this after
// a step once the half-frame cycle threshold has been reached).
func (c *CPU) IEEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.IE
}

// diagnosticHookIfCPMCall5 implements the CP/M-style BDOS hook used by
// 8080 diagnostic test ROMs: a CALL to 0x0005 with C=9 prints a
// '$'-terminated string pointed to by DE, and C=2 prints the single
// character in E. It only runs in debug mode, where memory.New has patched
// 0x0005 to RET so control returns immediately after the hook; in
// production the opcode that triggered this is just a normal CALL into
// whatever the ROM holds at 0x0005.
func (c *CPU) diagnosticHookIfCPMCall5(target uint16) {
	if !c.debug || target != 0x0005 {
		return
	}
	switch c.C {
	case 9:
		addr := c.DE()
		for {
			ch := c.bus.Read(addr)
			if ch == '$' {
				break
			}
			fmt.Fprintf(c.DebugOut, "%c", ch)
			addr++
		}
	case 2:
		fmt.Fprintf(c.DebugOut, "%c", c.E)
	}
}
