package cabinet

// Input bit positions for port 1, per the cabinet wiring (§6 of the
// machine's external interface description).
const (
	Input1Coin     = 1 << 0 // active-low: Enter clears, release sets
	Input1P2Start  = 1 << 1
	Input1P1Start  = 1 << 2
	Input1P1Shoot  = 1 << 4
	Input1P1Left   = 1 << 5
	Input1P1Right  = 1 << 6
)

// Input bit positions for port 2. Bits 0-1 and bit 3 are dip-switch style:
// set by configuration, not by live key events.
const (
	Input2LivesMask   = 0x03 // 0..3 maps to 3..6 lives
	Input2Tilt        = 1 << 2
	Input2BonusLife   = 1 << 3 // 0 = 1500 points, 1 = 1000 points
	Input2P2Shoot     = 1 << 4
	Input2P2Left      = 1 << 5
	Input2P2Right     = 1 << 6
	Input2CoinInfo    = 1 << 7
)

// Ports holds the two cabinet input-port latches the guest reads via IN 1
// / IN 2. Input1's coin bit is active-low (1 means "no coin present"), so
// NewPorts starts with it set.
type Ports struct {
	Input1, Input2 byte
}

// NewPorts returns the idle state: coin slot not inserted (bit set, since
// active-low), everything else clear.
func NewPorts() *Ports {
	return &Ports{Input1: Input1Coin}
}

// SetInput1 sets or clears bit(s) of Input1.
func (p *Ports) SetInput1(mask byte, on bool) { p.Input1 = setBits(p.Input1, mask, on) }

// SetInput2 sets or clears bit(s) of Input2.
func (p *Ports) SetInput2(mask byte, on bool) { p.Input2 = setBits(p.Input2, mask, on) }

func setBits(v, mask byte, on bool) byte {
	if on {
		return v | mask
	}
	return v &^ mask
}
