package cabinet

// Key identifies one cabinet control. The actual keyboard scancode/rune
// mapping to Key lives in the host/input backends; this package only knows
// what each Key does to the input ports.
type Key int

const (
	KeyCoin Key = iota
	KeyP1Start
	KeyP2Start
	KeyP1Shoot
	KeyP1Left
	KeyP1Right
	KeyP2Shoot
	KeyP2Left
	KeyP2Right
	KeyTilt
	KeyQuit // Escape: not a port bit, terminates the run loop
)

// InputMapper applies key-down/key-up events to a Ports latch. Most keys
// are momentary (press sets, release clears); the coin slot is
// active-low, so its press/release polarity is inverted relative to the
// others. Dip-switch settings (lives count, bonus-life threshold, coin
// info display) have no key-up partner and are configured once via
// SetLives / SetBonusLife / SetCoinInfo rather than through KeyEvent.
type InputMapper struct {
	Ports *Ports
}

// NewInputMapper wraps ports, which must already be initialized (see
// NewPorts).
func NewInputMapper(ports *Ports) *InputMapper {
	return &InputMapper{Ports: ports}
}

// KeyEvent applies a single key transition. Returns true if the event
// should terminate the run loop (Escape).
func (m *InputMapper) KeyEvent(k Key, down bool) (quit bool) {
	switch k {
	case KeyCoin:
		// Active-low: down clears the bit (coin present), up sets it.
		m.Ports.SetInput1(Input1Coin, !down)
	case KeyP1Start:
		m.Ports.SetInput1(Input1P1Start, down)
	case KeyP2Start:
		m.Ports.SetInput1(Input1P2Start, down)
	case KeyP1Shoot:
		m.Ports.SetInput1(Input1P1Shoot, down)
	case KeyP1Left:
		m.Ports.SetInput1(Input1P1Left, down)
	case KeyP1Right:
		m.Ports.SetInput1(Input1P1Right, down)
	case KeyP2Shoot:
		m.Ports.SetInput2(Input2P2Shoot, down)
	case KeyP2Left:
		m.Ports.SetInput2(Input2P2Left, down)
	case KeyP2Right:
		m.Ports.SetInput2(Input2P2Right, down)
	case KeyTilt:
		m.Ports.SetInput2(Input2Tilt, down)
	case KeyQuit:
		return down
	}
	return false
}

// SetLives configures the lives dip-switch: n must be one of 3, 4, 5, 6.
func (m *InputMapper) SetLives(n int) {
	code := byte(n-3) & Input2LivesMask
	m.Ports.Input2 = (m.Ports.Input2 &^ Input2LivesMask) | code
}

// SetBonusLife configures the bonus-life-at threshold: false = 1500
// points, true = 1000 points.
func (m *InputMapper) SetBonusLife(at1000 bool) {
	m.Ports.SetInput2(Input2BonusLife, at1000)
}

// SetCoinInfo toggles the coin-info display dip-switch.
func (m *InputMapper) SetCoinInfo(on bool) {
	m.Ports.SetInput2(Input2CoinInfo, on)
}
