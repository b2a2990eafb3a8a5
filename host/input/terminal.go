//go:build !headless

package input

import (
	"os"
	"sync"
	"syscall"

	"golang.org/x/term"

	"invaders8080/cabinet"
)

// byteKeymap maps a raw stdin byte to the cabinet key it pulses. A
// terminal in raw mode gives no key-release event, so TerminalSource
// reports each byte as an immediate down-then-up pulse rather than a true
// held state — good enough for coin/start/shoot, clumsy for sustained
// movement, which is the tradeoff of this fallback backend versus the
// ebiten one.
var byteKeymap = map[byte]cabinet.Key{
	'\r': cabinet.KeyCoin,
	'e':  cabinet.KeyP1Start,
	'2':  cabinet.KeyP2Start,
	'w':  cabinet.KeyP1Shoot,
	'a':  cabinet.KeyP1Left,
	'd':  cabinet.KeyP1Right,
	'i':  cabinet.KeyP2Shoot,
	'j':  cabinet.KeyP2Left,
	'l':  cabinet.KeyP2Right,
	' ':  cabinet.KeyTilt,
	0x1B: cabinet.KeyQuit,
}

// TerminalSource reads raw, non-blocking stdin bytes and pulses the
// corresponding cabinet key. Construct with NewTerminalSource, call
// Close to restore the terminal.
type TerminalSource struct {
	Mapper *cabinet.InputMapper

	fd       int
	oldState *term.State
	quit     bool
	mu       sync.Mutex
}

// NewTerminalSource puts stdin into raw, non-blocking mode.
func NewTerminalSource(mapper *cabinet.InputMapper) (*TerminalSource, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	if err := syscall.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, err
	}
	return &TerminalSource{Mapper: mapper, fd: fd, oldState: oldState}, nil
}

// Poll drains whatever bytes are currently waiting on stdin and pulses
// their mapped keys.
func (s *TerminalSource) Poll() (quit bool) {
	buf := make([]byte, 64)
	for {
		n, err := syscall.Read(s.fd, buf)
		if n <= 0 || err != nil {
			break
		}
		for _, b := range buf[:n] {
			ck, ok := byteKeymap[b]
			if !ok {
				continue
			}
			if s.Mapper.KeyEvent(ck, true) {
				quit = true
			}
			s.Mapper.KeyEvent(ck, false)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return quit || s.quit
}

// Close restores the terminal to its previous mode.
func (s *TerminalSource) Close() {
	if s.oldState != nil {
		_ = term.Restore(s.fd, s.oldState)
	}
}
