//go:build !headless

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders8080/cabinet"
)

// keymap is the default cabinet wiring (§6): P1 start/shoot/left/right on
// E/W/A/D, P2 shoot/left/right on the arrow cluster, coin on Enter, tilt
// on Space, quit on Escape.
var keymap = map[ebiten.Key]cabinet.Key{
	ebiten.KeyEnter:        cabinet.KeyCoin,
	ebiten.KeyE:            cabinet.KeyP1Start,
	ebiten.KeyControlRight: cabinet.KeyP2Start,
	ebiten.KeyW:            cabinet.KeyP1Shoot,
	ebiten.KeyA:            cabinet.KeyP1Left,
	ebiten.KeyD:            cabinet.KeyP1Right,
	ebiten.KeyArrowUp:      cabinet.KeyP2Shoot,
	ebiten.KeyArrowLeft:    cabinet.KeyP2Left,
	ebiten.KeyArrowRight:   cabinet.KeyP2Right,
	ebiten.KeySpace:        cabinet.KeyTilt,
	ebiten.KeyEscape:       cabinet.KeyQuit,
}

// EbitenSource polls ebiten's key state once per call to Poll, diffing
// against what it reported last time so the InputMapper only ever sees
// clean down/up transitions.
type EbitenSource struct {
	Mapper *cabinet.InputMapper
	down   map[ebiten.Key]bool
}

func NewEbitenSource(mapper *cabinet.InputMapper) *EbitenSource {
	return &EbitenSource{Mapper: mapper, down: make(map[ebiten.Key]bool)}
}

func (s *EbitenSource) Poll() (quit bool) {
	for key, ck := range keymap {
		pressed := ebiten.IsKeyPressed(key)
		if pressed == s.down[key] {
			continue
		}
		s.down[key] = pressed
		if s.Mapper.KeyEvent(ck, pressed) {
			quit = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		quit = true
	}
	return quit
}

// Close is a no-op; ebiten owns no per-source resources to release.
func (s *EbitenSource) Close() {}
