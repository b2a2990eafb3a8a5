// Package input translates host key events into cabinet.Key transitions.
// Two backends are available: an ebiten-polled backend for the graphical
// frontend, and a raw-mode terminal backend (golang.org/x/term) for
// running headless over SSH/a plain console.
package input

import "invaders8080/cabinet"

// Source is polled once per frame by the scheduler; it applies any
// pending key transitions to the wrapped cabinet.InputMapper and reports
// whether the run loop should quit.
type Source interface {
	Poll() (quit bool)
}
