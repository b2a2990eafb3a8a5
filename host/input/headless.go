//go:build headless

package input

import "invaders8080/cabinet"

// NullSource never produces input and never quits; used when running
// headless with no interactive backend wired.
type NullSource struct{}

func NewEbitenSource(mapper *cabinet.InputMapper) *NullSource   { return &NullSource{} }
func NewTerminalSource(mapper *cabinet.InputMapper) (*NullSource, error) {
	return &NullSource{}, nil
}

func (NullSource) Poll() (quit bool) { return false }
func (NullSource) Close()            {}
