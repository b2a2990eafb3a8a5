//go:build headless

package video

// HeadlessOutput discards every frame. Useful for running the emulator (or
// its tests) on a machine with no display server.
type HeadlessOutput struct {
	frames uint64
	quit   bool
}

func NewEbitenOutput(title string) (*HeadlessOutput, error) {
	return &HeadlessOutput{}, nil
}

func (h *HeadlessOutput) Present(sample func(x, y int) bool) { h.frames++ }
func (h *HeadlessOutput) ShouldQuit() bool                   { return h.quit }
func (h *HeadlessOutput) Close()                             {}
