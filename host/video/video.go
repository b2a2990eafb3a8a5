// Package video presents a sampled frame to a window: ebiten owns the
// window; the frame is rotated 90 degrees counter-clockwise from the
// cabinet's native 256x224 tube geometry and then upscaled to the 672x768
// output surface with golang.org/x/image/draw's nearest-neighbor scaler.
package video

const (
	tubeWidth  = 256
	tubeHeight = 224

	outputWidth  = 672
	outputHeight = 768
)

// Output is the presentation surface the scheduler's FrameSink wraps.
// Backends (ebiten, headless) implement this.
type Output interface {
	// Present receives a sample function mapping the cabinet's native
	// (x, y) coordinates (0<=x<256, 0<=y<224) to lit/unlit, rotates and
	// scales it, and displays it.
	Present(sample func(x, y int) bool)
	// ShouldQuit reports whether the window was closed.
	ShouldQuit() bool
	Close()
}

// Sink adapts an Output to scheduler.FrameSink without the scheduler
// package needing to import video.
type Sink struct {
	Output Output
}

func (s Sink) Present(sample func(x, y int) bool) {
	s.Output.Present(sample)
}
