//go:build !headless

package video

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// EbitenOutput drives an ebiten window. Present samples the cabinet's
// native frame into a rotated image.Gray and lets x/image/draw's
// nearest-neighbor scaler blow it up to the output surface; Draw just
// blits whatever Present last produced.
type EbitenOutput struct {
	mu       sync.RWMutex
	rotated  *image.Gray // tubeHeight x tubeWidth, rotated frame before scaling
	scaled   *image.RGBA // outputWidth x outputHeight
	window   *ebiten.Image
	quit     bool
	started  bool
}

// NewEbitenOutput opens a window sized for the rotated/scaled cabinet
// display. The ebiten game loop runs on its own goroutine; Present is
// called from the scheduler's goroutine and only ever touches the shared
// image buffers under mu.
func NewEbitenOutput(title string) (*EbitenOutput, error) {
	eo := &EbitenOutput{
		rotated: image.NewGray(image.Rect(0, 0, tubeHeight, tubeWidth)),
		scaled:  image.NewRGBA(image.Rect(0, 0, outputWidth, outputHeight)),
	}
	ebiten.SetWindowSize(outputWidth, outputHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)

	go func() {
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Println("video: ebiten exited:", err)
		}
	}()
	eo.started = true
	return eo, nil
}

// Present rotates the sampled frame 90 degrees counter-clockwise into the
// native tube orientation and upscales it with nearest-neighbor via
// draw.Scale (224x256 to 672x768, a uniform 3x).
func (eo *EbitenOutput) Present(sample func(x, y int) bool) {
	for y := 0; y < tubeWidth; y++ {
		for x := 0; x < tubeHeight; x++ {
			on := sample(tubeWidth-1-y, x)
			var c color.Gray
			if on {
				c = color.Gray{Y: 0xFF}
			}
			eo.rotated.SetGray(x, y, c)
		}
	}

	eo.mu.Lock()
	draw.NearestNeighbor.Scale(eo.scaled, eo.scaled.Bounds(), eo.rotated, eo.rotated.Bounds(), draw.Src, nil)
	eo.mu.Unlock()
}

func (eo *EbitenOutput) ShouldQuit() bool {
	eo.mu.RLock()
	defer eo.mu.RUnlock()
	return eo.quit
}

func (eo *EbitenOutput) Close() {}

// Update implements ebiten.Game.
func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() {
		eo.mu.Lock()
		eo.quit = true
		eo.mu.Unlock()
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(outputWidth, outputHeight)
	}
	eo.mu.RLock()
	eo.window.WritePixels(eo.scaled.Pix)
	eo.mu.RUnlock()
	screen.DrawImage(eo.window, nil)
}

// Layout implements ebiten.Game.
func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return outputWidth, outputHeight
}
