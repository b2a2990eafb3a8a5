package cabinet

// Logical frame size in pixels. The Sampler is handed only the VRAM slice
// (see memory.Memory.VRAM), so it indexes relative to Memory[0x2400], not
// absolute addresses.
const (
	screenWidth  = 256 // logical vertical extent of the (rotated) tube
	screenHeight = 224
)

// VideoSampler reads the packed monochrome VRAM bitmap and exposes it as a
// pixel(x, y) predicate. It holds a reference to the live VRAM byte slice
// rather than copying it, so callers must finish sampling a frame before
// the CPU mutates it again (the scheduler only samples between frames).
type VideoSampler struct {
	vram []byte
}

// NewVideoSampler wraps a VRAM slice (memory.Memory.VRAM()'s 7,168 bytes).
func NewVideoSampler(vram []byte) *VideoSampler {
	return &VideoSampler{vram: vram}
}

// Pixel reports whether the pixel at logical (x, y) is lit. x is the
// 0..255 vertical extent of the tube, y is the 0..223 horizontal extent;
// each VRAM byte packs 8 vertically-adjacent pixels with bit 0 topmost.
func (v *VideoSampler) Pixel(x, y int) bool {
	byteIndex := y*(screenWidth/8) + x/8
	bit := uint(x % 8)
	return v.vram[byteIndex]&(1<<bit) != 0
}

// Each calls fn for every pixel, lit or not, with its (x, y) coordinate
// and lit state, in VRAM byte order.
func (v *VideoSampler) Each(fn func(x, y int, on bool)) {
	for y := 0; y < screenHeight; y++ {
		rowBase := y * (screenWidth / 8)
		for col := 0; col < screenWidth/8; col++ {
			b := v.vram[rowBase+col]
			for bit := 0; bit < 8; bit++ {
				fn(col*8+bit, y, b&(1<<uint(bit)) != 0)
			}
		}
	}
}
