package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNonDebugLoadsAtZero(t *testing.T) {
	rom := []byte{0xAA, 0xBB, 0xCC}
	m := New(rom, false)

	for i, want := range rom {
		assert.Equal(t, want, m.Read(uint16(i)))
	}
	assert.Equal(t, byte(0), m.Read(0x0005), "non-debug mode should not patch 0x0005")
}

func TestNewDebugLoadsAt0x100AndPatchesHook(t *testing.T) {
	rom := []byte{0x3E, 0x01}
	m := New(rom, true)

	assert.Equal(t, byte(0x3E), m.Read(0x0100))
	assert.Equal(t, byte(0x01), m.Read(0x0101))
	assert.Equal(t, byte(retOpcode), m.Read(cpmBdosHook), "0x0005 should be patched to RET")
}

func TestReadWriteWrapsAddressSpace(t *testing.T) {
	m := New(nil, false)

	m.Write(0x4001, 0x42) // one past the end, should wrap to 0x0001
	assert.Equal(t, byte(0x42), m.Read(0x0001), "wrapped write should be visible at 0x0001")
	assert.Equal(t, byte(0x42), m.Read(0x4001), "wrapped read should alias 0x0001")
}

func TestWriteIsNeverRejected(t *testing.T) {
	rom := []byte{0xFF}
	m := New(rom, false)
	m.Write(0x0000, 0x00)
	assert.Equal(t, byte(0x00), m.Read(0x0000), "ROM region should be writable")
}

func TestVRAMWindow(t *testing.T) {
	m := New(nil, false)
	vram := m.VRAM()
	assert.Len(t, vram, Size-0x2400)
	m.Write(0x2400, 0x55)
	assert.Equal(t, byte(0x55), vram[0], "VRAM() should alias underlying memory")
}
