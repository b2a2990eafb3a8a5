// Package audio plays the cabinet's nine discrete sound-cue samples
// (samples/0.wav .. samples/8.wav) through github.com/ebitengine/oto/v3,
// implementing cabinet.EventSink. Audio init failure is non-fatal per the
// error-handling design: Open returns an error the caller can log and
// discard, falling back to cabinet.NullSink.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const sampleCount = 9

// pcm holds one decoded 16-bit mono WAV sample, ready to hand to an oto
// player.
type pcm struct {
	data       []byte
	sampleRate int
}

// loadSamples reads samples/0.wav .. samples/8.wav from dir.
func loadSamples(dir string) ([sampleCount]pcm, error) {
	var out [sampleCount]pcm
	for i := 0; i < sampleCount; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.wav", i))
		raw, err := os.ReadFile(path)
		if err != nil {
			return out, fmt.Errorf("audio: load %s: %w", path, err)
		}
		p, err := decodeWAV(raw)
		if err != nil {
			return out, fmt.Errorf("audio: decode %s: %w", path, err)
		}
		out[i] = p
	}
	return out, nil
}

// decodeWAV extracts the sample rate and raw PCM payload from a canonical
// 16-bit PCM RIFF/WAVE file. It deliberately does not handle exotic
// chunk layouts or compressed formats — the sample set is authored
// in-house as plain 16-bit PCM.
func decodeWAV(raw []byte) (pcm, error) {
	r := bytes.NewReader(raw)
	var riffHeader [12]byte
	if _, err := io.ReadFull(r, riffHeader[:]); err != nil {
		return pcm{}, err
	}
	if string(riffHeader[0:4]) != "RIFF" || string(riffHeader[8:12]) != "WAVE" {
		return pcm{}, fmt.Errorf("not a RIFF/WAVE file")
	}

	var sampleRate int
	for {
		var chunkID [4]byte
		var chunkSize uint32
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			return pcm{}, fmt.Errorf("truncated WAV: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return pcm{}, err
		}
		body := make([]byte, chunkSize)
		if _, err := io.ReadFull(r, body); err != nil {
			return pcm{}, fmt.Errorf("truncated chunk %q: %w", chunkID, err)
		}
		if chunkSize%2 == 1 {
			r.Seek(1, io.SeekCurrent) // RIFF chunks are word-aligned
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if len(body) < 16 {
				return pcm{}, fmt.Errorf("fmt chunk too short")
			}
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
		case "data":
			return pcm{data: body, sampleRate: sampleRate}, nil
		}
	}
}
