//go:build !headless

package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"invaders8080/cabinet"
)

// Player implements cabinet.EventSink by spinning up a short-lived
// oto.Player per fired event — the cabinet's sound cues are all brief,
// non-overlapping one-shots (shot, death, fleet-step, UFO loop), so there
// is no mixing to do.
type Player struct {
	ctx     *oto.Context
	samples [sampleCount]pcm

	mu      sync.Mutex
	playing map[int]*oto.Player
}

// Open loads samples/0.wav .. samples/8.wav from dir and prepares an oto
// playback context. Per §7, failure here is meant to be non-fatal to the
// caller: fall back to cabinet.NullSink and keep running.
func Open(dir string) (*Player, error) {
	samples, err := loadSamples(dir)
	if err != nil {
		return nil, err
	}

	rate := samples[0].sampleRate
	if rate == 0 {
		rate = 44100
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: oto context: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, samples: samples, playing: make(map[int]*oto.Player)}, nil
}

// sampleIndex maps a SoundEvent to its samples/<n>.wav index (§6): 0=UFO
// loop, 1=shot, 2=flash, 3=invader death, 4-7=fleet step 1-4, 8=UFO hit.
// UFOStop has no sample of its own — it stops the UFO loop player instead
// of starting a new one.
var sampleIndex = map[cabinet.SoundEvent]int{
	cabinet.UFOStart:    0,
	cabinet.Shot:        1,
	cabinet.PlayerDeath: 2,
	cabinet.InvaderDeath: 3,
	cabinet.Fleet1:      4,
	cabinet.Fleet2:      5,
	cabinet.Fleet3:      6,
	cabinet.Fleet4:      7,
	cabinet.UFOHit:      8,
}

// Fire implements cabinet.EventSink.
func (p *Player) Fire(ev cabinet.SoundEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ev == cabinet.UFOStop {
		if player, ok := p.playing[sampleIndex[cabinet.UFOStart]]; ok {
			player.Pause()
		}
		return
	}

	idx, ok := sampleIndex[ev]
	if !ok {
		return
	}

	player := p.ctx.NewPlayer(bytes.NewReader(p.samples[idx].data))
	p.playing[idx] = player
	player.Play()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, player := range p.playing {
		player.Close()
	}
}
