//go:build headless

package audio

import "invaders8080/cabinet"

// Player discards every event. Wired in place of the oto backend under
// the headless build tag.
type Player struct{}

func Open(dir string) (*Player, error) {
	if _, err := loadSamples(dir); err != nil {
		return nil, err
	}
	return &Player{}, nil
}

func (p *Player) Fire(cabinet.SoundEvent) {}
func (p *Player) Close()                  {}
