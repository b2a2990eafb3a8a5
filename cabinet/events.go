package cabinet

// SoundEvent names one discrete sound cue the cabinet's port writes can
// trigger. Every event except UFOStop has one samples/<n>.wav file that the
// audio collaborator loads at startup; the numeric values are not the file
// indices (host/audio maps events to files explicitly).
type SoundEvent int

const (
	UFOStart SoundEvent = iota
	UFOStop
	Shot
	PlayerDeath
	InvaderDeath
	Fleet1
	Fleet2
	Fleet3
	Fleet4
	UFOHit
)

func (e SoundEvent) String() string {
	switch e {
	case UFOStart:
		return "UFOStart"
	case UFOStop:
		return "UFOStop"
	case Shot:
		return "Shot"
	case PlayerDeath:
		return "PlayerDeath"
	case InvaderDeath:
		return "InvaderDeath"
	case Fleet1:
		return "Fleet1"
	case Fleet2:
		return "Fleet2"
	case Fleet3:
		return "Fleet3"
	case Fleet4:
		return "Fleet4"
	case UFOHit:
		return "UFOHit"
	default:
		return "Unknown"
	}
}

// EventSink receives sound events as they fire. Implementations (see
// host/audio) own their own playback failure handling: a sink that can't
// actually play sound should still accept every event silently rather than
// make the Sound Trigger aware anything went wrong (§7 error handling:
// audio failures are non-fatal).
type EventSink interface {
	Fire(SoundEvent)
}

// NullSink discards every event. It's the default when no audio backend is
// wired, and what the cabinet falls back to after an audio init failure.
type NullSink struct{}

func (NullSink) Fire(SoundEvent) {}
