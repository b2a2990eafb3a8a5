// Package scheduler drives the CPU core for one video frame at a time,
// injecting the two vertical-blank interrupts a Space Invaders cabinet
// expects and pacing real wall-clock time to the tube's 60 Hz refresh.
package scheduler

import (
	"time"
)

const (
	clockHz   = 2_000_000
	refreshHz = 60

	cyclesPerFrame     = clockHz / refreshHz // 33,333
	cyclesPerHalfFrame = cyclesPerFrame / 2   // 16,666

	// halfFrameSlack preserves the source's interrupt-timing quirk: the
	// half-frame threshold is checked 19 cycles early.
	halfFrameSlack = 19
)

// CPU is the subset of cpu8080.CPU the scheduler drives. Kept as an
// interface so this package never imports cpu8080 and tests can supply a
// fake.
type CPU interface {
	Step() int
	GenerateInterrupt(n int)
	IEEnabled() bool
	IsHalted() bool
}

// FrameSink receives a sampled frame once per vertical refresh. The host
// video backend implements this to rotate/scale/present it.
type FrameSink interface {
	Present(sample func(x, y int) bool)
}

// InputSource is polled once per frame for pending key events and reports
// whether the run loop should terminate (Escape / window close).
type InputSource interface {
	Poll() (quit bool)
}

// VideoSampler is the part of cabinet.VideoSampler the scheduler needs to
// hand to the FrameSink.
type VideoSampler interface {
	Pixel(x, y int) bool
}

// Scheduler owns the run loop: step the CPU, inject interrupts at the
// programmed cycle offsets, sample video, poll input, and pace to 60 Hz.
type Scheduler struct {
	CPU    CPU
	Video  VideoSampler
	Frames FrameSink
	Input  InputSource

	// Clock ticks once per frame at refreshHz; overridable in tests so they
	// don't have to wait on a real 1/60s ticker.
	Clock *time.Ticker
}

// New constructs a Scheduler with a live 60 Hz pacing ticker.
func New(cpu CPU, video VideoSampler, frames FrameSink, input InputSource) *Scheduler {
	return &Scheduler{
		CPU:    cpu,
		Video:  video,
		Frames: frames,
		Input:  input,
		Clock:  time.NewTicker(time.Second / refreshHz),
	}
}

// Close stops the pacing ticker.
func (s *Scheduler) Close() {
	if s.Clock != nil {
		s.Clock.Stop()
	}
}

// Run drives frames until the CPU halts or the input source signals quit.
func (s *Scheduler) Run() {
	for {
		s.RunFrame()
		if s.CPU.IsHalted() {
			return
		}
		if s.Input != nil && s.Input.Poll() {
			return
		}
		if s.Clock != nil {
			<-s.Clock.C
		}
	}
}

// RunFrame executes exactly one video frame's worth of instructions,
// injecting RST 1 at mid-frame and RST 2 at end-of-frame when interrupts
// are enabled, then presents the sampled frame.
func (s *Scheduler) RunFrame() {
	firstInterrupt := true
	var total, sinceLastInterrupt int

	for total <= cyclesPerFrame {
		if s.CPU.IsHalted() {
			break
		}
		c := s.CPU.Step()
		total += c
		sinceLastInterrupt += c

		if sinceLastInterrupt >= cyclesPerHalfFrame-halfFrameSlack && s.CPU.IEEnabled() {
			if firstInterrupt {
				s.CPU.GenerateInterrupt(1)
				firstInterrupt = false
				sinceLastInterrupt = 0
			} else {
				s.CPU.GenerateInterrupt(2)
			}
		}
	}

	if s.Frames != nil && s.Video != nil {
		s.Frames.Present(s.Video.Pixel)
	}
}
