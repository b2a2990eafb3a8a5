package scheduler

import "testing"

// fakeCPU steps at a fixed cost per instruction and tracks how many
// interrupts of each kind were generated, without actually running any
// 8080 semantics — the scheduler doesn't need to know them.
type fakeCPU struct {
	stepCost   int
	ie         bool
	halted     bool
	steps      int
	interrupts []int
}

func (f *fakeCPU) Step() int {
	f.steps++
	return f.stepCost
}
func (f *fakeCPU) GenerateInterrupt(n int) { f.interrupts = append(f.interrupts, n) }
func (f *fakeCPU) IEEnabled() bool         { return f.ie }
func (f *fakeCPU) IsHalted() bool          { return f.halted }

type fakeVideo struct{}

func (fakeVideo) Pixel(x, y int) bool { return false }

type fakeFrames struct{ presented int }

func (f *fakeFrames) Present(sample func(x, y int) bool) { f.presented++ }

func TestRunFrameInjectsTwoInterruptsWhenIEEnabled(t *testing.T) {
	cpu := &fakeCPU{stepCost: 1000, ie: true}
	frames := &fakeFrames{}
	s := &Scheduler{CPU: cpu, Video: fakeVideo{}, Frames: frames}
	s.RunFrame()

	if len(cpu.interrupts) < 2 {
		t.Fatalf("interrupts = %v, want at least RST1 then RST2", cpu.interrupts)
	}
	if cpu.interrupts[0] != 1 {
		t.Fatalf("first interrupt = %d, want 1", cpu.interrupts[0])
	}
	foundTwo := false
	for _, n := range cpu.interrupts[1:] {
		if n == 2 {
			foundTwo = true
		}
	}
	if !foundTwo {
		t.Fatalf("no RST 2 among %v", cpu.interrupts)
	}
	if frames.presented != 1 {
		t.Fatalf("presented = %d, want 1", frames.presented)
	}
}

func TestRunFrameSkipsInterruptsWhenIEDisabled(t *testing.T) {
	cpu := &fakeCPU{stepCost: 1000, ie: false}
	s := &Scheduler{CPU: cpu, Video: fakeVideo{}, Frames: &fakeFrames{}}
	s.RunFrame()
	if len(cpu.interrupts) != 0 {
		t.Fatalf("interrupts = %v, want none while IE disabled", cpu.interrupts)
	}
}

func TestRunFrameStopsEarlyWhenHalted(t *testing.T) {
	cpu := &fakeCPU{stepCost: 1000, halted: true}
	s := &Scheduler{CPU: cpu, Video: fakeVideo{}, Frames: &fakeFrames{}}
	s.RunFrame()
	if cpu.steps != 0 {
		t.Fatalf("steps = %d, want 0 (halted before first step)", cpu.steps)
	}
}
