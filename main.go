// Command invaders8080 runs a Space Invaders arcade cabinet emulator: an
// Intel 8080 interpreter driving the cabinet's memory-mapped I/O (shift
// register, sound triggers, input ports) through a 60 Hz frame/interrupt
// scheduler.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"invaders8080/cabinet"
	"invaders8080/cpu8080"
	"invaders8080/debugmon"
	"invaders8080/host/audio"
	"invaders8080/host/input"
	"invaders8080/host/video"
	"invaders8080/memory"
	"invaders8080/scheduler"
)

func main() {
	var debug bool
	var headless bool
	var monitor bool
	var samplesDir string

	root := &cobra.Command{
		Use:   "invaders8080 <rom>",
		Short: "Space Invaders cabinet emulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], debug, headless, monitor, samplesDir)
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "enable the CP/M diagnostic hook")
	root.Flags().BoolVar(&headless, "headless", false, "use a no-op input source (the window and audio device are still opened unless built with -tags headless)")
	root.Flags().BoolVar(&monitor, "monitor", false, "open the interactive step monitor instead of running free (implies --debug)")
	root.Flags().StringVar(&samplesDir, "samples", "samples", "directory containing 0.wav..8.wav")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(romPath string, debug, headless, monitor bool, samplesDir string) error {
	if monitor {
		debug = true
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("rom: %w", err)
	}
	maxLen := 0x3F00
	if debug {
		maxLen = 0x3E00
	}
	if len(rom) > maxLen {
		return fmt.Errorf("rom: %d bytes exceeds %d-byte limit (debug=%v)", len(rom), maxLen, debug)
	}

	mem := memory.New(rom, debug)
	machine := cabinet.NewMachine(mem)
	cpu := cpu8080.New(machine, debug)

	mapper := cabinet.NewInputMapper(machine.Ports)
	mapper.SetLives(3)
	mapper.SetBonusLife(false)

	sampler := cabinet.NewVideoSampler(mem.VRAM())

	videoOut, err := video.NewEbitenOutput("Space Invaders")
	if err != nil {
		return fmt.Errorf("video: %w", err)
	}
	defer videoOut.Close()

	if audioPlayer, err := audio.Open(samplesDir); err != nil {
		log.Printf("audio: %v (continuing with sound disabled)", err)
		machine.Sound.Sink = cabinet.NullSink{}
	} else {
		machine.Sound.Sink = audioPlayer
		defer audioPlayer.Close()
	}

	var inputSource inputSourceCloser
	if headless {
		inputSource = noopInputSource{}
	} else {
		inputSource = input.NewEbitenSource(mapper)
	}
	defer inputSource.Close()

	sched := scheduler.New(cpu, sampler, video.Sink{Output: videoOut}, quitAggregator{inputSource, videoOut})
	defer sched.Close()

	if monitor {
		return debugmon.Run(cpuInspector{cpu, mem})
	}

	sched.Run()
	return nil
}

// inputSourceCloser is satisfied by both host/input backends.
type inputSourceCloser interface {
	Poll() (quit bool)
	Close()
}

type noopInputSource struct{}

func (noopInputSource) Poll() (quit bool) { return false }
func (noopInputSource) Close()            {}

// quitAggregator reports quit if either the input backend or the video
// window asks for it.
type quitAggregator struct {
	input inputSourceCloser
	video interface{ ShouldQuit() bool }
}

func (q quitAggregator) Poll() (quit bool) {
	return q.input.Poll() || q.video.ShouldQuit()
}

// cpuInspector adapts *cpu8080.CPU to debugmon.Inspectable.
type cpuInspector struct {
	cpu *cpu8080.CPU
	mem *memory.Memory
}

func (c cpuInspector) Step() int { return c.cpu.Step() }

func (c cpuInspector) Snapshot() debugmon.Snapshot {
	return debugmon.Snapshot{
		PC: c.cpu.PC, SP: c.cpu.SP,
		A: c.cpu.A, B: c.cpu.B, C: c.cpu.C, D: c.cpu.D, E: c.cpu.E,
		H: c.cpu.H, L: c.cpu.L, F: c.cpu.F,
		IE: c.cpu.IE, Halted: c.cpu.IsHalted(),
		MemoryWindow: func(start uint16) [16]byte {
			var window [16]byte
			for i := range window {
				window[i] = c.cpu.Peek(start + uint16(i))
			}
			return window
		},
	}
}
