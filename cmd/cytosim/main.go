package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cytosim/audio"
	"github.com/lixenwraith/cytosim/config"
	"github.com/lixenwraith/cytosim/parameter"
	"github.com/lixenwraith/cytosim/render"
	"github.com/lixenwraith/cytosim/render/renderers"
	"github.com/lixenwraith/cytosim/sim"
	"github.com/lixenwraith/cytosim/status"
	"github.com/lixenwraith/cytosim/vmath"
)

var (
	configFlag = flag.String("config", "", "TOML config file overlaid on defaults")
	fpsFlag    = flag.Int("fps", parameter.FPSDefault, "Initial frame rate")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/cytosim.log")
	assertFlag = flag.Bool("assert", false, "Panic on a violated world invariant")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

// App owns the terminal, the simulation and the control surface state
type App struct {
	screen tcell.Screen
	sim    *sim.Simulation
	orch   *render.Orchestrator
	sound  *audio.SoundManager
	status *status.Registry
	mode   render.ColorMode

	labels *renderers.CountdownRenderer

	paused bool
	fps    int
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cytosim: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *assertFlag {
		cfg.Debug.AssertInvariants = true
	}

	reg := status.NewRegistry()
	opts := []sim.Option{sim.WithLogger(log.Default()), sim.WithStatus(reg)}
	if *seedFlag != 0 {
		opts = append(opts, sim.WithRand(vmath.NewFastRand(*seedFlag)))
	}
	s, err := sim.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cytosim: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCYTOSIM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app := newApp(screen, s, reg, render.ParseColorMode(*colorFlag))
	app.fps = clampFPS(*fpsFlag)

	if err := app.sound.Initialize(); err != nil {
		log.Printf("[AUDIO] init failed, continuing without sound: %v", err)
	}
	app.sound.SetMuted(*muteFlag)

	app.run()
	app.cleanup()
}

func newApp(screen tcell.Screen, s *sim.Simulation, reg *status.Registry, mode render.ColorMode) *App {
	a := &App{
		screen: screen,
		sim:    s,
		orch:   render.NewOrchestrator(screen, mode),
		sound:  audio.NewSoundManager(),
		status: reg,
		mode:   mode,
		labels: renderers.NewCountdownRenderer(),
		fps:    parameter.FPSDefault,
	}

	a.orch.Register(renderers.NewArenaRenderer(), render.PriorityBackground)
	a.orch.Register(renderers.NewCellRenderer(), render.PriorityCells)
	a.orch.Register(renderers.NewAgentRenderer(), render.PriorityAgents)
	a.orch.Register(a.labels, render.PriorityLabels)
	a.orch.Register(renderers.NewTimelineRenderer(), render.PriorityChart)
	a.orch.Register(renderers.NewHUDRenderer(), render.PriorityUI)
	return a
}

func clampFPS(fps int) int {
	return min(max(fps, parameter.FPSMin), parameter.FPSMax)
}

func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}

// dt is derived from the frame rate, not wall time, so runs stay reproducible
func frameDt(fps int) float64 {
	return 1.0 / float64(max(fps, parameter.FPSFloor))
}

// handleInput applies one terminal event; false means quit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			a.paused = !a.paused
		case 's', 'S':
			a.sim.StepDecision()
		case 'r', 'R':
			a.sim.Reset()
			log.Printf("[INPUT] reset")
		case '+', '=':
			a.fps = clampFPS(a.fps + parameter.FPSStep)
		case '-', '_':
			a.fps = clampFPS(a.fps - parameter.FPSStep)
		case 'm', 'M':
			a.sound.SetMuted(!a.sound.IsMuted())
		case 'c', 'C':
			a.labels.Toggle()
		}

	case *tcell.EventResize:
		a.orch.Resize()
	}
	return true
}

// frame advances the simulation unless paused, plays cues and draws
func (a *App) frame() {
	if !a.paused {
		a.sim.Tick(frameDt(a.fps))
	}
	a.sound.HandleEvents(a.sim.Events())

	snap := a.sim.Snapshot()
	w, h := a.orch.Size()
	ctx := render.NewContext(&snap, w, h, a.mode)
	ctx.Paused = a.paused
	ctx.Muted = a.sound.IsMuted()
	ctx.FPS = a.fps
	ctx.Metrics = a.status.Read()
	a.orch.RenderFrame(ctx)
}

func (a *App) run() {
	fps := a.fps
	ticker := time.NewTicker(frameInterval(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.frame()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if a.fps != fps {
				fps = a.fps
				ticker.Reset(frameInterval(fps))
			}
			a.frame()
		}
	}
}

func (a *App) cleanup() {
	a.sound.Cleanup()
	a.screen.Fini()
}
