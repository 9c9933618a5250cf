package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/impact/audio"
	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/parameter"
	"github.com/lixenwraith/impact/render"
	"github.com/lixenwraith/impact/scene"
	"github.com/lixenwraith/impact/stream"
	"github.com/lixenwraith/impact/vmath"
)

// Sandbox owns the screen and the running simulation; all fields belong to the run goroutine
type Sandbox struct {
	screen tcell.Screen
	clock  engine.TimeSource

	cfg       scene.Config
	scenePath string
	sim       *engine.Simulation[vmath.Vec2, float64]
	stepper   *engine.Stepper

	showVelocity bool
	lastButtons  tcell.ButtonMask
	err          error

	// Optional outputs, nil when disabled
	player *audio.ImpactPlayer
	hub    *stream.Hub

	reloads chan scene.Config
}

// NewSandbox builds the scene and returns a paused sandbox drawing to screen
func NewSandbox(screen tcell.Screen, clock engine.TimeSource, cfg scene.Config, scenePath string) (*Sandbox, error) {
	s := &Sandbox{
		screen:    screen,
		clock:     clock,
		scenePath: scenePath,
		reloads:   make(chan scene.Config, 1),
	}
	if err := s.applyScene(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// applyScene replaces the simulation; the previous one is kept if cfg does not build
func (s *Sandbox) applyScene(cfg scene.Config) error {
	sim, err := cfg.Build()
	if err != nil {
		return err
	}
	sim.SetLogger(log.Default())

	s.cfg = cfg
	s.sim = sim
	s.stepper = engine.NewStepper(s.clock, cfg.Simulation.TickRate)
	s.showVelocity = cfg.View.ShowVelocity
	s.err = nil

	log.Printf("scene applied: %d bodies, step %g, tick rate %d", sim.Len(), cfg.Simulation.Step, cfg.Simulation.TickRate)
	s.broadcast()
	return nil
}

// reload re-reads the scene file, or rebuilds the current scene when running the built-in one
func (s *Sandbox) reload() {
	cfg := s.cfg
	if s.scenePath != "" {
		loaded, err := scene.Load(s.scenePath)
		if err != nil {
			log.Printf("reload failed: %v", err)
			s.err = err
			return
		}
		cfg = loaded
	}
	if err := s.applyScene(cfg); err != nil {
		log.Printf("reload failed: %v", err)
		s.err = err
	}
}

// step advances n ticks, stopping and pausing at the first error
func (s *Sandbox) step(n int) {
	for range n {
		if err := s.sim.Tick(s.cfg.Simulation.Step); err != nil {
			log.Printf("tick failed, pausing: %v", err)
			s.err = err
			s.stepper.Pause()
			return
		}
		s.err = nil

		stats := s.sim.LastStats()
		if stats.Contacts > 0 && s.player != nil {
			s.player.PlayImpact(stats.PeakImpulse)
		}
		s.broadcast()
	}
}

func (s *Sandbox) broadcast() {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(stream.FrameOf(s.sim, s.cfg.Simulation.Step))
}

// HandleEvent applies one input event and returns false when the sandbox should exit
func (s *Sandbox) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.step(1)
			case 'p':
				if s.stepper.Interval() == 0 {
					log.Printf("auto stepping unavailable: tick_rate is 0")
					break
				}
				s.stepper.Toggle()
			case 'v':
				s.showVelocity = !s.showVelocity
			case 'r':
				s.reload()
			}
		}

	case *tcell.EventMouse:
		// Step on press only, not while the button is held
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && s.lastButtons&tcell.Button1 == 0 {
			s.step(1)
		}
		s.lastButtons = buttons

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// Frame releases due automatic ticks and redraws
func (s *Sandbox) Frame() {
	if n := s.stepper.Due(); n > 0 {
		s.step(n)
	}
	s.draw()
}

func (s *Sandbox) hud() render.HUD {
	return render.HUD{
		Tick:     s.sim.TickCount(),
		Bodies:   s.sim.Len(),
		Contacts: s.sim.LastStats().Contacts,
		Momentum: engine.ScalarMomentum(s.sim.Objects()),
		Energy:   engine.KineticEnergy(s.sim.Objects()),
		Step:     s.cfg.Simulation.Step,
		Auto:     !s.stepper.Paused(),
		Err:      s.err,
	}
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	w, h := s.screen.Size()

	vp := render.Viewport{Width: w, Height: h - parameter.BottomMargin, Scale: s.cfg.View.Scale}
	render.DrawScene(s.screen, vp, s.sim, render.SceneOptions{
		ShowVelocity: s.showVelocity,
		Step:         s.cfg.Simulation.Step,
	})
	if h > 0 {
		render.DrawHUD(s.screen, h-1, s.hud())
	}
	s.screen.Show()
}

// Reloads receives scenes from the file watcher
func (s *Sandbox) Reloads() chan<- scene.Config { return s.reloads }

// Run drives the sandbox until ctx is done or the user quits
// crash is called from the input goroutine if it panics
func (s *Sandbox) Run(ctx context.Context, crash func(any)) {
	frame := time.NewTicker(parameter.FrameInterval)
	defer frame.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !s.HandleEvent(ev) {
				return
			}

		case cfg := <-s.reloads:
			if err := s.applyScene(cfg); err != nil {
				log.Printf("watched scene rejected: %v", err)
				s.err = err
			}

		case <-frame.C:
			s.Frame()
		}
	}
}
