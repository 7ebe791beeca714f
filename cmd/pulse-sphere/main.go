// pulse-sphere renders an animated point cloud on a sphere in the
// terminal: golden-angle distributed points joined by fading lines, pulsing
// through staggered timelines, with an orbitable camera.
//
// Controls: arrows or h/j/k/l orbit, +/- zoom, mouse drag orbits,
// q/Esc/Ctrl-C quits.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pulse-sphere/audio"
	"github.com/lixenwraith/pulse-sphere/cloud"
	"github.com/lixenwraith/pulse-sphere/parameter"
	"github.com/lixenwraith/pulse-sphere/render"
)

type app struct {
	screen   tcell.Screen
	frame    *render.Frame
	cam      *render.Camera
	renderer *render.Renderer
	group    *cloud.Group
	cue      *audio.Cue

	epoch time.Time

	// mouse drag state
	dragging     bool
	dragX, dragY int
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	cam := render.NewCamera()

	a := &app{
		screen:   screen,
		frame:    render.NewFrame(w, h),
		cam:      cam,
		renderer: render.NewRenderer(cam),
		cue:      audio.NewCue(),
		epoch:    time.Now(),
	}

	a.group, err = cloud.NewGroup(a.now())
	if err != nil {
		screen.Fini()
		return nil, err
	}

	// Non-fatal, the artifact runs silent without a speaker
	if err := a.cue.Init(); err != nil {
		log.Printf("audio init failed: %v", err)
	}

	return a, nil
}

// now is the shared clock: milliseconds since process epoch, sampled once
// per frame and passed down to every timeline.
func (a *app) now() float64 {
	return float64(time.Since(a.epoch)) / float64(time.Millisecond)
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / parameter.TargetFPS)
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 64)
	go func() {
		for {
			eventCh <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventCh:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.step()
		}
	}
}

// step advances all timelines by one clock sample and redraws.
func (a *app) step() {
	now := a.now()
	if a.group.Advance(now) {
		a.cue.Pulse()
	}
	rotY := parameter.InitialRotationY + now*parameter.AutoSpinRadPerMS
	a.renderer.Draw(a.frame, a.group, rotY)
	a.frame.Flush(a.screen)
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.cam.Orbit(0, parameter.OrbitStepRad)
		case tcell.KeyDown:
			a.cam.Orbit(0, -parameter.OrbitStepRad)
		case tcell.KeyLeft:
			a.cam.Orbit(-parameter.OrbitStepRad, 0)
		case tcell.KeyRight:
			a.cam.Orbit(parameter.OrbitStepRad, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				a.cam.Orbit(-parameter.OrbitStepRad, 0)
			case 'l':
				a.cam.Orbit(parameter.OrbitStepRad, 0)
			case 'k':
				a.cam.Orbit(0, parameter.OrbitStepRad)
			case 'j':
				a.cam.Orbit(0, -parameter.OrbitStepRad)
			case '+', '=':
				a.cam.Zoom(-parameter.ZoomStep)
			case '-', '_':
				a.cam.Zoom(parameter.ZoomStep)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			if a.dragging {
				// Cell aspect halves vertical sensitivity
				a.cam.Orbit(
					float64(x-a.dragX)*parameter.OrbitStepRad*0.5,
					float64(y-a.dragY)*parameter.OrbitStepRad,
				)
			}
			a.dragging = true
			a.dragX, a.dragY = x, y
		} else {
			a.dragging = false
		}

	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.frame.Resize(w, h)
		a.screen.Sync()
	}
	return true
}

func (a *app) cleanup() {
	a.cue.Close()
	a.screen.Fini()
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
