// Package viewer implements the interactive session: subject loading,
// camera framing, the input-driven orbit, and the frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/showroom/internal/asset"
	"github.com/Faultbox/showroom/internal/capture"
	"github.com/Faultbox/showroom/internal/config"
	"github.com/Faultbox/showroom/internal/engine/camera"
	"github.com/Faultbox/showroom/internal/engine/framebuffer"
	"github.com/Faultbox/showroom/internal/engine/input"
	"github.com/Faultbox/showroom/internal/engine/postfx"
	"github.com/Faultbox/showroom/internal/engine/renderer"
	"github.com/Faultbox/showroom/internal/engine/window"
	"github.com/Faultbox/showroom/internal/logger"
)

const baseTitle = "Showroom"

// State tracks the session lifecycle.
type State int

const (
	// StateLoading means no subject has been framed yet; input is ignored.
	StateLoading State = iota
	// StateFramed means the subject is uploaded and the camera solved.
	StateFramed
)

// Session owns the window, renderer and orbit controller for one subject.
type Session struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *framebuffer.Framebuffer
	vignette *postfx.Vignette
	pulse    *postfx.Pulse
	shots    *capture.Screenshot

	ctrl  *camera.Controller
	state State

	effect postfx.Params

	running       bool
	captureWanted bool
}

// New creates the window and GL resources, then loads the configured
// subject. A failed subject load is logged and leaves the session in the
// loading state rather than aborting.
func New(cfg *config.Config) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		state: StateLoading,
	}

	var err error
	s.window, err = window.New(window.Config{
		Title:      baseTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	s.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s.scene, err = framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create scene framebuffer: %w", err)
	}

	s.vignette, err = postfx.NewVignette()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create vignette pass: %w", err)
	}
	s.pulse = postfx.NewPulse(postfx.Params{
		FadeColor: cfg.Vignette.FadeColor,
		Strength:  cfg.Vignette.Strength,
		Radius:    cfg.Vignette.Radius,
		Softness:  cfg.Vignette.Softness,
	}, cfg.Vignette.PulseSpeed)

	s.input = input.New()
	s.shots = capture.NewScreenshot(cfg.Capture.OutputDir, "showroom")

	s.loadSubject()

	return s, nil
}

// loadSubject resolves the configured source and runs it through the
// callback contract. Failures are logged and swallowed; the session stays
// in the loading state with the title unchanged.
func (s *Session) loadSubject() {
	source, err := asset.New(s.cfg.Viewer.Asset, s.cfg.Viewer.AssetSize)
	if err != nil {
		logger.Error("subject load failed", zap.Error(err))
		return
	}

	source.Load(asset.Callbacks{
		Progress: func(frac float64) {
			s.window.SetTitle(loadingTitle(frac))
		},
		Done: func(res asset.Result) {
			s.frameSubject(res)
		},
		Fail: func(err error) {
			logger.Error("subject load failed",
				zap.String("subject", source.Name()),
				zap.Error(err),
			)
		},
	})
}

// frameSubject solves the camera for the loaded geometry and hands it to
// the renderer. Degenerate bounds count as a load failure.
func (s *Session) frameSubject(res asset.Result) {
	pose, limits, err := camera.Frame(res.Bounds, s.cfg.Viewer.FOVDegrees)
	if err != nil {
		logger.Error("subject load failed",
			zap.String("subject", res.Name),
			zap.Error(err),
		)
		return
	}

	s.renderer.SetSubject(res)
	s.ctrl = camera.NewController(pose, limits, camera.Options{
		RotateSpeed: s.cfg.Viewer.RotateSpeed,
		ZoomSpeed:   s.cfg.Viewer.ZoomSpeed,
		Damping:     s.cfg.Viewer.Damping,
	})
	s.state = StateFramed
	s.window.SetTitle(framedTitle(res.Name))

	logger.Info("subject framed",
		zap.String("subject", res.Name),
		zap.Float64("distance", s.ctrl.Distance()),
		zap.Float64("near", pose.Near),
		zap.Float64("far", pose.Far),
	)
}

// Run executes the frame loop until quit is requested.
func (s *Session) Run() error {
	s.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for s.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if s.input.Update() {
			s.running = false
			break
		}

		for _, event := range s.input.Events() {
			s.handleEvent(event)
		}

		s.update(dt)
		s.render()

		s.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (s *Session) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		s.running = false

	case input.EventWindowResize:
		s.renderer.Resize(event.Width, event.Height)
		s.scene.Resize(int32(event.Width), int32(event.Height))

	case input.EventKeyDown:
		switch event.Key {
		case input.KeyEscape:
			s.running = false
		case input.KeyR:
			if s.ctrl != nil {
				s.ctrl.Reset()
			}
		case input.KeyF12:
			s.captureWanted = true
		}

	case input.EventMouseDown:
		if s.ctrl != nil && event.Button == input.ButtonLeft {
			s.ctrl.PointerDown(event.MouseX, event.MouseY, event.Shift)
		}

	case input.EventMouseMove:
		if s.ctrl != nil {
			s.ctrl.PointerMove(event.MouseX, event.MouseY)
		}

	case input.EventMouseUp:
		if s.ctrl != nil && event.Button == input.ButtonLeft {
			s.ctrl.PointerUp()
		}

	case input.EventMouseWheel:
		if s.ctrl != nil {
			s.ctrl.HandleZoom(event.WheelY)
		}
	}
}

func (s *Session) update(dt float64) {
	if s.ctrl != nil {
		s.ctrl.Update(dt)
	}
	// A disabled vignette composites with zero strength, which is a plain
	// passthrough.
	if s.cfg.Vignette.Enabled {
		s.effect = s.pulse.Advance(dt)
	}
}

func (s *Session) render() {
	// The subject always renders into the offscreen target; the composite
	// pass brings it to the screen with the vignette applied, or untouched
	// when the effect is disabled.
	s.scene.Bind()
	s.renderer.Begin()
	if s.ctrl != nil {
		s.renderer.Draw(s.ctrl.Pose())
	}
	s.scene.Unbind()

	s.vignette.Draw(s.scene.ColorTexture(), s.effect)

	if s.captureWanted {
		s.captureWanted = false
		s.saveScreenshot()
	}
}

func (s *Session) saveScreenshot() {
	pixels, width, height := s.renderer.ReadPixels()
	path, err := s.shots.SavePixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases all session resources.
func (s *Session) Close() {
	logger.Info("closing viewer")

	if s.vignette != nil {
		s.vignette.Destroy()
	}
	if s.scene != nil {
		s.scene.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Close()
	}
	if s.window != nil {
		s.window.Close()
	}
}

func loadingTitle(frac float64) string {
	pct := int(frac * 100)
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("%s - loading %d%%", baseTitle, pct)
}

func framedTitle(name string) string {
	return fmt.Sprintf("%s - %s", baseTitle, name)
}
