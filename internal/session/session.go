// Package session steps the heart scene one frame at a time. It owns the
// animation, camera and UI state and the music request in flight; the game
// package feeds it input sampled from the window.
package session

import (
	"fmt"
	"image"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/iburimskiy/heart-visualization/internal/anim"
	"github.com/iburimskiy/heart-visualization/internal/audio"
	"github.com/iburimskiy/heart-visualization/internal/config"
	"github.com/iburimskiy/heart-visualization/internal/orbit"
	"github.com/iburimskiy/heart-visualization/internal/scene"
	"github.com/iburimskiy/heart-visualization/internal/ui"
)

// Music is the player the session drives. Play and Load may block and are
// called off the frame loop.
type Music interface {
	Paused() bool
	Play() error
	Pause()
	Load(path string) error
	Path() string
	Tap() *audio.Tap
}

// Dialogs pops up messages and the file picker.
type Dialogs interface {
	Notice(msg string)
	ChooseMusic() (string, error)
}

// Key is a keyboard command.
type Key int

const (
	KeyQuit Key = iota
	KeyEscape
	KeyPulse
	KeyMusic
	KeyReset
	KeyLetter
	KeyChoose
)

var keyIntents = map[Key]ui.Intent{
	KeyPulse:  ui.TogglePulse,
	KeyMusic:  ui.ToggleAudio,
	KeyReset:  ui.ResetCamera,
	KeyLetter: ui.OpenOverlay,
}

// Button is one mouse button this frame.
type Button struct {
	Down     bool
	Pressed  bool
	Released bool
}

// Input is what the user did since the previous frame.
type Input struct {
	// Keys went down this frame, in the order they are handled.
	Keys   []Key
	Cursor image.Point
	// Move is the cursor travel since the previous frame.
	Move        image.Point
	Left, Right Button
	Wheel       float64
}

// Options are the pieces a session is built from.
type Options struct {
	Log     *zap.Logger
	Scene   *scene.Scene
	Music   Music
	Dialogs Dialogs
	Width   int
	Height  int
	// TPS is the frame rate the camera damping is tuned for.
	TPS int
}

type musicResult struct {
	err error
	// chosen is set when the user picked the file
	chosen bool
}

// Session is the state of one run of the scene. Step must only be called
// from one goroutine.
type Session struct {
	Scene    *scene.Scene
	Viewport *scene.Viewport
	Orbit    *orbit.Controls
	Anim     anim.State
	UI       *ui.Controller
	Meter    *audio.Meter

	log     *zap.Logger
	music   Music
	dialogs Dialogs

	// which buttons started their press on the controls
	uiPress   bool
	camPress  [2]bool
	musicDone chan musicResult
	pending   bool
	lastErr   error
}

func New(o Options) *Session {
	s := &Session{
		Scene:     o.Scene,
		Viewport:  scene.NewViewport(o.Scene.Camera, o.Width, o.Height),
		Orbit:     orbit.New(o.Scene.Camera, o.TPS),
		Anim:      anim.New(),
		Meter:     audio.NewMeter(config.MeterBands),
		log:       o.Log,
		music:     o.Music,
		dialogs:   o.Dialogs,
		musicDone: make(chan musicResult, 1),
	}
	s.UI = ui.NewController(&s.Anim, o.Music, o.Width, o.Height)
	s.applyAnimation()
	return s
}

// Step runs one frame: finished music requests first, then input, then the
// animation and the camera. It reports whether the user asked to quit.
func (s *Session) Step(in Input) (quit bool) {
	s.drainMusic()

	if s.handleKeys(in.Keys) {
		return true
	}
	s.handleMouse(in)

	s.Anim = anim.Tick(s.Anim)
	s.applyAnimation()
	s.Orbit.Update()

	if s.music.Paused() {
		s.Meter.Update(nil)
	} else {
		s.Meter.Update(s.music.Tap())
	}
	return false
}

// Resize follows a change of the drawing surface.
func (s *Session) Resize(w, h int) {
	if w == s.Viewport.Width && h == s.Viewport.Height {
		return
	}
	s.Viewport.Resize(w, h)
	s.UI.Layout(w, h)
}

// Pending reports whether a play or file request is still running.
func (s *Session) Pending() bool { return s.pending }

func (s *Session) applyAnimation() {
	s.Scene.Heart.Rotation.Y = s.Anim.HeartSpin
	s.Scene.Heart.Scale = s.Anim.Scale()
	s.Scene.Particles.Rotation.Y = s.Anim.FieldSpin
}

func (s *Session) handleKeys(keys []Key) (quit bool) {
	for _, k := range keys {
		switch k {
		case KeyQuit:
			return true
		case KeyEscape:
			if !s.UI.Overlay.Visible {
				return true
			}
			s.apply(s.UI.Handle(ui.CloseOverlay))
		case KeyChoose:
			s.chooseMusic()
		default:
			if intent, ok := keyIntents[k]; ok {
				s.apply(s.UI.Handle(intent))
			}
		}
	}
	return false
}

func (s *Session) handleMouse(in Input) {
	x, y := in.Cursor.X, in.Cursor.Y

	if in.Left.Pressed {
		s.uiPress = s.UI.Captures(x, y)
		s.camPress[0] = !s.uiPress
	}
	if in.Left.Released && s.uiPress {
		s.apply(s.UI.Click(x, y))
		s.uiPress = false
	}
	if !in.Left.Down {
		s.camPress[0] = false
	}

	if in.Right.Pressed {
		s.camPress[1] = !s.UI.Captures(x, y)
	}
	if !in.Right.Down {
		s.camPress[1] = false
	}

	if s.UI.Overlay.Visible {
		return
	}
	h := s.Viewport.Height
	dx, dy := float64(in.Move.X), float64(in.Move.Y)
	if s.camPress[0] && !in.Left.Pressed {
		s.Orbit.Rotate(dx, dy, h)
	}
	if s.camPress[1] && !in.Right.Pressed {
		s.Orbit.Pan(dx, dy, h)
	}
	if in.Wheel != 0 {
		s.Orbit.Dolly(in.Wheel)
	}
}

// apply carries out what the controller could not do itself.
func (s *Session) apply(effects []ui.Effect) {
	for _, e := range effects {
		s.log.Debug("effect", zap.Stringer("kind", e.Kind))
		switch e.Kind {
		case ui.PlayAudio:
			s.request(func() musicResult { return musicResult{err: s.music.Play()} })
		case ui.PauseAudio:
			if !s.pending {
				s.music.Pause()
			}
		case ui.ResetView:
			s.Orbit.Reset()
		case ui.ShowNotice:
			s.dialogs.Notice(e.Message)
		}
	}
}

func (s *Session) chooseMusic() {
	s.request(func() musicResult {
		path, err := s.dialogs.ChooseMusic()
		if err == nil && path != "" {
			err = s.music.Load(path)
		}
		return musicResult{err: err, chosen: true}
	})
}

// request runs fn off the frame loop; the result is picked up by
// drainMusic. Requests made while one is in flight are dropped.
func (s *Session) request(fn func() musicResult) {
	if s.pending {
		s.log.Debug("music request dropped")
		return
	}
	s.pending = true
	go func() { s.musicDone <- fn() }()
}

func (s *Session) drainMusic() {
	select {
	case res := <-s.musicDone:
		s.pending = false
		switch {
		case res.err != nil && res.chosen:
			s.log.Warn("music file rejected", zap.Error(res.err))
			s.lastErr = res.err
			s.dialogs.Notice(res.err.Error())
		case res.err != nil:
			s.log.Warn("music did not start", zap.Error(res.err))
			s.lastErr = res.err
			s.apply(s.UI.PlaybackFailed())
		default:
			s.lastErr = nil
			if !s.music.Paused() {
				s.UI.PlaybackStarted()
			}
		}
	default:
	}
}

// Status is the one-line help and music state shown under the scene.
func (s *Session) Status() string {
	var st string
	switch {
	case s.pending:
		st = "Starting music..."
	case s.music.Paused():
		st = "Music paused - M to play, O to choose a song"
	default:
		st = fmt.Sprintf("Playing %s - M to pause, O to choose another song", s.songName())
	}
	st += " | drag: orbit, right drag: pan, wheel: zoom"
	if s.lastErr != nil {
		st += " | Error: " + s.lastErr.Error()
	}
	return st
}

func (s *Session) songName() string {
	if p := s.music.Path(); p != "" {
		return filepath.Base(p)
	}
	return "the built-in tune"
}
