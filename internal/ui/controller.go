package ui

import (
	"image"

	"github.com/iburimskiy/heart-visualization/internal/anim"
	"github.com/iburimskiy/heart-visualization/internal/config"
)

// AudioState reports whether music is paused.
type AudioState interface {
	Paused() bool
}

// Button is a clickable control bound to one intent.
type Button struct {
	Intent Intent
	Rect   image.Rectangle
}

// Overlay is the modal letter. Bounds covers the whole surface; clicks on
// Bounds outside Content dismiss it.
type Overlay struct {
	Visible bool
	Bounds  image.Rectangle
	Content image.Rectangle
	Close   image.Rectangle
}

// Controller owns the UI state and maps intents onto it.
type Controller struct {
	Anim    *anim.State
	Audio   AudioState
	Overlay Overlay
	Buttons []Button
	// Notice is the last user-facing message, empty when there is none.
	Notice string
}

// NewController lays the controls out for a w×h surface.
func NewController(state *anim.State, audio AudioState, w, h int) *Controller {
	c := &Controller{
		Anim:  state,
		Audio: audio,
		Buttons: []Button{
			{Intent: ToggleAudio},
			{Intent: TogglePulse},
			{Intent: ResetCamera},
			{Intent: OpenOverlay},
		},
	}
	c.Layout(w, h)
	return c
}

// Layout places the button row along the bottom edge and centres the letter.
func (c *Controller) Layout(w, h int) {
	n := len(c.Buttons)
	row := n*config.ButtonWidth + (n-1)*config.ButtonGap
	x := (w - row) / 2
	y := h - config.ButtonMargin - config.ButtonHeight
	for i := range c.Buttons {
		c.Buttons[i].Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		x += config.ButtonWidth + config.ButtonGap
	}

	c.Overlay.Bounds = image.Rect(0, 0, w, h)
	cw, ch := min(config.LetterWidth, w-2*config.ButtonMargin), min(config.LetterHeight, h-2*config.ButtonMargin)
	cx, cy := (w-cw)/2, (h-ch)/2
	c.Overlay.Content = image.Rect(cx, cy, cx+cw, cy+ch)
	c.Overlay.Close = image.Rect(
		c.Overlay.Content.Max.X-config.CloseSize-8, cy+8,
		c.Overlay.Content.Max.X-8, cy+8+config.CloseSize,
	)
}

// Label returns the current text for a button.
func (c *Controller) Label(in Intent) string {
	switch in {
	case ToggleAudio:
		return MusicLabel(c.Audio.Paused())
	case TogglePulse:
		return PulseLabel(c.Anim.Pulsing)
	case ResetCamera:
		return "Reset View"
	case OpenOverlay:
		return "Open Letter"
	}
	return ""
}

// Handle applies an intent and returns what the host still has to do.
func (c *Controller) Handle(in Intent) []Effect {
	switch in {
	case ToggleAudio:
		if c.Audio.Paused() {
			return []Effect{{Kind: PlayAudio}}
		}
		return []Effect{{Kind: PauseAudio}}
	case TogglePulse:
		*c.Anim = anim.TogglePulse(*c.Anim)
	case ResetCamera:
		return []Effect{{Kind: ResetView}}
	case OpenOverlay:
		c.Overlay.Visible = true
	case CloseOverlay:
		c.Overlay.Visible = false
	}
	return nil
}

// Click routes a primary click at (x, y). While the letter is open it
// swallows every click.
func (c *Controller) Click(x, y int) []Effect {
	p := image.Pt(x, y)
	if c.Overlay.Visible {
		switch {
		case p.In(c.Overlay.Close):
			return c.Handle(CloseOverlay)
		case p.In(c.Overlay.Content):
			return nil
		case p.In(c.Overlay.Bounds):
			return c.Handle(CloseOverlay)
		}
		return nil
	}

	if b, ok := c.ButtonAt(x, y); ok {
		return c.Handle(b.Intent)
	}
	return nil
}

// ButtonAt returns the button under (x, y), if any. Buttons are hidden
// behind the letter while it is open.
func (c *Controller) ButtonAt(x, y int) (Button, bool) {
	if c.Overlay.Visible {
		return Button{}, false
	}
	p := image.Pt(x, y)
	for _, b := range c.Buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// Captures reports whether a press at (x, y) belongs to the UI rather than
// to the camera controls.
func (c *Controller) Captures(x, y int) bool {
	if c.Overlay.Visible {
		return true
	}
	_, ok := c.ButtonAt(x, y)
	return ok
}

// PlaybackFailed records a refused play request; the music stays paused.
func (c *Controller) PlaybackFailed() []Effect {
	c.Notice = AutoplayNotice
	return []Effect{{Kind: ShowNotice, Message: AutoplayNotice}}
}

// PlaybackStarted clears any earlier playback notice.
func (c *Controller) PlaybackStarted() {
	c.Notice = ""
}
