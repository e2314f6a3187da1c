// Package ui turns button presses into state changes and side-effect
// requests. It knows nothing about the window or the audio device; the game
// loop carries out the returned effects.
package ui

// Intent is something the user asked for.
type Intent int

const (
	ToggleAudio Intent = iota
	TogglePulse
	ResetCamera
	OpenOverlay
	CloseOverlay
)

func (i Intent) String() string {
	switch i {
	case ToggleAudio:
		return "toggle-audio"
	case TogglePulse:
		return "toggle-pulse"
	case ResetCamera:
		return "reset-camera"
	case OpenOverlay:
		return "open-overlay"
	case CloseOverlay:
		return "close-overlay"
	default:
		return "unknown"
	}
}

// EffectKind is a side effect the host must perform.
type EffectKind int

const (
	PlayAudio EffectKind = iota
	PauseAudio
	ResetView
	ShowNotice
)

func (k EffectKind) String() string {
	switch k {
	case PlayAudio:
		return "play-audio"
	case PauseAudio:
		return "pause-audio"
	case ResetView:
		return "reset-view"
	case ShowNotice:
		return "show-notice"
	default:
		return "unknown"
	}
}

// Effect is a request for the host. Message is set for ShowNotice.
type Effect struct {
	Kind    EffectKind
	Message string
}

// AutoplayNotice is shown when the audio device refuses to start.
const AutoplayNotice = "Please click on the window first to enable audio!"

// PulseLabel is the pulse button's text for the given state.
func PulseLabel(pulsing bool) string {
	if pulsing {
		return "Stop Pulse"
	}
	return "Start Pulse"
}

// MusicLabel is the music button's text for the given state.
func MusicLabel(paused bool) string {
	if paused {
		return "Play Music"
	}
	return "Pause Music"
}
