// Package anim holds the per-frame animation state of the heart and the
// particle field. Frames advance through Tick; the pulse is switched only by
// TogglePulse.
package anim

import (
	"math"

	"github.com/iburimskiy/heart-visualization/internal/config"
	"github.com/iburimskiy/heart-visualization/internal/math3d"
)

// State is the animation state shared by the frame loop and the UI.
type State struct {
	Pulsing bool
	// Time only advances while Pulsing.
	Time       float64
	HeartScale float64
	// HeartSpin and FieldSpin are the accumulated Y rotations, in [0, 2π).
	HeartSpin float64
	FieldSpin float64
}

// New returns the state at page load: pulsing, time zero, unit scale.
func New() State {
	return State{Pulsing: true, HeartScale: 1}
}

// PulseScale is the uniform heart scale at time t.
func PulseScale(t float64) float64 {
	return 1 + math.Sin(t)*config.PulseAmplitude
}

// Tick advances one frame.
func Tick(s State) State {
	if s.Pulsing {
		s.Time += config.PulseStep
		s.HeartScale = PulseScale(s.Time)
	}
	s.HeartSpin = math3d.WrapAngle(s.HeartSpin + config.HeartSpinSpeed)
	s.FieldSpin = math3d.WrapAngle(s.FieldSpin - config.FieldSpinSpeed)
	return s
}

// TogglePulse flips the pulse. Stopping resets the heart to unit scale.
func TogglePulse(s State) State {
	s.Pulsing = !s.Pulsing
	if !s.Pulsing {
		s.HeartScale = 1
	}
	return s
}

// Scale returns HeartScale as a uniform scale vector.
func (s State) Scale() math3d.Vec3 {
	return math3d.One().Scale(s.HeartScale)
}
