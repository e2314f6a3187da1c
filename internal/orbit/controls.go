// Package orbit lets the user orbit, zoom and pan the camera around its target
// with inertial damping.
package orbit

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/heart-visualization/internal/math3d"
	"github.com/iburimskiy/heart-visualization/internal/scene"
)

const (
	// DampingFrequency is the angular frequency of the springs that bleed off
	// orbit velocity. Damping ratio 1 = critically damped, no overshoot.
	DampingFrequency = 6.0
	dampingRatio     = 1.0

	// below this a velocity is treated as settled
	restVelocity = 1e-7

	phiEpsilon = 1e-6
)

// axis carries one component of orbit motion, decayed toward 0 by a spring.
type axis struct {
	Velocity float64
	accel    float64
}

func (a *axis) decay(s *harmonica.Spring) {
	a.Velocity, a.accel = s.Update(a.Velocity, a.accel, 0)
	if math.Abs(a.Velocity) < restVelocity && math.Abs(a.accel) < restVelocity {
		a.Velocity, a.accel = 0, 0
	}
}

func (a *axis) stop() { *a = axis{} }

// Controls orbits a camera around its target.
type Controls struct {
	cam *scene.Camera

	EnableDamping bool
	RotateSpeed   float64
	ZoomSpeed     float64
	PanSpeed      float64
	MinDistance   float64
	MaxDistance   float64

	spring harmonica.Spring
	// gain converts a requested displacement into an initial velocity so the
	// damped motion covers the same total distance.
	gain float64

	theta, phi axis
	panX, panY axis
	panZ       axis
	dolly      float64

	target0   math3d.Vec3
	position0 math3d.Vec3
	zoom0     float64
}

// New attaches controls to cam, stepped at fps updates per second, and saves
// the camera's current placement as the reset state.
func New(cam *scene.Camera, fps int) *Controls {
	if fps <= 0 {
		fps = 60
	}
	dt := harmonica.FPS(fps)
	c := &Controls{
		cam:           cam,
		EnableDamping: true,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   5,
		MaxDistance:   300,
		spring:        harmonica.NewSpring(dt, DampingFrequency, dampingRatio),
		gain:          DampingFrequency * dt / 2,
		dolly:         1,
	}
	c.SaveState()
	return c
}

// SaveState records the camera placement Reset returns to.
func (c *Controls) SaveState() {
	c.target0 = c.cam.Target
	c.position0 = c.cam.Position
	c.zoom0 = c.cam.Zoom
}

// Reset puts the camera back where it was at the last SaveState and drops
// any motion still in flight.
func (c *Controls) Reset() {
	c.cam.Target = c.target0
	c.cam.Position = c.position0
	c.cam.Zoom = c.zoom0
	c.cam.UpdateProjection()

	c.theta.stop()
	c.phi.stop()
	c.panX.stop()
	c.panY.stop()
	c.panZ.stop()
	c.dolly = 1
}

func (c *Controls) impulse(a *axis, amount float64) {
	if c.EnableDamping {
		a.Velocity += amount * c.gain
		return
	}
	a.Velocity += amount
}

// Rotate orbits by a pointer drag of (dx, dy) pixels on a surface h pixels
// tall. A drag the full height turns the camera once around.
func (c *Controls) Rotate(dx, dy float64, h int) {
	if h <= 0 {
		return
	}
	c.impulse(&c.theta, -2*math.Pi*dx/float64(h)*c.RotateSpeed)
	c.impulse(&c.phi, -2*math.Pi*dy/float64(h)*c.RotateSpeed)
}

// Pan slides camera and target by a pointer drag of (dx, dy) pixels so the
// point under the cursor follows it at the target distance.
func (c *Controls) Pan(dx, dy float64, h int) {
	if h <= 0 {
		return
	}
	offset := c.cam.Position.Sub(c.cam.Target)
	dist := offset.Len() * math.Tan(c.cam.FOV*math.Pi/360)
	view := c.cam.View()
	right := math3d.V3(view[0], view[1], view[2])
	up := math3d.V3(view[4], view[5], view[6])

	move := right.Scale(-2 * dx * dist / float64(h) * c.PanSpeed).
		Add(up.Scale(2 * dy * dist / float64(h) * c.PanSpeed))
	c.impulse(&c.panX, move.X)
	c.impulse(&c.panY, move.Y)
	c.impulse(&c.panZ, move.Z)
}

// Dolly moves toward the target for positive steps and away for negative.
func (c *Controls) Dolly(steps float64) {
	c.dolly *= math.Pow(0.95, steps*c.ZoomSpeed)
}

// Moving reports whether any motion is still being applied.
func (c *Controls) Moving() bool {
	return c.theta.Velocity != 0 || c.phi.Velocity != 0 ||
		c.panX.Velocity != 0 || c.panY.Velocity != 0 || c.panZ.Velocity != 0 ||
		c.dolly != 1
}

// Update advances the controls one frame and repositions the camera.
func (c *Controls) Update() {
	if !c.Moving() {
		return
	}

	offset := c.cam.Position.Sub(c.cam.Target)
	c.cam.Target = c.cam.Target.Add(math3d.V3(c.panX.Velocity, c.panY.Velocity, c.panZ.Velocity))

	r := offset.Len()
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if r > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, offset.Y/r)))
	}

	theta += c.theta.Velocity
	phi += c.phi.Velocity
	phi = math.Max(phiEpsilon, math.Min(math.Pi-phiEpsilon, phi))

	r = math.Max(c.MinDistance, math.Min(c.MaxDistance, r*c.dolly))
	c.dolly = 1

	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	c.cam.Position = c.cam.Target.Add(math3d.V3(
		r*sinPhi*sinTheta,
		r*cosPhi,
		r*sinPhi*cosTheta,
	))

	if !c.EnableDamping {
		c.theta.stop()
		c.phi.stop()
		c.panX.stop()
		c.panY.stop()
		c.panZ.stop()
		return
	}
	c.theta.decay(&c.spring)
	c.phi.decay(&c.spring)
	c.panX.decay(&c.spring)
	c.panY.decay(&c.spring)
	c.panZ.decay(&c.spring)
}
