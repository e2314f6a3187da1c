package scene

import (
	"math"

	"github.com/iburimskiy/heart-visualization/internal/math3d"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
	Zoom   float64

	Position math3d.Vec3
	Target   math3d.Vec3
	Up       math3d.Vec3

	projection math3d.Mat4
}

// NewCamera returns a camera with its projection already computed.
func NewCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Zoom:   1,
		Up:     math3d.Up(),
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix after FOV, Aspect, Zoom
// or the clip planes change.
func (c *Camera) UpdateProjection() {
	fov := c.FOV
	if c.Zoom > 0 && c.Zoom != 1 {
		half := math.Atan(math.Tan(c.FOV*math.Pi/360) / c.Zoom)
		fov = half * 360 / math.Pi
	}
	c.projection = math3d.Perspective(fov, c.Aspect, c.Near, c.Far)
}

// Projection returns the last computed projection matrix.
func (c *Camera) Projection() math3d.Mat4 {
	return c.projection
}

// View returns the world to camera transform.
func (c *Camera) View() math3d.Mat4 {
	return math3d.LookAt(c.Position, c.Target, c.Up)
}

// ViewProjection returns Projection·View.
func (c *Camera) ViewProjection() math3d.Mat4 {
	return c.projection.Mul(c.View())
}
