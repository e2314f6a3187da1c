package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/heart-visualization/internal/math3d"
	"github.com/iburimskiy/heart-visualization/internal/scene"
)

func newTestCamera() *scene.Camera {
	cam := scene.NewCamera(75, 4.0/3, 0.1, 1000)
	cam.Position = math3d.V3(0, 0, 30)
	return cam
}

func settle(c *Controls, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if !c.Moving() {
			return i
		}
		c.Update()
	}
	return maxFrames
}

func TestResetRestoresInitialPlacement(t *testing.T) {
	cam := newTestCamera()
	c := New(cam, 60)

	c.Rotate(120, -40, 600)
	c.Pan(30, 15, 600)
	c.Dolly(3)
	for i := 0; i < 20; i++ {
		c.Update()
	}
	cam.Zoom = 1.5
	require.NotEqual(t, math3d.V3(0, 0, 30), cam.Position)

	c.Reset()
	assert.Equal(t, math3d.V3(0, 0, 30), cam.Position)
	assert.Equal(t, math3d.V3(0, 0, 0), cam.Target)
	assert.Equal(t, 1.0, cam.Zoom)
	assert.False(t, c.Moving())

	// the next frames leave the restored camera untouched
	c.Update()
	assert.Equal(t, math3d.V3(0, 0, 30), cam.Position)
}

func TestRotateKeepsDistanceAndSettles(t *testing.T) {
	cam := newTestCamera()
	c := New(cam, 60)

	// a quarter of the surface height is a quarter turn
	c.Rotate(-150, 0, 600)
	frames := settle(c, 2000)
	require.Less(t, frames, 2000, "damping never settled")

	assert.InDelta(t, 30, cam.Position.Sub(cam.Target).Len(), 1e-9)
	theta := math.Atan2(cam.Position.X, cam.Position.Z)
	assert.InDelta(t, math.Pi/2, theta, 0.1*math.Pi/2)
}

func TestRotateWithoutDampingIsImmediate(t *testing.T) {
	cam := newTestCamera()
	c := New(cam, 60)
	c.EnableDamping = false

	c.Rotate(-150, 0, 600)
	c.Update()
	assert.False(t, c.Moving())
	assert.InDelta(t, 30, cam.Position.X, 1e-9)
	assert.InDelta(t, 0, cam.Position.Z, 1e-9)
}

func TestPolarAngleIsClamped(t *testing.T) {
	cam := newTestCamera()
	c := New(cam, 60)
	c.EnableDamping = false

	c.Rotate(0, 10000, 600)
	c.Update()
	assert.Greater(t, cam.Position.Y, 29.99)
	assert.False(t, math.IsNaN(cam.Position.X))
}

func TestDollyIsClamped(t *testing.T) {
	cam := newTestCamera()
	c := New(cam, 60)

	c.Dolly(10)
	c.Update()
	assert.InDelta(t, 30*math.Pow(0.95, 10), cam.Position.Z, 1e-9)

	c.Dolly(1000)
	c.Update()
	assert.InDelta(t, c.MinDistance, cam.Position.Z, 1e-9)

	c.Dolly(-1000)
	c.Update()
	assert.InDelta(t, c.MaxDistance, cam.Position.Z, 1e-9)
}

func TestPanMovesTargetWithCamera(t *testing.T) {
	cam := newTestCamera()
	c := New(cam, 60)
	c.EnableDamping = false

	c.Pan(100, 0, 600)
	c.Update()
	assert.Less(t, cam.Target.X, 0.0)
	assert.InDelta(t, cam.Target.X, cam.Position.X, 1e-9)
	assert.InDelta(t, 30, cam.Position.Z, 1e-9)
}
