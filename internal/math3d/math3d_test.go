package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-9, "z")
}

func TestComposeAppliesScaleRotationTranslation(t *testing.T) {
	m := Compose(V3(1, 2, 3), V3(0, math.Pi/2, 0), V3(2, 2, 2))
	// (1,0,0) scaled to (2,0,0), rotated about Y to (0,0,-2), then translated
	assertVecNear(t, V3(1, 2, 1), m.MulPoint(V3(1, 0, 0)))
}

func TestEulerHalfTurnsXZ(t *testing.T) {
	m := Euler(V3(math.Pi, 0, math.Pi))
	// half turns about X and Z compose to a half turn about Y
	assertVecNear(t, V3(-1, 0, 0), m.MulDir(V3(1, 0, 0)))
	assertVecNear(t, V3(0, 1, 0), m.MulDir(V3(0, 1, 0)))
	assertVecNear(t, V3(0, 0, -1), m.MulDir(V3(0, 0, 1)))
}

func TestLookAtPlacesTargetOnNegativeZ(t *testing.T) {
	view := LookAt(V3(0, 0, 30), V3(0, 0, 0), Up())
	assertVecNear(t, V3(0, 0, -30), view.MulPoint(V3(0, 0, 0)))
}

func TestPerspectiveMapsNearAndFar(t *testing.T) {
	p := Perspective(75, 2, 0.1, 1000)
	near, _ := p.Project(V3(0, 0, -0.1))
	far, _ := p.Project(V3(0, 0, -1000))
	assert.InDelta(t, -1, near.Z, 1e-9)
	assert.InDelta(t, 1, far.Z, 1e-6)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.5, WrapAngle(0.5+4*math.Pi), 1e-9)
	assert.InDelta(t, 2*math.Pi-0.25, WrapAngle(-0.25), 1e-9)
}
