package scene

import "github.com/iburimskiy/heart-visualization/internal/math3d"

// Viewport tracks the size of the render surface and keeps the camera's
// aspect ratio in step with it.
type Viewport struct {
	Camera *Camera
	Width  int
	Height int
}

// NewViewport sizes the camera for a w×h surface.
func NewViewport(cam *Camera, w, h int) *Viewport {
	v := &Viewport{Camera: cam}
	v.Resize(w, h)
	return v
}

// Resize applies a new surface size. It may be called with the same size any
// number of times. A zero height (minimised window) leaves the camera alone.
func (v *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.Camera.Aspect = float64(w) / float64(h)
	v.Camera.UpdateProjection()
	v.Width, v.Height = w, h
}

// ToScreen maps normalised device coordinates to pixels, y down.
func (v *Viewport) ToScreen(ndc math3d.Vec3) (x, y float64) {
	x = (ndc.X + 1) / 2 * float64(v.Width)
	y = (1 - ndc.Y) / 2 * float64(v.Height)
	return x, y
}

// PointSize returns the on-screen diameter, in pixels, of a point of world
// size s seen at view distance depth.
func (v *Viewport) PointSize(s, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return s * float64(v.Height) / 2 / depth
}
