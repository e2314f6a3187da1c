package scene

import (
	"cmp"
	"slices"

	"github.com/iburimskiy/heart-visualization/internal/math3d"
)

// Triangle is a shaded heart face in screen pixels.
type Triangle struct {
	X, Y  [3]float32
	Color Color
	Depth float64
}

// Sprite is a particle in screen pixels.
type Sprite struct {
	X, Y  float32
	Size  float32
	Color Color
	Alpha float64
}

// MinSpriteSize keeps distant particles visible.
const MinSpriteSize = 1

// Triangles appends the visible heart faces to buf, farthest first, so they
// can be painted in order.
func (s *Scene) Triangles(vp *Viewport, buf []Triangle) []Triangle {
	buf = buf[:0]
	g := s.Heart.Geometry
	if g == nil {
		return buf
	}

	model := s.Heart.Matrix()
	viewProj := s.Camera.ViewProjection()
	eye := s.Camera.Position

	world := make([]math3d.Vec3, len(g.Positions))
	for i, p := range g.Positions {
		world[i] = model.MulPoint(p)
	}

faces:
	for i, f := range g.Faces {
		a, b, c := world[f[0]], world[f[1]], world[f[2]]
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		n := model.MulDir(g.Normals[i]).Normalize()
		if n.Dot(eye.Sub(centroid)) <= 0 {
			continue
		}

		var (
			t     Triangle
			depth float64
		)
		for k, p := range [3]math3d.Vec3{a, b, c} {
			ndc, w := viewProj.Project(p)
			if w <= s.Camera.Near {
				continue faces
			}
			x, y := vp.ToScreen(ndc)
			t.X[k], t.Y[k] = float32(x), float32(y)
			depth += w
		}
		t.Depth = depth / 3
		t.Color = s.Fog.Apply(s.ShadeFace(centroid, n), t.Depth)
		buf = append(buf, t)
	}

	slices.SortFunc(buf, func(p, q Triangle) int {
		return cmp.Compare(q.Depth, p.Depth)
	})
	return buf
}

// Sprites appends the particles in front of the camera to buf. Draw order
// does not matter for additive blending.
func (s *Scene) Sprites(vp *Viewport, buf []Sprite) []Sprite {
	buf = buf[:0]
	pts := s.Particles
	model := pts.Matrix()
	viewProj := s.Camera.ViewProjection()
	m := pts.Material

	for i := 0; i < pts.Field.Len(); i++ {
		ndc, w := viewProj.Project(model.MulPoint(pts.Field.At(i)))
		if w <= s.Camera.Near || w >= s.Camera.Far {
			continue
		}
		x, y := vp.ToScreen(ndc)
		size := max(vp.PointSize(m.Size, w), MinSpriteSize)
		if x+size < 0 || y+size < 0 || x-size > float64(vp.Width) || y-size > float64(vp.Height) {
			continue
		}
		buf = append(buf, Sprite{
			X:     float32(x),
			Y:     float32(y),
			Size:  float32(size),
			Color: s.Fog.Apply(m.Color, w),
			Alpha: m.Opacity,
		})
	}
	return buf
}
