package heart

import (
	"math"

	"github.com/iburimskiy/heart-visualization/internal/math3d"
)

// ExtrudeOptions controls how the outline is pushed into a solid.
type ExtrudeOptions struct {
	Depth          float64
	BevelEnabled   bool
	BevelThickness float64
	BevelSize      float64
	BevelSegments  int
	Steps          int
	CurveSegments  int
}

// DefaultExtrudeOptions are the settings the heart is built with.
func DefaultExtrudeOptions() ExtrudeOptions {
	return ExtrudeOptions{
		Depth:          2,
		BevelEnabled:   true,
		BevelThickness: 1,
		BevelSize:      1,
		BevelSegments:  2,
		Steps:          2,
		CurveSegments:  DefaultCurveSegments,
	}
}

// Geometry is an indexed triangle solid with one normal per face.
type Geometry struct {
	Positions []math3d.Vec3
	Faces     [][3]int
	Normals   []math3d.Vec3
}

type layer struct {
	z, offset float64
}

func layers(o ExtrudeOptions) []layer {
	steps := max(o.Steps, 1)
	if !o.BevelEnabled || o.BevelSegments < 1 {
		out := make([]layer, 0, steps+1)
		for s := 0; s <= steps; s++ {
			out = append(out, layer{z: o.Depth / float64(steps) * float64(s)})
		}
		return out
	}

	segs := o.BevelSegments
	bevel := func(b int) (z, offset float64) {
		t := float64(b) / float64(segs)
		return o.BevelThickness * math.Cos(t*math.Pi/2), o.BevelSize * math.Sin(t*math.Pi/2)
	}

	out := make([]layer, 0, 2*segs+steps+1)
	for b := 0; b < segs; b++ {
		z, off := bevel(b)
		out = append(out, layer{z: -z, offset: off})
	}
	for s := 0; s <= steps; s++ {
		out = append(out, layer{z: o.Depth / float64(steps) * float64(s), offset: o.BevelSize})
	}
	for b := segs - 1; b >= 0; b-- {
		z, off := bevel(b)
		out = append(out, layer{z: o.Depth + z, offset: off})
	}
	return out
}

// bevelVec returns the outward miter direction at pt for a counter-clockwise
// contour. Its length is the distance needed to offset both adjacent edges by
// one unit, capped at √2.
func bevelVec(prev, pt, next math3d.Vec2) math3d.Vec2 {
	in := pt.Sub(prev)
	out := next.Sub(pt)
	n1 := outwardNormal(in)
	n2 := outwardNormal(out)

	sum := n1.Add(n2)
	l := sum.Len()
	if l < 1e-9 {
		return n1
	}
	dir := sum.Scale(1 / l)

	cos := dir.X*n1.X + dir.Y*n1.Y
	length := math.Sqrt2
	if cos > 1/math.Sqrt2 {
		length = 1 / cos
	}
	return dir.Scale(length)
}

func outwardNormal(d math3d.Vec2) math3d.Vec2 {
	l := d.Len()
	if l == 0 {
		return math3d.Vec2{}
	}
	return math3d.Vec2{X: d.Y / l, Y: -d.X / l}
}

// Extrude turns a closed outline into a solid along +Z.
func Extrude(outline []math3d.Vec2, o ExtrudeOptions) *Geometry {
	contour := make([]math3d.Vec2, len(outline))
	copy(contour, outline)
	if signedArea(contour) < 0 {
		for i, j := 0, len(contour)-1; i < j; i, j = i+1, j-1 {
			contour[i], contour[j] = contour[j], contour[i]
		}
	}

	n := len(contour)
	bevels := make([]math3d.Vec2, n)
	for i := range contour {
		bevels[i] = bevelVec(contour[(i+n-1)%n], contour[i], contour[(i+1)%n])
	}

	ls := layers(o)
	g := &Geometry{Positions: make([]math3d.Vec3, 0, n*len(ls))}
	for _, l := range ls {
		for i, p := range contour {
			q := p.Add(bevels[i].Scale(l.offset))
			g.Positions = append(g.Positions, math3d.V3(q.X, q.Y, l.z))
		}
	}
	vert := func(i, layer int) int { return layer*n + i }

	caps := triangulate(contour)
	last := len(ls) - 1
	for _, t := range caps {
		// front cap faces -Z
		g.Faces = append(g.Faces, [3]int{vert(t[2], 0), vert(t[1], 0), vert(t[0], 0)})
	}
	for _, t := range caps {
		g.Faces = append(g.Faces, [3]int{vert(t[0], last), vert(t[1], last), vert(t[2], last)})
	}

	for l := 0; l < last; l++ {
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, b := vert(i, l), vert(j, l)
			c, d := vert(j, l+1), vert(i, l+1)
			g.Faces = append(g.Faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	g.computeNormals()
	return g
}

func (g *Geometry) computeNormals() {
	g.Normals = make([]math3d.Vec3, len(g.Faces))
	for i, f := range g.Faces {
		a, b, c := g.Positions[f[0]], g.Positions[f[1]], g.Positions[f[2]]
		g.Normals[i] = b.Sub(a).Cross(c.Sub(a)).Normalize()
	}
}

// Bounds returns the axis-aligned bounding box of the geometry.
func (g *Geometry) Bounds() (lo, hi math3d.Vec3) {
	if len(g.Positions) == 0 {
		return
	}
	lo, hi = g.Positions[0], g.Positions[0]
	for _, p := range g.Positions[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// Center moves the geometry so its bounding box centre sits at the origin.
func (g *Geometry) Center() {
	lo, hi := g.Bounds()
	mid := lo.Add(hi).Scale(0.5)
	for i, p := range g.Positions {
		g.Positions[i] = p.Sub(mid)
	}
}

// Build returns the centred heart solid with the default settings.
func Build() *Geometry {
	o := DefaultExtrudeOptions()
	g := Extrude(Outline(o.CurveSegments), o)
	g.Center()
	return g
}
