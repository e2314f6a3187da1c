// Package heart builds the extruded heart solid shown at the centre of the scene.
package heart

import "github.com/iburimskiy/heart-visualization/internal/math3d"

// DefaultCurveSegments is the number of divisions each Bézier segment is
// sampled with.
const DefaultCurveSegments = 12

// samePointEpsilon is the distance under which two outline points are merged.
const samePointEpsilon = 1e-9

type cubic struct {
	c1, c2, end math3d.Vec2
}

// The outline starts at (5, 5) and is anchored at the local origin.
var (
	outlineStart  = math3d.V2(5, 5)
	outlineCurves = []cubic{
		{math3d.V2(5, 5), math3d.V2(4, 0), math3d.V2(0, 0)},
		{math3d.V2(-6, 0), math3d.V2(-6, 7), math3d.V2(-6, 7)},
		{math3d.V2(-6, 11), math3d.V2(-3, 15.4), math3d.V2(5, 19)},
		{math3d.V2(12, 15.4), math3d.V2(16, 11), math3d.V2(16, 7)},
		{math3d.V2(16, 7), math3d.V2(16, 0), math3d.V2(10, 0)},
		{math3d.V2(7, 0), math3d.V2(5, 5), math3d.V2(5, 5)},
	}
)

func bezier(p0, p1, p2, p3 math3d.Vec2, t float64) math3d.Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return math3d.Vec2{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// Outline samples the heart's closed outline. The closing point is not
// repeated and consecutive duplicates are dropped.
func Outline(curveSegments int) []math3d.Vec2 {
	if curveSegments < 1 {
		curveSegments = DefaultCurveSegments
	}

	pts := []math3d.Vec2{outlineStart}
	cur := outlineStart
	for _, c := range outlineCurves {
		for i := 1; i <= curveSegments; i++ {
			p := bezier(cur, c.c1, c.c2, c.end, float64(i)/float64(curveSegments))
			if p.Sub(pts[len(pts)-1]).Len() < samePointEpsilon {
				continue
			}
			pts = append(pts, p)
		}
		cur = c.end
	}

	if len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Len() < samePointEpsilon {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// signedArea is positive for counter-clockwise polygons.
func signedArea(pts []math3d.Vec2) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].Cross(pts[j])
	}
	return a / 2
}
