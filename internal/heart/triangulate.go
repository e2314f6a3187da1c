package heart

import "github.com/iburimskiy/heart-visualization/internal/math3d"

// triangulate ear-clips a simple counter-clockwise polygon and returns
// triangles as indices into pts, wound counter-clockwise.
func triangulate(pts []math3d.Vec2) [][3]int {
	n := len(pts)
	if n < 3 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	tris := make([][3]int, 0, n-2)
	for len(idx) > 3 {
		ear := -1
		for i := range idx {
			if isEar(pts, idx, i) {
				ear = i
				break
			}
		}
		if ear < 0 {
			// numerically degenerate remainder: clip the first vertex anyway
			ear = 0
		}

		prev := idx[(ear+len(idx)-1)%len(idx)]
		next := idx[(ear+1)%len(idx)]
		tris = append(tris, [3]int{prev, idx[ear], next})
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	return append(tris, [3]int{idx[0], idx[1], idx[2]})
}

func isEar(pts []math3d.Vec2, idx []int, i int) bool {
	m := len(idx)
	a := pts[idx[(i+m-1)%m]]
	b := pts[idx[i]]
	c := pts[idx[(i+1)%m]]

	if b.Sub(a).Cross(c.Sub(b)) <= 0 {
		return false // reflex or collinear
	}

	for j, k := range idx {
		if j == i || j == (i+m-1)%m || j == (i+1)%m {
			continue
		}
		p := pts[k]
		if p == a || p == b || p == c {
			continue
		}
		if insideTriangle(a, b, c, p) {
			return false
		}
	}
	return true
}

func insideTriangle(a, b, c, p math3d.Vec2) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}
