// Package particles generates the static point cloud drifting around the heart.
package particles

import (
	"math/rand"

	"github.com/iburimskiy/heart-visualization/internal/math3d"
)

const (
	// Count is the number of points in the field.
	Count = 500
	// Extent is the edge length of the cube the points are spread over.
	Extent = 100
)

// Field is an immutable set of points centred on the origin.
type Field struct {
	points []math3d.Vec3
}

// Generate draws n points with every coordinate uniform in [-extent/2, extent/2].
func Generate(r *rand.Rand, n int, extent float64) Field {
	pts := make([]math3d.Vec3, n)
	for i := range pts {
		pts[i] = math3d.Vec3{
			X: (r.Float64() - 0.5) * extent,
			Y: (r.Float64() - 0.5) * extent,
			Z: (r.Float64() - 0.5) * extent,
		}
	}
	return Field{points: pts}
}

// New returns the default field. It is not reproducible between runs.
func New() Field {
	return Generate(rand.New(rand.NewSource(rand.Int63())), Count, Extent)
}

// Len returns the number of points.
func (f Field) Len() int { return len(f.points) }

// At returns point i.
func (f Field) At(i int) math3d.Vec3 { return f.points[i] }

