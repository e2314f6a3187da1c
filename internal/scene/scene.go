// Package scene assembles the camera, lights, heart and particle field into a
// single renderable scene and provides the shading model used to draw it.
package scene

import (
	"math"

	"github.com/iburimskiy/heart-visualization/internal/config"
	"github.com/iburimskiy/heart-visualization/internal/heart"
	"github.com/iburimskiy/heart-visualization/internal/math3d"
	"github.com/iburimskiy/heart-visualization/internal/particles"
)

// Object3D is the transform shared by everything placed in the scene.
type Object3D struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles, XYZ order
	Scale    math3d.Vec3
}

func newObject3D() Object3D {
	return Object3D{Scale: math3d.One()}
}

// Matrix returns the local to world transform.
func (o Object3D) Matrix() math3d.Mat4 {
	return math3d.Compose(o.Position, o.Rotation, o.Scale)
}

// PhongMaterial is a shiny solid colour.
type PhongMaterial struct {
	Color     Color
	Specular  Color
	Shininess float64
}

// PointsMaterial describes how particles are drawn.
type PointsMaterial struct {
	Size     float64
	Color    Color
	Opacity  float64
	Additive bool
}

// AmbientLight lights every face equally and casts no shadows.
type AmbientLight struct {
	Color     Color
	Intensity float64
}

// PointLight shines from a position in world space.
type PointLight struct {
	Color     Color
	Intensity float64
	Position  math3d.Vec3
}

// Fog is exponential squared fog.
type Fog struct {
	Color   Color
	Density float64
}

// Factor returns how much of the fog colour replaces a surface at depth.
func (f Fog) Factor(depth float64) float64 {
	d := f.Density * depth
	return clamp01(1 - math.Exp(-d*d))
}

// Apply blends c with the fog colour for a surface at depth.
func (f Fog) Apply(c Color, depth float64) Color {
	return c.Lerp(f.Color, f.Factor(depth))
}

// Mesh is a solid object in the scene.
type Mesh struct {
	Object3D
	Geometry *heart.Geometry
	Material PhongMaterial
}

// Points is a point cloud in the scene.
type Points struct {
	Object3D
	Field    particles.Field
	Material PointsMaterial
}

// Scene is the complete render graph. Its members are fixed after Compose.
type Scene struct {
	Background Color
	Fog        Fog
	Ambient    AmbientLight
	Light      PointLight
	Heart      *Mesh
	Particles  *Points
	Camera     *Camera
}

// Fixed look of the scene.
var (
	BackgroundColor = Hex(0x2b0a17)
	FogColor        = Hex(0xffdde1)
	HeartColor      = Hex(0xff0040)
	HeartSpecular   = Hex(0x222222)
	LightColor      = Hex(0xff6b81)
	AmbientColor    = Hex(0xffffff)
)

const (
	FogDensity       = 0.002
	AmbientIntensity = 0.6
	LightIntensity   = 1
	HeartShininess   = 100
	ParticleSize     = 0.2
	ParticleOpacity  = 0.8
)

// Compose builds the scene once from the heart solid and the particle field.
func Compose(geom *heart.Geometry, field particles.Field, aspect float64) *Scene {
	cam := NewCamera(config.CameraFOV, aspect, config.CameraNear, config.CameraFar)
	cam.Position = math3d.V3(0, 0, config.CameraZ)

	h := &Mesh{
		Object3D: newObject3D(),
		Geometry: geom,
		Material: PhongMaterial{Color: HeartColor, Specular: HeartSpecular, Shininess: HeartShininess},
	}
	// fixed orientation; the frame loop only ever changes Y
	h.Rotation.X = math.Pi
	h.Rotation.Z = math.Pi

	p := &Points{
		Object3D: newObject3D(),
		Field:    field,
		Material: PointsMaterial{
			Size:     ParticleSize,
			Color:    HeartColor,
			Opacity:  ParticleOpacity,
			Additive: true,
		},
	}

	return &Scene{
		Background: BackgroundColor,
		Fog:        Fog{Color: FogColor, Density: FogDensity},
		Ambient:    AmbientLight{Color: AmbientColor, Intensity: AmbientIntensity},
		Light:      PointLight{Color: LightColor, Intensity: LightIntensity, Position: math3d.V3(10, 10, 20)},
		Heart:      h,
		Particles:  p,
		Camera:     cam,
	}
}

// ShadeFace returns the Blinn-Phong colour of a heart face with world
// centroid pos and unit world normal n, before fog.
func (s *Scene) ShadeFace(pos, n math3d.Vec3) Color {
	m := s.Heart.Material

	light := s.Ambient.Color.Scale(s.Ambient.Intensity)

	l := s.Light.Position.Sub(pos).Normalize()
	v := s.Camera.Position.Sub(pos).Normalize()
	diff := math.Max(n.Dot(l), 0)
	lc := s.Light.Color.Scale(s.Light.Intensity)
	light = light.Add(lc.Scale(diff))

	out := m.Color.Mul(light)
	if diff > 0 {
		h := l.Add(v).Normalize()
		spec := math.Pow(math.Max(n.Dot(h), 0), m.Shininess)
		out = out.Add(m.Specular.Mul(lc).Scale(spec))
	}
	return out.Clamp()
}
