package phys

import "cogentcore.org/core/math32"

// Ground answers height and surface-normal queries at world-plane coordinates.
// Implementations must be pure functions of (x, z); the solvers re-query every
// pass rather than caching results.
type Ground interface {
	HeightAt(x, z float32) float32
	NormalAt(x, z float32) math32.Vector3
}

// Plane is a flat horizontal ground at a fixed height. The zero value is the
// y=0 plane.
type Plane struct {
	Height float32
}

// HeightAt returns the plane height, independent of position.
func (p Plane) HeightAt(x, z float32) float32 { return p.Height }

// NormalAt returns straight up.
func (p Plane) NormalAt(x, z float32) math32.Vector3 { return math32.Vec3(0, 1, 0) }
