package phys

// Material holds the surface and bulk properties of a rigid body.
// Restitution is in [0,1]; friction coefficients are >= 0. Immutable once
// attached to a body.
type Material struct {
	Density         float32
	Restitution     float32
	StaticFriction  float32
	DynamicFriction float32
}

// DefaultMaterial returns a medium-bouncy, medium-grip material with unit density.
func DefaultMaterial() Material {
	return Material{
		Density:         1.0,
		Restitution:     0.5,
		StaticFriction:  0.6,
		DynamicFriction: 0.4,
	}
}
