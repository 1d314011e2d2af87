package phys

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// ErrInvalidData is returned by the Mass constructors when a density, radius,
// dimension, or resulting mass/inertia component is not strictly positive.
var ErrInvalidData = errors.New("invalid data")

// Mass holds the mass and principal-axis inertia of a rigid body, together with
// their cached inverses. All components are strictly positive; the zero value is
// not usable. Construct via NewMass, MassFromSphere, or MassFromBox.
type Mass struct {
	mass       float32
	inertia    math32.Vector3
	invMass    float32
	invInertia math32.Vector3
}

// NewMass builds mass properties from an explicit mass and principal-axis inertia.
func NewMass(mass float32, inertia math32.Vector3) (Mass, error) {
	if mass <= 0 || inertia.X <= 0 || inertia.Y <= 0 || inertia.Z <= 0 {
		return Mass{}, fmt.Errorf("%w: mass=%v inertia=%v", ErrInvalidData, mass, inertia)
	}
	return buildMass(mass, inertia), nil
}

// MassFromSphere computes mass properties of a solid sphere:
// volume 4/3·π·r³, inertia 2/5·m·r² on all axes.
func MassFromSphere(density, radius float32) (Mass, error) {
	if density <= 0 || radius <= 0 {
		return Mass{}, fmt.Errorf("%w: density=%v radius=%v", ErrInvalidData, density, radius)
	}
	volume := (4.0 / 3.0) * math32.Pi * radius * radius * radius
	mass := density * volume
	inertia := mass * radius * radius * 0.4
	return buildMass(mass, math32.Vec3(inertia, inertia, inertia)), nil
}

// MassFromBox computes mass properties of a solid box with full side lengths dims:
// inertia per axis m/12·(sum of squares of the other two sides).
func MassFromBox(density float32, dims math32.Vector3) (Mass, error) {
	if density <= 0 || dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return Mass{}, fmt.Errorf("%w: density=%v dims=%v", ErrInvalidData, density, dims)
	}
	volume := dims.X * dims.Y * dims.Z
	mass := density * volume
	inertia := math32.Vec3(
		dims.Y*dims.Y+dims.Z*dims.Z,
		dims.Z*dims.Z+dims.X*dims.X,
		dims.X*dims.X+dims.Y*dims.Y,
	).MulScalar(mass / 12)
	return buildMass(mass, inertia), nil
}

func buildMass(mass float32, inertia math32.Vector3) Mass {
	return Mass{
		mass:       mass,
		inertia:    inertia,
		invMass:    1 / mass,
		invInertia: math32.Vec3(1/inertia.X, 1/inertia.Y, 1/inertia.Z),
	}
}

// Mass returns the scalar mass.
func (m Mass) Mass() float32 { return m.mass }

// Inertia returns the principal-axis inertia in body space.
func (m Mass) Inertia() math32.Vector3 { return m.inertia }

// InvMass returns 1/mass.
func (m Mass) InvMass() float32 { return m.invMass }

// InvInertia returns the componentwise reciprocal of the body-space inertia.
func (m Mass) InvInertia() math32.Vector3 { return m.invInertia }
