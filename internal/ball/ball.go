// Package ball is a free rigid sphere living on the same ground as the car:
// gravity, a little air drag, and a bounce-and-roll ground contact.
package ball

import (
	"fmt"

	"cogentcore.org/core/math32"

	"physics-engine/internal/phys"
)

const (
	linearDrag  = 0.1
	angularDrag = 0.05
)

// Ball wraps a sphere rigid body with its radius and gravity.
type Ball struct {
	body    *phys.RigidBody
	radius  float32
	gravity float32
}

// New builds a ball of the given density and radius at pos.
func New(density, radius, gravity float32, pos math32.Vector3) (*Ball, error) {
	mass, err := phys.MassFromSphere(density, radius)
	if err != nil {
		return nil, fmt.Errorf("ball: %w", err)
	}
	var quat math32.Quat
	quat.SetIdentity()
	mat := phys.DefaultMaterial()
	mat.Restitution = 0.6
	return &Ball{
		body:    phys.NewRigidBody(mass, mat, pos, quat),
		radius:  radius,
		gravity: gravity,
	}, nil
}

// Body returns the underlying rigid body.
func (b *Ball) Body() *phys.RigidBody { return b.body }

// Radius returns the sphere radius.
func (b *Ball) Radius() float32 { return b.radius }

// Position returns the sphere center in world space.
func (b *Ball) Position() math32.Vector3 { return b.body.Position() }

// Update advances the ball one step: gravity and velocity-proportional drag,
// integration, then the ground contact.
func (b *Ball) Update(dt float32, ground phys.Ground) {
	b.body.ApplyForce(math32.Vec3(0, -b.gravity*b.body.Mass(), 0))
	b.body.ApplyForce(b.body.Velocity().MulScalar(-linearDrag))

	b.body.IntegrateVelocities(dt)
	b.body.SetAngularVelocity(b.body.AngularVelocity().MulScalar(1 - angularDrag*dt))
	b.body.IntegratePositions(dt)

	phys.ResolveGroundContact(b.body, b.radius, ground)
}

// Reset teleports the ball to pos at rest.
func (b *Ball) Reset(pos math32.Vector3) {
	var quat math32.Quat
	quat.SetIdentity()
	b.body.SetPosition(pos)
	b.body.SetRotation(quat)
	b.body.SetVelocity(math32.Vector3{})
	b.body.SetAngularVelocity(math32.Vector3{})
}
