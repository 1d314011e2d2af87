package phys

import (
	"cogentcore.org/core/math32"
)

// angularEpsilon: rotations smaller than this per step collapse to identity,
// avoiding a divide by a near-zero angle in the exponential map.
const angularEpsilon = 1.0e-6

// QuatFromAngularVelocity returns the incremental rotation for an angular
// velocity already scaled by dt, via the exponential map: axis = ω̂, angle = |ω·dt|.
func QuatFromAngularVelocity(omegaDt math32.Vector3) math32.Quat {
	var q math32.Quat
	angle := omegaDt.Length()
	if angle < angularEpsilon {
		q.SetIdentity()
		return q
	}
	axis := omegaDt.MulScalar(1 / angle)
	q.SetFromAxisAngle(axis, angle)
	return q
}

// RigidBody is a 6-DOF rigid body integrated with semi-implicit Euler.
// Position is the center of mass in world space; orientation is a unit
// quaternion. Forces and torques accumulate until IntegrateVelocities clears
// them; impulses change velocity immediately.
//
// Integration is split into a velocity phase and a position phase so that a
// sequential-impulse solver can run constraint passes in between. Callers must
// preserve the per-step order: apply forces, IntegrateVelocities, solve
// constraints (impulses), IntegratePositions.
//
// Based on the semi-implicit Euler scheme described in
// https://gafferongames.com/post/physics_in_3d/ and
// https://www.cs.cmu.edu/~baraff/sigcourse/notesd1.pdf
type RigidBody struct {
	mass     Mass
	material Material

	pos  math32.Vector3
	quat math32.Quat

	linearVel  math32.Vector3
	angularVel math32.Vector3

	force  math32.Vector3
	torque math32.Vector3
}

// NewRigidBody creates a body at the given pose with zero velocity and clear
// accumulators. quat need not be normalized; it is normalized on entry.
func NewRigidBody(mass Mass, material Material, pos math32.Vector3, quat math32.Quat) *RigidBody {
	quat.Normalize()
	return &RigidBody{
		mass:     mass,
		material: material,
		pos:      pos,
		quat:     quat,
	}
}

// Mass returns the scalar mass.
func (b *RigidBody) Mass() float32 { return b.mass.Mass() }

// InvMass returns 1/mass.
func (b *RigidBody) InvMass() float32 { return b.mass.InvMass() }

// Inertia returns the body-space principal-axis inertia.
func (b *RigidBody) Inertia() math32.Vector3 { return b.mass.Inertia() }

// InvInertia returns the componentwise inverse of the body-space inertia.
func (b *RigidBody) InvInertia() math32.Vector3 { return b.mass.InvInertia() }

// Material returns the body's material.
func (b *RigidBody) Material() Material { return b.material }

// Restitution returns the material restitution coefficient.
func (b *RigidBody) Restitution() float32 { return b.material.Restitution }

// Friction returns the material dynamic friction coefficient.
func (b *RigidBody) Friction() float32 { return b.material.DynamicFriction }

// Position returns the world-space center of mass.
func (b *RigidBody) Position() math32.Vector3 { return b.pos }

// SetPosition teleports the body without changing velocity. Used for
// positional penetration correction and respawns.
func (b *RigidBody) SetPosition(pos math32.Vector3) { b.pos = pos }

// Rotation returns the orientation as a unit quaternion.
func (b *RigidBody) Rotation() math32.Quat { return b.quat }

// SetRotation replaces the orientation (normalized on entry).
func (b *RigidBody) SetRotation(q math32.Quat) {
	q.Normalize()
	b.quat = q
}

// Velocity returns the linear velocity of the center of mass.
func (b *RigidBody) Velocity() math32.Vector3 { return b.linearVel }

// SetVelocity replaces the linear velocity.
func (b *RigidBody) SetVelocity(v math32.Vector3) { b.linearVel = v }

// AngularVelocity returns the world-space angular velocity.
func (b *RigidBody) AngularVelocity() math32.Vector3 { return b.angularVel }

// SetAngularVelocity replaces the world-space angular velocity.
func (b *RigidBody) SetAngularVelocity(w math32.Vector3) { b.angularVel = w }

// ToWorld transforms a body-local point to world space.
func (b *RigidBody) ToWorld(local math32.Vector3) math32.Vector3 {
	return local.MulQuat(b.quat).Add(b.pos)
}

// ToLocal transforms a world-space point to body space.
func (b *RigidBody) ToLocal(world math32.Vector3) math32.Vector3 {
	inv := b.quat
	inv.SetInverse()
	return world.Sub(b.pos).MulQuat(inv)
}

// VelocityAt returns the velocity of the body at a world-space point,
// including the rotational contribution ω × r.
func (b *RigidBody) VelocityAt(worldPt math32.Vector3) math32.Vector3 {
	r := worldPt.Sub(b.pos)
	return b.linearVel.Add(b.angularVel.Cross(r))
}

// InvInertiaWorldMul applies the world-space inverse inertia tensor
// R·diag(I⁻¹)·Rᵀ to v. It is a pure function of the current orientation, so
// impulses always see the up-to-date tensor rather than a stale cache.
func (b *RigidBody) InvInertiaWorldMul(v math32.Vector3) math32.Vector3 {
	inv := b.quat
	inv.SetInverse()
	local := v.MulQuat(inv)
	local = local.Mul(b.mass.InvInertia())
	return local.MulQuat(b.quat)
}

// ApplyForce accumulates a force through the center of mass. The effect shows
// up at the next IntegrateVelocities.
func (b *RigidBody) ApplyForce(f math32.Vector3) {
	b.force = b.force.Add(f)
}

// ApplyForceAt accumulates a force acting at a world-space point, adding the
// induced torque r × f.
func (b *RigidBody) ApplyForceAt(f, worldPt math32.Vector3) {
	b.force = b.force.Add(f)
	r := worldPt.Sub(b.pos)
	b.torque = b.torque.Add(r.Cross(f))
}

// ApplyImpulseAt changes the velocities immediately: Δv = j/m and
// Δω = I⁻¹_world·(r × j). This is the sole velocity-mutation path used by the
// contact, slider, and vehicle solvers.
func (b *RigidBody) ApplyImpulseAt(j, worldPt math32.Vector3) {
	b.linearVel = b.linearVel.Add(j.MulScalar(b.mass.InvMass()))
	r := worldPt.Sub(b.pos)
	b.angularVel = b.angularVel.Add(b.InvInertiaWorldMul(r.Cross(j)))
}

// IntegrateVelocities applies the accumulated force and torque over dt and
// clears the accumulators. The gyroscopic term ω × Iω is deliberately omitted
// for stability.
func (b *RigidBody) IntegrateVelocities(dt float32) {
	b.linearVel = b.linearVel.Add(b.force.MulScalar(b.mass.InvMass() * dt))
	b.angularVel = b.angularVel.Add(b.InvInertiaWorldMul(b.torque).MulScalar(dt))
	b.force = math32.Vector3{}
	b.torque = math32.Vector3{}
}

// IntegratePositions advances the pose from the current velocities and
// renormalizes the orientation.
func (b *RigidBody) IntegratePositions(dt float32) {
	b.pos = b.pos.Add(b.linearVel.MulScalar(dt))
	dq := QuatFromAngularVelocity(b.angularVel.MulScalar(dt))
	b.quat = dq.Mul(b.quat)
	b.quat.Normalize()
}
