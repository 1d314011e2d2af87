package phys

import "cogentcore.org/core/math32"

// tangentEpsilon: tangential slip below this speed is treated as zero rather
// than normalized into a friction direction.
const tangentEpsilon = 1.0e-6

// ResolveGroundContact resolves the contact of a spherical body of the given
// radius against the ground, in one pass:
//
//  1. positional correction lifting the body out of penetration,
//  2. a restitution impulse along the normal if the contact point moves into
//     the surface,
//  3. a tangential friction impulse clamped to ±friction·|jn| on the current
//     slip direction (single-direction clamp, not a full cone).
//
// The normal impulse must be applied before the friction clamp bound is known.
// Returns true if the body was in contact this step.
func ResolveGroundContact(body *RigidBody, radius float32, ground Ground) bool {
	pos := body.Position()
	height := ground.HeightAt(pos.X, pos.Z)
	penetration := height - (pos.Y - radius)
	if penetration <= 0 {
		return false
	}

	// Positional correction only; no velocity is implied by this step.
	pos.Y += penetration
	body.SetPosition(pos)

	normal := ground.NormalAt(pos.X, pos.Z)
	contact := body.Position().Sub(normal.MulScalar(radius))
	vContact := body.VelocityAt(contact)
	vn := vContact.Dot(normal)

	// Only resolve if moving into the ground.
	if vn >= 0 {
		return true
	}

	restitution := body.Restitution()
	friction := body.Friction()

	jn := -(1 + restitution) * vn * body.Mass()
	body.ApplyImpulseAt(normal.MulScalar(jn), contact)

	vTangent := vContact.Sub(normal.MulScalar(vContact.Dot(normal)))
	tangentSpeed := vTangent.Length()
	if tangentSpeed > tangentEpsilon {
		tangent := vTangent.MulScalar(1 / tangentSpeed)

		// Effective mass at the contact: linear plus angular contribution.
		invEffectiveMass := body.InvMass() + body.InvInertia().X*radius*radius
		jtRequired := -tangentSpeed / invEffectiveMass
		jtMax := friction * math32.Abs(jn)
		jt := math32.Clamp(jtRequired, -jtMax, jtMax)

		body.ApplyImpulseAt(tangent.MulScalar(jt), contact)
	}
	return true
}
