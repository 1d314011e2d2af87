package phys

import "cogentcore.org/core/math32"

// effectiveMassEpsilon: a coupled effective-mass denominator at or below this
// is degenerate; the axis is skipped for the step.
const effectiveMassEpsilon = 1.0e-7

// perpendicularBasis returns two unit vectors that complete axis (assumed
// non-zero) to an orthonormal basis.
func perpendicularBasis(axis math32.Vector3) (math32.Vector3, math32.Vector3) {
	a := axis.Normal()
	helper := math32.Vec3(0, 1, 0)
	if math32.Abs(a.Y) > 0.9 {
		helper = math32.Vec3(1, 0, 0)
	}
	n1 := a.Cross(helper).Normal()
	n2 := a.Cross(n1).Normal()
	return n1, n2
}

// SliderConstraint couples two rigid bodies so that their anchors may move
// relative to each other only along a single axis fixed in body B's frame.
// The two directions perpendicular to the slide axis are velocity-constrained
// to zero.
//
// The constraint holds no body references; the same two bodies must be passed
// to PreStep and Solve each step, in the same order. Accumulated impulses
// persist across steps for warm starting (WarmStart is provided but the
// standard step path runs without it).
type SliderConstraint struct {
	LocalAnchorA math32.Vector3
	LocalAnchorB math32.Vector3
	LocalAxisB   math32.Vector3 // unit slide direction in body B's frame
	Beta         float32        // Baumgarte factor; see PreStep

	accumulatedLambda [2]float32
	effectiveMass     [2]float32
	bias              [2]float32
	positionError     [2]float32

	// Per-step cached data.
	n            [2]math32.Vector3
	rA, rB       math32.Vector3
	WorldAnchorA math32.Vector3
	WorldAnchorB math32.Vector3
	basisN1      math32.Vector3
	basisN2      math32.Vector3
}

// NewSliderConstraint builds a slider with the given body-local anchors and
// slide axis in body B's local frame (normalized on entry).
func NewSliderConstraint(localAnchorA, localAnchorB, localAxisB math32.Vector3, beta float32) *SliderConstraint {
	n1, n2 := perpendicularBasis(localAxisB)
	return &SliderConstraint{
		LocalAnchorA: localAnchorA,
		LocalAnchorB: localAnchorB,
		LocalAxisB:   localAxisB.Normal(),
		Beta:         beta,
		basisN1:      n1,
		basisN2:      n2,
	}
}

// PreStep recomputes the world anchors, the two constrained world-space axes
// from body B's current orientation, and the per-axis coupled effective mass.
// The positional error along each axis is measured here; feeding it into the
// solve as a Baumgarte bias is intentionally left off, keeping this a pure
// velocity constraint. dt is accepted for that (currently unused) bias path.
func (s *SliderConstraint) PreStep(bodyA, bodyB *RigidBody, dt float32) {
	s.WorldAnchorA = bodyA.ToWorld(s.LocalAnchorA)
	s.WorldAnchorB = bodyB.ToWorld(s.LocalAnchorB)

	s.rA = s.WorldAnchorA.Sub(bodyA.Position())
	s.rB = s.WorldAnchorB.Sub(bodyB.Position())

	rotB := bodyB.Rotation()
	s.n[0] = s.basisN1.MulQuat(rotB).Normal()
	s.n[1] = s.basisN2.MulQuat(rotB).Normal()

	invMassA := bodyA.InvMass()
	invMassB := bodyB.InvMass()

	for i := 0; i < 2; i++ {
		rnA := s.rA.Cross(s.n[i])
		rnB := s.rB.Cross(s.n[i])

		k := invMassA + invMassB +
			bodyA.InvInertiaWorldMul(rnA).Dot(rnA) +
			bodyB.InvInertiaWorldMul(rnB).Dot(rnB)

		if k > effectiveMassEpsilon {
			s.effectiveMass[i] = 1 / k
		} else {
			s.effectiveMass[i] = 0
		}

		// Measured but not fed into Solve: enabling the bias would make
		// this a soft positional constraint (bias = beta/dt * error).
		s.positionError[i] = s.n[i].Dot(s.WorldAnchorA.Sub(s.WorldAnchorB))
		s.bias[i] = 0
	}
}

// PositionError returns the anchor separation measured along the two
// constrained axes at the last PreStep.
func (s *SliderConstraint) PositionError() [2]float32 {
	return s.positionError
}

// WarmStart re-applies the previous step's accumulated impulses.
func (s *SliderConstraint) WarmStart(bodyA, bodyB *RigidBody) {
	for i := 0; i < 2; i++ {
		impulse := s.n[i].MulScalar(s.accumulatedLambda[i])
		bodyA.ApplyImpulseAt(impulse, s.WorldAnchorA)
		bodyB.ApplyImpulseAt(impulse.Negate(), s.WorldAnchorB)
	}
}

// Solve applies equal-and-opposite impulses driving the relative anchor
// velocity along both constrained axes to zero. Call repeatedly per step for
// Gauss-Seidel convergence.
func (s *SliderConstraint) Solve(bodyA, bodyB *RigidBody) {
	for i := 0; i < 2; i++ {
		vA := bodyA.VelocityAt(s.WorldAnchorA)
		vB := bodyB.VelocityAt(s.WorldAnchorB)

		cDot := s.n[i].Dot(vA.Sub(vB))
		lambda := -(cDot + s.bias[i]) * s.effectiveMass[i]

		s.accumulatedLambda[i] += lambda
		impulse := s.n[i].MulScalar(lambda)

		bodyA.ApplyImpulseAt(impulse, s.WorldAnchorA)
		bodyB.ApplyImpulseAt(impulse.Negate(), s.WorldAnchorB)
	}
}

// Reset clears the accumulated impulses, e.g. after teleporting a body.
func (s *SliderConstraint) Reset() {
	s.accumulatedLambda = [2]float32{}
}
