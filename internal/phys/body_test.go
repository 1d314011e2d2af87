package phys

import (
	"testing"

	"cogentcore.org/core/math32"
)

func identityQuat() math32.Quat {
	var q math32.Quat
	q.SetIdentity()
	return q
}

func unitBody(t *testing.T) *RigidBody {
	t.Helper()
	m, err := NewMass(1, math32.Vec3(1, 1, 1))
	if err != nil {
		t.Fatalf("NewMass failed: %v", err)
	}
	return NewRigidBody(m, DefaultMaterial(), math32.Vector3{}, identityQuat())
}

func approxVec(a, b math32.Vector3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestRigidBodyNoForceNoMove(t *testing.T) {
	b := unitBody(t)
	b.IntegrateVelocities(1)
	b.IntegratePositions(1)
	if !approxVec(b.Position(), math32.Vector3{}) {
		t.Fatalf("position moved: %v", b.Position())
	}
	if !approxVec(b.Velocity(), math32.Vector3{}) || !approxVec(b.AngularVelocity(), math32.Vector3{}) {
		t.Fatalf("velocity changed: lin=%v ang=%v", b.Velocity(), b.AngularVelocity())
	}
}

func TestRigidBodyConstantForce(t *testing.T) {
	m, err := NewMass(2, math32.Vec3(1, 1, 1))
	if err != nil {
		t.Fatalf("NewMass failed: %v", err)
	}
	b := NewRigidBody(m, DefaultMaterial(), math32.Vector3{}, identityQuat())

	b.ApplyForceAt(math32.Vec3(4, 0, 0), math32.Vector3{}) // a = 2 along X
	b.IntegrateVelocities(1)
	b.IntegratePositions(1)
	if !approxVec(b.Velocity(), math32.Vec3(2, 0, 0)) {
		t.Fatalf("velocity = %v, want (2,0,0)", b.Velocity())
	}
	if !approxVec(b.Position(), math32.Vec3(2, 0, 0)) {
		t.Fatalf("position = %v, want (2,0,0)", b.Position())
	}

	// Accumulators were cleared; no further acceleration.
	b.IntegrateVelocities(1)
	b.IntegratePositions(1)
	if !approxVec(b.Velocity(), math32.Vec3(2, 0, 0)) {
		t.Fatalf("velocity = %v after second step, want (2,0,0)", b.Velocity())
	}
	if !approxVec(b.Position(), math32.Vec3(4, 0, 0)) {
		t.Fatalf("position = %v after second step, want (4,0,0)", b.Position())
	}
}

func TestImpulseAtPointSpinsBody(t *testing.T) {
	b := unitBody(t)
	b.ApplyImpulseAt(math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0))

	// torque = r × j = (1,0,0) × (0,1,0) = (0,0,1)
	w := b.AngularVelocity()
	if w.Z <= 0 {
		t.Fatalf("angular velocity Z = %v, want > 0", w.Z)
	}
	if !approxEq(w.X, 0) || !approxEq(w.Y, 0) {
		t.Fatalf("angular velocity off-axis: %v", w)
	}
	if !approxVec(b.Velocity(), math32.Vec3(0, 1, 0)) {
		t.Fatalf("linear velocity = %v, want (0,1,0)", b.Velocity())
	}
}

func TestForceAtPointSpinsAndTranslates(t *testing.T) {
	b := unitBody(t)
	b.ApplyForceAt(math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0))
	b.IntegrateVelocities(1)
	b.IntegratePositions(1)
	if b.Position().Y <= 0 {
		t.Fatalf("position.Y = %v, want > 0", b.Position().Y)
	}
	if b.AngularVelocity().Z <= 0 {
		t.Fatalf("angular velocity Z = %v, want > 0", b.AngularVelocity().Z)
	}
}

func TestToWorldToLocalIdentity(t *testing.T) {
	b := unitBody(t)
	p := math32.Vec3(1, 2, 3)
	if !approxVec(b.ToLocal(p), p) || !approxVec(b.ToWorld(p), p) {
		t.Fatalf("identity transform changed point: local=%v world=%v", b.ToLocal(p), b.ToWorld(p))
	}
}

func TestToWorldToLocalTranslation(t *testing.T) {
	m, _ := NewMass(1, math32.Vec3(1, 1, 1))
	b := NewRigidBody(m, DefaultMaterial(), math32.Vec3(10, 0, 0), identityQuat())

	world := math32.Vec3(11, 2, -3)
	local := math32.Vec3(1, 2, -3)
	if !approxVec(b.ToLocal(world), local) {
		t.Fatalf("ToLocal = %v, want %v", b.ToLocal(world), local)
	}
	if !approxVec(b.ToWorld(local), world) {
		t.Fatalf("ToWorld = %v, want %v", b.ToWorld(local), world)
	}
}

func TestToWorldToLocalRotation(t *testing.T) {
	var rot math32.Quat
	rot.SetFromAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/2)

	m, _ := NewMass(1, math32.Vec3(1, 1, 1))
	b := NewRigidBody(m, DefaultMaterial(), math32.Vector3{}, rot)

	local := math32.Vec3(1, 0, 0)
	world := math32.Vec3(0, 1, 0)
	if !approxVec(b.ToWorld(local), world) {
		t.Fatalf("ToWorld = %v, want %v", b.ToWorld(local), world)
	}
	if !approxVec(b.ToLocal(world), local) {
		t.Fatalf("ToLocal = %v, want %v", b.ToLocal(world), local)
	}
}

func TestToWorldToLocalRoundTrip(t *testing.T) {
	var rot math32.Quat
	rot.SetFromAxisAngle(math32.Vec3(0, 0, 1), 0.7)

	m, _ := NewMass(1, math32.Vec3(1, 1, 1))
	b := NewRigidBody(m, DefaultMaterial(), math32.Vec3(3, -2, 5), rot)

	world := math32.Vec3(-4, 1.5, 2)
	if !approxVec(b.ToWorld(b.ToLocal(world)), world) {
		t.Fatalf("round trip changed point: %v -> %v", world, b.ToWorld(b.ToLocal(world)))
	}
}

func TestAngularVelocityRotationDirection(t *testing.T) {
	b := unitBody(t)
	b.SetAngularVelocity(math32.Vec3(0, 0, math32.Pi/2)) // +90°/s around Z
	b.IntegratePositions(1)

	xWorld := b.ToWorld(math32.Vec3(1, 0, 0))
	if !approxEq(xWorld.X, 0) || !approxEq(xWorld.Y, 1) {
		t.Fatalf("local X rotated to %v, want (0,1,0)", xWorld)
	}
}
