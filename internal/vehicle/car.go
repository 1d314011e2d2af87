package vehicle

import (
	"fmt"

	"cogentcore.org/core/math32"

	"physics-engine/internal/phys"
)

const (
	// solverPasses is the number of Gauss-Seidel sweeps over the wheels per
	// frame. Wheel order affects convergence speed, not the fixed point.
	solverPasses = 8

	suspensionBeta = 0.5
	suspensionSlop = 0.01

	effectiveMassEpsilon = 1.0e-7
)

// Controls is the driver input for one frame. Throttle and Brake are in
// [0,1] (Throttle may go negative for reverse), Steering in [-1,1] where
// positive steers right.
type Controls struct {
	Throttle float32
	Brake    float32
	Steering float32
}

// Car couples a box chassis rigid body with four wheels. Suspension and tire
// friction are resolved together by a small sequential-impulse loop over the
// wheel contacts; the wheels themselves are not rigid bodies, only spin-state
// records coupled to the chassis through the longitudinal tire impulse.
//
// The car holds a non-owning association to its ground, set at construction.
type Car struct {
	chassis *phys.RigidBody
	wheels  [NumWheels]Wheel
	ground  phys.Ground
	tuning  Tuning

	steerAngle float32
	controls   Controls
}

// NewCar builds a car from the tuning at the given position on the ground.
// Fails if the tuning produces non-positive mass properties.
func NewCar(t Tuning, ground phys.Ground, pos math32.Vector3) (*Car, error) {
	dims := math32.Vec3(t.ChassisWidth, t.ChassisHeight, t.ChassisLength)
	density := t.ChassisMass / (dims.X * dims.Y * dims.Z)
	mass, err := phys.MassFromBox(density, dims)
	if err != nil {
		return nil, fmt.Errorf("car chassis: %w", err)
	}

	var quat math32.Quat
	quat.SetIdentity()
	chassis := phys.NewRigidBody(mass, phys.DefaultMaterial(), pos, quat)

	c := &Car{
		chassis: chassis,
		ground:  ground,
		tuning:  t,
	}
	for i := range c.wheels {
		p := WheelPos(i)
		drive := float32(0)
		if !p.IsFront() {
			// Rear-wheel drive: the engine torque splits across the two
			// non-steered wheels.
			drive = t.EngineTorque / 2
		}
		c.wheels[i] = Wheel{
			LocalOffset: math32.Vec3(p.SignLR()*t.WheelTrack/2, 0, p.SignFB()*t.WheelBase/2),
			Radius:      t.WheelRadius,
			Width:       t.WheelWidth,
			RestLength:  t.SuspensionRest,
			SpringK:     t.SpringK,
			DamperC:     t.DamperC,
			Grip:        t.Grip,
			Inertia:     t.WheelInertia,
			DriveTorque: drive,
			BrakeTorque: t.BrakeTorque,
		}
	}
	return c, nil
}

// Chassis returns the chassis rigid body.
func (c *Car) Chassis() *phys.RigidBody { return c.chassis }

// Wheels returns the wheel records, indexed by WheelPos.
func (c *Car) Wheels() *[NumWheels]Wheel { return &c.wheels }

// Tuning returns the tuning the car was built with.
func (c *Car) Tuning() Tuning { return c.tuning }

// Position returns the chassis center of mass in world space.
func (c *Car) Position() math32.Vector3 { return c.chassis.Position() }

// Rotation returns the chassis orientation.
func (c *Car) Rotation() math32.Quat { return c.chassis.Rotation() }

// SteerAngle returns the current front-wheel steering angle in radians.
func (c *Car) SteerAngle() float32 { return c.steerAngle }

// Speed returns the magnitude of the chassis linear velocity.
func (c *Car) Speed() float32 { return c.chassis.Velocity().Length() }

// SetControls stores the driver input consumed by the next Update.
func (c *Car) SetControls(ctrl Controls) { c.controls = ctrl }

// Reset teleports the car to pos at rest, facing +Z.
func (c *Car) Reset(pos math32.Vector3) {
	var quat math32.Quat
	quat.SetIdentity()
	c.chassis.SetPosition(pos)
	c.chassis.SetRotation(quat)
	c.chassis.SetVelocity(math32.Vector3{})
	c.chassis.SetAngularVelocity(math32.Vector3{})
	c.steerAngle = 0
	for i := range c.wheels {
		w := &c.wheels[i]
		w.AngularVel = 0
		w.Compression = 0
		w.Grounded = false
	}
}

// Update advances the vehicle by dt seconds in the fixed per-frame order:
// steering and drivetrain, external forces (gravity, suspension
// spring-damper), velocity integration, solver passes over the wheel
// contacts, position integration, then the visual wheel state.
func (c *Car) Update(dt float32) {
	if dt <= 0 {
		return
	}

	c.updateSteering(dt)
	c.updateDrivetrain(dt)

	c.chassis.ApplyForce(math32.Vec3(0, -c.tuning.Gravity*c.chassis.Mass(), 0))
	c.applySuspension(dt)

	c.chassis.IntegrateVelocities(dt)

	for i := range c.wheels {
		w := &c.wheels[i]
		w.accumNormal = 0
		w.accumLat = 0
		w.accumLong = 0
	}
	for pass := 0; pass < solverPasses; pass++ {
		for i := range c.wheels {
			c.solveWheel(WheelPos(i), dt)
		}
	}

	c.chassis.IntegratePositions(dt)

	for i := range c.wheels {
		w := &c.wheels[i]
		w.SpinAngle += w.AngularVel * dt
		if w.SpinAngle > 2*math32.Pi {
			w.SpinAngle -= 2 * math32.Pi
		} else if w.SpinAngle < -2*math32.Pi {
			w.SpinAngle += 2 * math32.Pi
		}
	}
}

func (c *Car) updateSteering(dt float32) {
	target := math32.Clamp(c.controls.Steering, -1, 1) * c.tuning.MaxSteerAngle
	diff := target - c.steerAngle
	maxStep := c.tuning.SteerSpeed * dt
	c.steerAngle += math32.Clamp(diff, -maxStep, maxStep)
}

// updateDrivetrain applies engine torque to the driven wheels, brake torque
// opposing the current spin, and rolling-resistance drag on every wheel.
func (c *Car) updateDrivetrain(dt float32) {
	throttle := math32.Clamp(c.controls.Throttle, -1, 1)
	brake := math32.Clamp(c.controls.Brake, 0, 1)

	for i := range c.wheels {
		w := &c.wheels[i]

		if w.DriveTorque > 0 && throttle != 0 {
			w.AngularVel += throttle * w.DriveTorque / w.Inertia * dt
		}

		if brake > 0 && w.AngularVel != 0 {
			drop := brake * w.BrakeTorque / w.Inertia * dt
			if drop >= math32.Abs(w.AngularVel) {
				w.AngularVel = 0
			} else {
				w.AngularVel -= math32.Copysign(drop, w.AngularVel)
			}
		}

		w.AngularVel *= 1 - c.tuning.RollingDrag*dt
	}
}

// raycastWheel drops a ray from the wheel attachment point straight down and
// updates Grounded and Compression. Returns the attachment point and the
// ground hit.
func (c *Car) raycastWheel(w *Wheel) (attach, contact math32.Vector3) {
	attach = c.chassis.ToWorld(w.LocalOffset)
	groundH := c.ground.HeightAt(attach.X, attach.Z)
	hitDist := attach.Y - groundH

	if hitDist > w.RestLength+w.Radius {
		w.Grounded = false
		w.Compression = 0
		return attach, math32.Vector3{}
	}
	w.Grounded = true
	w.Compression = math32.Max(0, w.RestLength-(hitDist-w.Radius))
	return attach, math32.Vec3(attach.X, groundH, attach.Z)
}

// applySuspension accumulates the per-wheel spring-damper force on the
// chassis before velocity integration. The impulse equivalent is remembered
// as part of the tire friction budget for this frame's solver passes.
func (c *Car) applySuspension(dt float32) {
	up := math32.Vec3(0, 1, 0)
	for i := range c.wheels {
		w := &c.wheels[i]
		attach, _ := c.raycastWheel(w)
		if !w.Grounded {
			w.springImpulse = 0
			continue
		}
		vUp := c.chassis.VelocityAt(attach).Dot(up)
		force := math32.Max(0, w.SpringK*w.Compression-w.DamperC*vUp)
		c.chassis.ApplyForceAt(up.MulScalar(force), attach)
		w.springImpulse = force * dt
	}
}

// solveWheel runs one Gauss-Seidel iteration for one wheel: the
// Baumgarte-biased non-negative normal impulse, then the lateral and
// longitudinal tire impulses, each clamped independently against the friction
// budget grip·N (a box clamp, not a circular cone).
func (c *Car) solveWheel(pos WheelPos, dt float32) {
	w := &c.wheels[pos]
	_, contact := c.raycastWheel(w)
	if !w.Grounded {
		return
	}

	up := math32.Vec3(0, 1, 0)
	r := contact.Sub(c.chassis.Position())
	invMass := c.chassis.InvMass()

	// Normal: drive the contact-point up-velocity to the Baumgarte bias,
	// pushing only. This backstops compression beyond the suspension slop;
	// inside the slop the wheel is free to travel and the ride comes from
	// the spring-damper force alone.
	rn := r.Cross(up)
	kN := invMass + c.chassis.InvInertiaWorldMul(rn).Dot(rn)
	if w.Compression > suspensionSlop && kN > effectiveMassEpsilon {
		vUp := c.chassis.VelocityAt(contact).Dot(up)
		bias := suspensionBeta * math32.Max(0, w.Compression-suspensionSlop) / dt
		dLambda := (bias - vUp) / kN
		newAccum := math32.Max(0, w.accumNormal+dLambda)
		dLambda = newAccum - w.accumNormal
		w.accumNormal = newAccum
		c.chassis.ApplyImpulseAt(up.MulScalar(dLambda), contact)
	}

	// Friction budget: this frame's normal load on the tire.
	budget := w.Grip * (w.springImpulse + w.accumNormal)
	if budget <= 0 {
		return
	}

	forward, right := c.wheelBasis(pos)

	// Lateral: cancel sideways slip at the contact.
	rl := r.Cross(right)
	kLat := invMass + c.chassis.InvInertiaWorldMul(rl).Dot(rl)
	if kLat > effectiveMassEpsilon {
		vLat := c.chassis.VelocityAt(contact).Dot(right)
		dLambda := -vLat / kLat
		newAccum := math32.Clamp(w.accumLat+dLambda, -budget, budget)
		dLambda = newAccum - w.accumLat
		w.accumLat = newAccum
		c.chassis.ApplyImpulseAt(right.MulScalar(dLambda), contact)
	}

	// Longitudinal: cancel the slip between the wheel surface speed ω·R and
	// the body's forward speed. The wheel's spin inertia joins the effective
	// mass, and the reaction torque feeds the impulse back into the spin.
	rf := r.Cross(forward)
	kLong := invMass + c.chassis.InvInertiaWorldMul(rf).Dot(rf) + w.Radius*w.Radius/w.Inertia
	if kLong > effectiveMassEpsilon {
		vFwd := c.chassis.VelocityAt(contact).Dot(forward)
		slip := vFwd - w.AngularVel*w.Radius
		dLambda := -slip / kLong
		newAccum := math32.Clamp(w.accumLong+dLambda, -budget, budget)
		dLambda = newAccum - w.accumLong
		w.accumLong = newAccum
		c.chassis.ApplyImpulseAt(forward.MulScalar(dLambda), contact)
		w.AngularVel += -dLambda * w.Radius / w.Inertia
	}
}

// wheelBasis returns the horizontal forward and right directions of a wheel.
// Front wheels rotate the chassis forward axis about the chassis up axis by
// the steering angle; rear wheels use the chassis axes directly.
func (c *Car) wheelBasis(pos WheelPos) (forward, right math32.Vector3) {
	fwdLocal := math32.Vec3(0, 0, 1)
	if pos.IsFront() && c.steerAngle != 0 {
		var steer math32.Quat
		steer.SetFromAxisAngle(math32.Vec3(0, 1, 0), c.steerAngle)
		fwdLocal = fwdLocal.MulQuat(steer)
	}
	forward = fwdLocal.MulQuat(c.chassis.Rotation())
	forward.Y = 0
	if forward.Length() < 1.0e-4 {
		// Chassis pitched vertical; fall back to the world axes.
		forward = math32.Vec3(0, 0, 1)
	}
	forward = forward.Normal()
	right = math32.Vec3(0, 1, 0).Cross(forward)
	return forward, right
}

// WheelWorldPose returns a wheel's hub position in world space together with
// its spin and steering angles, for the renderer.
func (c *Car) WheelWorldPose(pos WheelPos) (hub math32.Vector3, spin, steer float32) {
	w := &c.wheels[pos]
	hub = c.chassis.ToWorld(w.RenderOffset())
	steer = 0
	if pos.IsFront() {
		steer = c.steerAngle
	}
	return hub, w.SpinAngle, steer
}
