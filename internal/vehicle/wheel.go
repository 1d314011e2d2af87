package vehicle

import "cogentcore.org/core/math32"

// WheelPos identifies one of the four wheel positions.
type WheelPos int

const (
	FrontLeft WheelPos = iota
	FrontRight
	RearLeft
	RearRight
)

// NumWheels is the wheel count of the vehicle model.
const NumWheels = 4

// IsFront reports whether the position is a steered (front) wheel.
func (p WheelPos) IsFront() bool { return p == FrontLeft || p == FrontRight }

// SignLR is -1 for left wheels and +1 for right wheels.
func (p WheelPos) SignLR() float32 {
	if p == FrontLeft || p == RearLeft {
		return -1
	}
	return 1
}

// SignFB is +1 for front wheels and -1 for rear wheels.
func (p WheelPos) SignFB() float32 {
	if p.IsFront() {
		return 1
	}
	return -1
}

func (p WheelPos) String() string {
	switch p {
	case FrontLeft:
		return "front_left"
	case FrontRight:
		return "front_right"
	case RearLeft:
		return "rear_left"
	case RearRight:
		return "rear_right"
	}
	return "unknown"
}

// Wheel is the per-wheel state record. Geometry fields are set once at
// construction; Compression and AngularVel are rewritten every physics step.
type Wheel struct {
	LocalOffset math32.Vector3 // suspension attachment point in chassis space
	Radius      float32
	Width       float32

	RestLength float32
	SpringK    float32
	DamperC    float32

	Grip    float32
	Inertia float32 // about the spin axis

	DriveTorque float32
	BrakeTorque float32

	// Mutable per-step state.
	Compression float32
	AngularVel  float32 // spin rate, rad/s; positive rolls the car forward
	SpinAngle   float32 // accumulated visual rotation
	Grounded    bool

	// Per-frame accumulated solver impulses (cleared each Update, no warm
	// starting). The normal accumulator only backstops penetration; the tire
	// accumulators are clamped against the friction budget.
	accumNormal float32
	accumLat    float32
	accumLong   float32

	// springImpulse is this frame's suspension spring-damper impulse, part of
	// the tire friction budget.
	springImpulse float32
}

// RenderOffset returns the wheel hub position in chassis space at the current
// suspension compression.
func (w *Wheel) RenderOffset() math32.Vector3 {
	drop := w.RestLength - w.Compression
	return w.LocalOffset.Sub(math32.Vec3(0, drop, 0))
}
