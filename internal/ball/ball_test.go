package ball

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"

	"physics-engine/internal/phys"
)

const testDt = float32(1.0 / 60.0)

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New(0, 0.5, 9.81, math32.Vector3{}); !errors.Is(err, phys.ErrInvalidData) {
		t.Fatalf("density 0: got err %v, want ErrInvalidData", err)
	}
	if _, err := New(1, -1, 9.81, math32.Vector3{}); !errors.Is(err, phys.ErrInvalidData) {
		t.Fatalf("negative radius: got err %v, want ErrInvalidData", err)
	}
}

func TestFallsAndBounces(t *testing.T) {
	b, err := New(100, 0.5, 9.81, math32.Vec3(0, 3, 0))
	if err != nil {
		t.Fatal(err)
	}
	ground := phys.Plane{}

	bounced := false
	for i := 0; i < 600; i++ {
		yBefore := b.Position().Y
		b.Update(testDt, ground)
		if b.Position().Y > yBefore && b.Body().Velocity().Y > 0 {
			bounced = true
		}
	}
	if !bounced {
		t.Fatal("ball never bounced off the ground")
	}

	// After ten seconds it should be resting near the surface.
	if y := b.Position().Y; y < 0.5-1.0e-3 || y > 0.7 {
		t.Fatalf("resting height = %v, want near radius 0.5", y)
	}
}

func TestDragSlowsRoll(t *testing.T) {
	b, err := New(100, 0.5, 9.81, math32.Vec3(0, 0.5, 0))
	if err != nil {
		t.Fatal(err)
	}
	b.Body().SetVelocity(math32.Vec3(0, 0, 5))

	ground := phys.Plane{}
	for i := 0; i < 60; i++ {
		b.Update(testDt, ground)
	}
	after := b.Body().Velocity().Z
	if after >= 5 {
		t.Fatalf("speed after 1s = %v, want < 5", after)
	}
	if after <= 0 {
		t.Fatalf("speed after 1s = %v, want still moving forward", after)
	}
}

func TestResetZeroesState(t *testing.T) {
	b, err := New(100, 0.5, 9.81, math32.Vec3(0, 5, 0))
	if err != nil {
		t.Fatal(err)
	}
	ground := phys.Plane{}
	for i := 0; i < 120; i++ {
		b.Update(testDt, ground)
	}
	b.Reset(math32.Vec3(1, 2, 3))
	if p := b.Position(); p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Fatalf("position after reset = %v", p)
	}
	if v := b.Body().Velocity(); v.Length() != 0 {
		t.Fatalf("velocity after reset = %v", v)
	}
}
