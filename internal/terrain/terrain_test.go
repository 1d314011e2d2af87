package terrain

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestHeightDeterministic(t *testing.T) {
	a := New(DefaultOptions())
	b := New(DefaultOptions())
	for _, p := range [][2]float32{{0, 0}, {37.5, -12.25}, {-100, 250}, {1e4, 1e4}} {
		if a.HeightAt(p[0], p[1]) != b.HeightAt(p[0], p[1]) {
			t.Fatalf("same seed, different heights at %v", p)
		}
	}
}

func TestHeightRange(t *testing.T) {
	tr := New(DefaultOptions())
	max := DefaultOptions().HeightScale
	for x := float32(-200); x <= 200; x += 7.3 {
		for z := float32(-200); z <= 200; z += 7.3 {
			h := tr.HeightAt(x, z)
			if h < 0 || h > max {
				t.Fatalf("height %v at (%v,%v) outside [0,%v]", h, x, z, max)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	opts := DefaultOptions()
	opts.FlattenRadius = 0 // compare raw noise
	a := New(opts)
	opts.Seed = 99
	b := New(opts)

	same := 0
	total := 0
	for x := float32(25); x <= 200; x += 13.7 {
		total++
		if a.HeightAt(x, x) == b.HeightAt(x, x) {
			same++
		}
	}
	if same == total {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestSpawnAreaIsFlat(t *testing.T) {
	tr := New(DefaultOptions())
	r := DefaultOptions().FlattenRadius
	for x := -r; x <= r; x += 3 {
		for z := -r; z <= r; z += 3 {
			if x*x+z*z > r*r {
				continue
			}
			if h := tr.HeightAt(x, z); h != 0 {
				t.Fatalf("spawn area not flat: height %v at (%v,%v)", h, x, z)
			}
		}
	}
}

func TestNormalUnitAndUpward(t *testing.T) {
	tr := New(DefaultOptions())
	for x := float32(-150); x <= 150; x += 11.1 {
		n := tr.NormalAt(x, -x)
		if !floatNear(n.Length(), 1, 1e-4) {
			t.Fatalf("normal not unit at %v: %v", x, n)
		}
		if n.Y <= 0 {
			t.Fatalf("normal points down at %v: %v", x, n)
		}
	}
}

func TestFlatGroundNormalIsUp(t *testing.T) {
	tr := New(DefaultOptions())
	n := tr.NormalAt(0, 0)
	if !floatNear(n.X, 0, 1e-5) || !floatNear(n.Y, 1, 1e-5) || !floatNear(n.Z, 0, 1e-5) {
		t.Fatalf("flat-area normal = %v, want (0,1,0)", n)
	}
}

func floatNear(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
