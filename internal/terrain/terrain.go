// Package terrain provides a procedural height-field ground: a deterministic
// fractal-noise height query plus a finite-difference surface normal. It is
// the world the vehicle drives on; the physics core only sees the
// HeightAt/NormalAt pair.
package terrain

import (
	"cogentcore.org/core/math32"

	"physics-engine/internal/phys"
)

// Options controls the procedural height field. HeightScale is the maximum
// terrain height in world units. Frequency is cycles per world unit of the
// base octave; Octaves, Lacunarity, and Gain shape the fractal sum. The area
// within FlattenRadius of the origin is blended down to height zero over
// FlattenBlend world units, to give the car a level spawn area.
type Options struct {
	HeightScale float32
	Frequency   float32
	Octaves     int
	Lacunarity  float32
	Gain        float32
	Seed        int64

	FlattenRadius float32
	FlattenBlend  float32
}

// DefaultOptions returns gentle rolling terrain with a flat spawn area.
func DefaultOptions() Options {
	return Options{
		HeightScale:   2.5,
		Frequency:     0.02,
		Octaves:       4,
		Lacunarity:    2.0,
		Gain:          0.5,
		Seed:          1,
		FlattenRadius: 18,
		FlattenBlend:  22,
	}
}

// Terrain is an unbounded procedural height field. It is immutable and safe
// to query from anywhere; the same options always produce the same surface.
type Terrain struct {
	opts Options
}

var _ phys.Ground = (*Terrain)(nil)

// New returns a terrain for the given options; zero or negative fields fall
// back to the defaults.
func New(opts Options) *Terrain {
	def := DefaultOptions()
	if opts.HeightScale <= 0 {
		opts.HeightScale = def.HeightScale
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = def.Lacunarity
	}
	if opts.Gain <= 0 {
		opts.Gain = def.Gain
	}
	if opts.Seed == 0 {
		opts.Seed = def.Seed
	}
	if opts.FlattenBlend <= 0 {
		opts.FlattenBlend = def.FlattenBlend
	}
	return &Terrain{opts: opts}
}

// Options returns the effective options after defaulting.
func (t *Terrain) Options() Options { return t.opts }

// HeightAt returns the terrain height at world-plane coordinates (x, z).
func (t *Terrain) HeightAt(x, z float32) float32 {
	o := &t.opts
	h := fractalValueNoise2D(x*o.Frequency, z*o.Frequency, o.Seed, o.Octaves, o.Lacunarity, o.Gain)
	h *= o.HeightScale

	if o.FlattenRadius > 0 {
		d := math32.Sqrt(x*x + z*z)
		h *= smoothStep((d - o.FlattenRadius) / o.FlattenBlend)
	}
	return h
}

// normalEpsilon is the central-difference step used for NormalAt, roughly the
// contact-patch scale of a wheel.
const normalEpsilon = 0.25

// NormalAt returns the unit surface normal at (x, z), from central height
// differences. Always has a positive Y component.
func (t *Terrain) NormalAt(x, z float32) math32.Vector3 {
	e := float32(normalEpsilon)
	dx := t.HeightAt(x-e, z) - t.HeightAt(x+e, z)
	dz := t.HeightAt(x, z-e) - t.HeightAt(x, z+e)
	return math32.Vec3(dx, 2*e, dz).Normal()
}

// fractalValueNoise2D layers smooth value noise with the given octaves,
// lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var maxAmp float32
	amplitude := float32(1)
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := math32.Lerp(v00, v10, sx)
	ix1 := math32.Lerp(v01, v11, sx)
	return math32.Lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

// smoothStep is Perlin-style cubic easing, clamped to [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
