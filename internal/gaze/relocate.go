package gaze

import (
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rand is the only source of nondeterminism in the package.
// Float64 must return values in [0, 1); *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a generator seeded with seed, or with the clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Policy describes where a found target may reappear.
// Angles are in degrees, distances in world units.
type Policy struct {
	MinTurn      float64 // rotation about Y away from the old position, lower bound
	MaxTurn      float64 // upper bound, exclusive
	MinDistance  float64
	MaxDistance  float64 // exclusive
	MaxElevation float64 // new position is within ±MaxElevation of the horizon
}

// DefaultPolicy turns the target 90°..270° away, 5..20 units out, ±40° up or down.
func DefaultPolicy() Policy {
	return Policy{
		MinTurn:      90,
		MaxTurn:      270,
		MinDistance:  5,
		MaxDistance:  20,
		MaxElevation: 40,
	}
}

// Relocate returns a new target for a target that was just found.
//
// The old position is rotated about Y by at least MinTurn and rescaled to a fresh
// distance, then lifted or lowered to a random elevation. Orientation is reset to
// identity. Draws happen in a fixed order: turn, distance, elevation.
func (p Policy) Relocate(t Target, rng Rand) Target {
	assertPositiveDistance(t.Distance)

	turn := p.MinTurn + rng.Float64()*(p.MaxTurn-p.MinTurn)
	rotation := rl.MatrixRotateY(float32(turn * math.Pi / 180))

	distance := p.drawDistance(rng)
	scale := distance / t.Distance
	// rotation · scale
	rotation = rl.MatrixMultiply(rl.MatrixScale(scale, scale, scale), rotation)

	pos := rl.Vector3Transform(t.Position(), rotation)

	elevation := -p.MaxElevation + rng.Float64()*2*p.MaxElevation
	y := float32(math.Tan(elevation*math.Pi/180)) * distance

	next := Target{
		Model:    rl.MatrixTranslate(pos.X, y, pos.Z),
		Distance: distance,
	}
	assertPositiveDistance(next.Distance)
	return next
}

// drawDistance keeps the result strictly below MaxDistance after float32 rounding.
func (p Policy) drawDistance(rng Rand) float32 {
	d := float32(p.MinDistance + rng.Float64()*(p.MaxDistance-p.MinDistance))
	if hi := float32(p.MaxDistance); d >= hi {
		d = math.Nextafter32(hi, 0)
	}
	if lo := float32(p.MinDistance); d < lo {
		d = lo
	}
	return d
}
