package spawn

import "github.com/vovakirdan/tui-slicer/internal/core"

// Rand is the random source the spawn logic draws from.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64 // Uniform in [0, 1)
}

// Kind tells benign entities from hazards.
type Kind int

const (
	KindBenign Kind = iota
	KindHazard
)

// String returns the kind name for logs.
func (k Kind) String() string {
	if k == KindHazard {
		return "hazard"
	}
	return "benign"
}

// Choice is the selected entity type: a kind plus, for benign entities,
// the index of the configured variant.
type Choice struct {
	Kind    Kind
	Variant int
}

// ChooseKind draws one value; below hazardChance picks the hazard, otherwise
// a second draw picks a benign variant uniformly.
func ChooseKind(rng Rand, hazardChance float64, benignCount int) Choice {
	if rng.Float64() < hazardChance || benignCount <= 0 {
		return Choice{Kind: KindHazard}
	}
	idx := int(rng.Float64() * float64(benignCount))
	if idx >= benignCount {
		idx = benignCount - 1
	}
	return Choice{Kind: KindBenign, Variant: idx}
}

// SampleRange returns a value uniform in [min, max].
func SampleRange(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// SamplePosition draws each axis independently inside the bounds.
func SamplePosition(rng Rand, b core.Bounds3) core.Vec3 {
	return core.Vec3{
		X: SampleRange(rng, b.Min.X, b.Max.X),
		Y: SampleRange(rng, b.Min.Y, b.Max.Y),
		Z: SampleRange(rng, b.Min.Z, b.Max.Z),
	}
}

// SampleTilt draws a rotation in degrees about the forward axis.
func SampleTilt(rng Rand, minDeg, maxDeg float64) float64 {
	return SampleRange(rng, minDeg, maxDeg)
}
