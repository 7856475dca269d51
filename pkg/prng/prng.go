// Package prng provides the stateless seeded hash generator the whole
// generation pipeline is built on. Every draw is a pure function of its
// seed: same seed, same value, bit-for-bit, on every platform. Callers
// derive independent-looking draws by adding small integer salts to a
// base seed; the salt scheme is part of the contract, so salts used for
// different decisions must not collide.
package prng

// splitmix64 finalizer. Fast and well mixed; statistical quality beyond
// that is not a goal here.
func mix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Random maps a seed to a float64 in [0, 1).
// Only the top 53 bits of the mix feed the mantissa, so the result is
// exact in float64 and safe to compare across platforms.
func Random(seed int64) float64 {
	return float64(mix(uint64(seed))>>11) * (1.0 / (1 << 53))
}

// Hash2D returns a deterministic 64-bit hash for (x, y) under the given
// seed. Negative coordinates hash distinctly from positive ones.
func Hash2D(seed uint64, x, y int) uint64 {
	ux := uint64(uint32(int32(x)))
	uy := uint64(uint32(int32(y)))
	h := seed
	h ^= ux * 0x9E3779B185EBCA87
	h ^= uy * 0xC2B2AE3D27D4EB4F
	return mix(h)
}

// TileSeed folds a tile coordinate and session seed into a base seed
// for that tile's generation pass.
func TileSeed(session uint64, tileX, tileY int) int64 {
	return int64(Hash2D(session, tileX, tileY) >> 11)
}

// CellSeed derives the seed for one lattice cell of a tile. Local cell
// coordinates are folded by absolute value so the cell pattern is
// mirror-symmetric around the tile center, matching the layout engines'
// −size..+size iteration.
func CellSeed(session uint64, tileX, tileY, cellX, cellZ int) int64 {
	base := Hash2D(session, tileX, tileY)
	return int64(Hash2D(base, abs(cellX), abs(cellZ)) >> 11)
}

// IntN returns a deterministic integer in [0, n) for the seed.
func IntN(seed int64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(mix(uint64(seed)) % uint64(n))
}

// Range returns a deterministic integer in [lo, hi] for the seed.
func Range(seed int64, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + IntN(seed, hi-lo+1)
}

// RangeF returns a deterministic float64 in [lo, hi) for the seed.
func RangeF(seed int64, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*Random(seed)
}

// Chance reports whether the seed's draw falls below p.
func Chance(seed int64, p float64) bool {
	return Random(seed) < p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
