package core

import "math/rand"

// RandomInUnitSphere draws points uniformly from the [-1,1]^3 cube and
// retries until one falls strictly inside the unit sphere.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// PixelSeed derives a deterministic random seed for a single pixel so that
// every pixel owns an independent stream regardless of which worker renders it.
func PixelSeed(seed int64, x, y int) int64 {
	// splitmix64 finalizer over the packed coordinates
	z := uint64(seed) ^ (uint64(uint32(x)) << 32) ^ uint64(uint32(y))
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
