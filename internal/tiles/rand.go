package tiles

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Rand is the randomness source used for shuffles and random jumps.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a random source. A non-zero seed gives a reproducible
// sequence; zero seeds from the system entropy pool.
func NewRand(seed int64) Rand {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}
