package sweep

import (
	"encoding/binary"
	"math/rand"

	"github.com/dchest/siphash"
)

const seedKey uint64 = 0x736c6f7474656421

// runSeed derives the seed of one run from the sweep seed and the run's
// coordinates in the grid, so that each run has its own stream no matter
// which worker executes it or in what order.
func runSeed(seed int64, w, n, trial int) int64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(w))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(n))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(trial))
	return int64(siphash.Hash(uint64(seed), seedKey, buf[:]))
}

func newRand(seed int64, w, n, trial int) *rand.Rand {
	return rand.New(rand.NewSource(runSeed(seed, w, n, trial)))
}
