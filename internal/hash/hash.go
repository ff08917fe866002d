package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Floats computes the xxHash64 of one or more float64 columns.
//
// Each column contributes its length followed by the little-endian IEEE-754
// bits of its values, so ([1 2], [3]) and ([1], [2 3]) hash differently.
// Positive and negative zero hash differently; NaN payloads are preserved.
func Floats(columns ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, col := range columns {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(col)))
		_, _ = d.Write(buf[:])
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
