package comparator

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ComparisonKey is the content-derived fingerprint of (seq1, seq2,
// algorithm) used as the cache key. Equal keys always imply
// equal results, since it is a pure function of the operand bytes and the
// algorithm tag — no wall-clock or pointer identity is mixed in.
type ComparisonKey uint64

// computeKeyGeneric hashes seq1, seq2, and algorithm into a single 64-bit
// digest with xxhash, the same content-addressing approach used for
// cache keys elsewhere. When toFloat is non-nil (a numeric comparator)
// elements are hashed as their IEEE-754 bit pattern; otherwise each
// element's default string form is hashed, which is sufficient for any
// comparable T since Go's %v formatting is deterministic per value.
func computeKeyGeneric[T comparable](seq1, seq2 []T, algorithm Algorithm, toFloat func(T) float64) ComparisonKey {
	h := xxhash.New()
	writeSeqGeneric(h, seq1, toFloat)
	// separator byte so ([1,2],[3]) and ([1],[2,3]) never collide
	h.Write([]byte{0xff})
	writeSeqGeneric(h, seq2, toFloat)
	h.Write([]byte{0xff})
	h.Write([]byte(algorithm.String()))
	return ComparisonKey(h.Sum64())
}

func writeSeqGeneric[T comparable](h *xxhash.Digest, seq []T, toFloat func(T) float64) {
	if toFloat != nil {
		var buf [8]byte
		for _, v := range seq {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(toFloat(v)))
			h.Write(buf[:])
		}
		return
	}
	for _, v := range seq {
		fmt.Fprintf(h, "%v\x00", v)
	}
}
