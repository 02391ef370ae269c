package predictor

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts the randomness consumed by selection so that a
// fixed seed reproduces a fixed prediction. Implementations return values
// in [0, 1).
type RandomSource interface {
	Float64() float64
}

// cryptoRNG reads 53 random bits from crypto/rand per call.
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// crypto source unavailable; fall back to math/rand/v2
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultRNG returns the crypto-backed random source used in production.
func DefaultRNG() RandomSource { return cryptoRNG{} }

// seededRNG is a reproducible PCG source for tests and batch runs.
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic random source; the same seed always
// yields the same float sequence.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
