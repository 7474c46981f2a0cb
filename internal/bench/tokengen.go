// Package bench holds the token-generation and latency-measurement
// helpers used by cmd/invidx-bench.
package bench

import (
	"math"
	mrand "math/rand"
	"sync/atomic"
)

// TokenDistribution selects how TokenGenerator picks the next token out
// of [0, numTokens).
type TokenDistribution string

const (
	DistUniform    TokenDistribution = "uniform"
	DistZipfian    TokenDistribution = "zipfian"
	DistSequential TokenDistribution = "sequential"
	DistLatest     TokenDistribution = "latest"
)

// TokenGenerator produces a stream of token ids in [0, numTokens)
// according to a distribution, driving realistic rare/common token
// splits in benchmarks (a Zipfian draw quickly pushes a handful of
// tokens past invertedindex.RareThreshold while most stay rare).
type TokenGenerator struct {
	numTokens    int
	distribution TokenDistribution
	rng          *mrand.Rand

	zipf *mrand.Zipf

	seqCounter atomic.Int64
}

// NewTokenGenerator constructs a generator over [0, numTokens) using the
// given distribution and a deterministic seed.
func NewTokenGenerator(numTokens int, distribution TokenDistribution, seed int64) *TokenGenerator {
	rng := mrand.New(mrand.NewSource(seed))
	tg := &TokenGenerator{
		numTokens:    numTokens,
		distribution: distribution,
		rng:          rng,
	}
	if distribution == DistZipfian {
		tg.zipf = mrand.NewZipf(rng, 1.1, 1, uint64(numTokens-1))
	}
	return tg
}

// Next returns the next token id.
func (tg *TokenGenerator) Next() uint64 {
	switch tg.distribution {
	case DistUniform:
		return uint64(tg.rng.Intn(tg.numTokens))

	case DistZipfian:
		return tg.zipf.Uint64()

	case DistSequential:
		return uint64(tg.seqCounter.Add(1)-1) % uint64(tg.numTokens)

	case DistLatest:
		rang := tg.numTokens / 10
		if rang < 100 {
			rang = 100
		}
		offset := int(math.Abs(tg.rng.NormFloat64()) * float64(rang))
		tokenNum := tg.numTokens - 1 - offset
		if tokenNum < 0 {
			tokenNum = 0
		}
		return uint64(tokenNum)

	default:
		return uint64(tg.rng.Intn(tg.numTokens))
	}
}
