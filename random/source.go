// Package random provides a deterministic, splittable pseudo-random source.
//
// Source is a SplitMix64 generator held by value. Every operation returns the
// drawn value together with the advanced Source, so two holders of the same
// Source always observe the same sequence and nothing is shared by accident.
// Independent streams are obtained with Split.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"time"
)

const goldenGamma = 0x9e3779b97f4a7c15

// Source is an immutable SplitMix64 state.
type Source struct {
	seed  uint64
	gamma uint64
}

// New returns the Source for seed. Equal seeds yield equal sequences.
func New(seed int64) Source {
	return Source{seed: uint64(seed), gamma: goldenGamma}
}

// NewSeed returns a process-derived seed, suitable when the caller did not pin one.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func (s Source) nextSeed() Source {
	s.seed += s.gamma
	return s
}

// Next returns 64 random bits and the advanced source.
func (s Source) Next() (uint64, Source) {
	s = s.nextSeed()
	return mix64(s.seed), s
}

// Draw returns a uniformly distributed value in [0, bound).
// Panics if bound is 0.
func (s Source) Draw(bound uint64) (uint64, Source) {
	if bound == 0 {
		panic("random: Draw called with zero bound")
	}
	x, s := s.Next()
	hi, lo := bits.Mul64(x, bound)
	if lo < bound {
		threshold := -bound % bound
		for lo < threshold {
			x, s = s.Next()
			hi, lo = bits.Mul64(x, bound)
		}
	}
	return hi, s
}

// Float64 returns a value in [0.0, 1.0).
func (s Source) Float64() (float64, Source) {
	x, s := s.Next()
	return float64(x>>11) * 0x1.0p-53, s
}

// Split derives two independent sources. The first is the advanced receiver,
// the second a child with its own seed and gamma. The result depends only on
// the receiver's state.
func (s Source) Split() (Source, Source) {
	s = s.nextSeed()
	childSeed := mix64(s.seed)
	s = s.nextSeed()
	return s, Source{seed: childSeed, gamma: mixGamma(s.seed)}
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// mixGamma produces an odd gamma with enough bit transitions to keep the
// child stream well mixed.
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	z = (z ^ (z >> 33)) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		z ^= 0xaaaaaaaaaaaaaaaa
	}
	return z
}
