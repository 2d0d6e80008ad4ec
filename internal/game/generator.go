package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Seeder supplies the seed for one game's sequence.
type Seeder interface {
	Seed() int64
}

// SeederFunc adapts a function to Seeder.
type SeederFunc func() int64

func (f SeederFunc) Seed() int64 { return f() }

// FixedSeed always returns the same seed. Useful for replays and tests.
func FixedSeed(seed int64) Seeder {
	return SeederFunc(func() int64 { return seed })
}

// Sequential hands out start, start+1, ... so a run started from a logged
// seed replays that game and every game after it.
func Sequential(start int64) Seeder {
	next := start
	return SeederFunc(func() int64 {
		s := next
		next++
		return s
	})
}

// CryptoSeeder draws seeds from crypto/rand, falling back to the wall clock if
// the entropy source cannot be read.
type CryptoSeeder struct{}

func (CryptoSeeder) Seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Generator builds a full-capacity sequence once per game.
type Generator struct {
	seeder   Seeder
	lastSeed int64
}

// NewGenerator returns a Generator using s, or crypto/rand when s is nil.
func NewGenerator(s Seeder) *Generator {
	if s == nil {
		s = CryptoSeeder{}
	}
	return &Generator{seeder: s}
}

// Generate reseeds and fills all MaxLength slots with independent, uniform
// draws from {Yellow, Blue}.
func (g *Generator) Generate() Sequence {
	g.lastSeed = g.seeder.Seed()
	return FromSeed(g.lastSeed)
}

// LastSeed is the seed used by the most recent Generate call.
func (g *Generator) LastSeed() int64 { return g.lastSeed }

// FromSeed deterministically derives the sequence for seed.
func FromSeed(seed int64) Sequence {
	rng := rand.New(rand.NewSource(seed))
	var seq Sequence
	for i := range seq {
		seq[i] = Color(rng.Intn(2))
	}
	return seq
}
