package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFillsEverySlot(t *testing.T) {
	g := NewGenerator(&countingSeeder{next: 1})
	for i := 0; i < 50; i++ {
		seq := g.Generate()
		require.Len(t, seq, MaxLength)
		for j, c := range seq {
			require.Truef(t, c.Valid(), "seed %d slot %d holds %v", g.LastSeed(), j, c)
		}
	}
}

func TestGenerateIsDeterministicUnderFixedSeed(t *testing.T) {
	a := NewGenerator(FixedSeed(42)).Generate()
	b := NewGenerator(FixedSeed(42)).Generate()
	assert.Equal(t, a, b)
	assert.Equal(t, FromSeed(42), a)
}

func TestGenerateReseedsEveryCall(t *testing.T) {
	s := &countingSeeder{next: 100}
	g := NewGenerator(s)

	first := g.Generate()
	assert.Equal(t, int64(100), g.LastSeed())
	second := g.Generate()
	assert.Equal(t, int64(101), g.LastSeed())

	assert.Equal(t, 2, s.calls)
	assert.NotEqual(t, first, second, "consecutive games should not replay the same sequence")
}

func TestGenerateUsesBothColors(t *testing.T) {
	seq := FromSeed(3)
	var yellow, blue int
	for _, c := range seq {
		if c == Yellow {
			yellow++
		} else {
			blue++
		}
	}
	assert.Equal(t, MaxLength, yellow+blue)
	assert.NotZero(t, yellow)
	assert.NotZero(t, blue)
}

func TestCryptoSeederDefault(t *testing.T) {
	g := NewGenerator(nil)
	seqs := map[Sequence]bool{}
	for i := 0; i < 3; i++ {
		seqs[g.Generate()] = true
	}
	assert.Len(t, seqs, 3)
}

func TestSequentialSeeder(t *testing.T) {
	g := NewGenerator(Sequential(41))
	assert.Equal(t, FromSeed(41), g.Generate())
	assert.Equal(t, FromSeed(42), g.Generate())
	assert.Equal(t, int64(42), g.LastSeed())
}
