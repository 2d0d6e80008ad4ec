package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternAdvanceIsPrefixOfNextRound(t *testing.T) {
	var p Pattern
	p.Reset(FromSeed(9))
	require.Equal(t, 0, p.Len())

	prev := p.Active()
	for round := 1; round <= 10; round++ {
		require.True(t, p.Advance())
		cur := p.Active()
		require.Len(t, cur, round)
		assert.Equal(t, prev, cur[:len(prev)], "round %d must extend round %d", round, round-1)
		prev = cur
	}
}

func TestPatternAdvanceClampsAtCapacity(t *testing.T) {
	var p Pattern
	p.Reset(FromSeed(1))
	for i := 0; i < MaxLength; i++ {
		require.True(t, p.Advance())
	}
	assert.False(t, p.Advance())
	assert.Equal(t, MaxLength, p.Len())
	assert.True(t, p.Valid())
}

func TestPatternResetKeepsSequenceImmutable(t *testing.T) {
	seq := FromSeed(5)
	var p Pattern
	p.Reset(seq)
	p.Advance()

	seq[0] = Blue
	seq[1] = Blue
	assert.Equal(t, FromSeed(5), p.Sequence())

	active := p.Active()
	active[0] = Color(7)
	assert.True(t, p.Valid())
}

func TestPatternValidRejectsBadSymbols(t *testing.T) {
	var seq Sequence
	seq[10] = Color(2)
	var p Pattern
	p.Reset(seq)
	assert.False(t, p.Valid())
}

func TestSequencePrefix(t *testing.T) {
	var seq Sequence
	seq[1] = Blue
	assert.Equal(t, "YBY", seq.Prefix(3))
	assert.Len(t, seq.String(), MaxLength)
}
