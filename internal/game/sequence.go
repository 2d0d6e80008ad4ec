package game

import "strings"

// Sequence is the full symbol buffer for one game. It is a value type, so a
// copy held by a Pattern cannot be changed by the generator afterwards.
type Sequence [MaxLength]Color

// String renders the whole buffer as Y/B letters.
func (s Sequence) String() string { return s.Prefix(MaxLength) }

// Prefix renders the first n symbols as Y/B letters.
func (s Sequence) Prefix(n int) string {
	if n > MaxLength {
		n = MaxLength
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if s[i] == Blue {
			b.WriteByte('B')
		} else {
			b.WriteByte('Y')
		}
	}
	return b.String()
}

// Pattern is a sequence buffer plus the length of the prefix in play.
type Pattern struct {
	seq    Sequence
	active int
}

// Reset installs a new sequence and puts the prefix back to zero.
func (p *Pattern) Reset(seq Sequence) {
	p.seq = seq
	p.active = 0
}

// Advance grows the prefix by one. It reports false, leaving the prefix
// unchanged, once the whole buffer is already in play.
func (p *Pattern) Advance() bool {
	if p.active >= MaxLength {
		return false
	}
	p.active++
	return true
}

// Len is the current prefix length.
func (p *Pattern) Len() int { return p.active }

// Sequence returns the underlying buffer.
func (p *Pattern) Sequence() Sequence { return p.seq }

// Active returns a copy of the symbols currently in play.
func (p *Pattern) Active() []Color {
	out := make([]Color, p.active)
	copy(out, p.seq[:p.active])
	return out
}

// Valid checks 0 <= prefix <= capacity and that every slot holds a symbol.
func (p *Pattern) Valid() bool {
	if p.active < 0 || p.active > MaxLength {
		return false
	}
	for _, c := range p.seq {
		if !c.Valid() {
			return false
		}
	}
	return true
}
