package button

import (
	"bufio"
	"context"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-genius/internal/game"
)

// Keyboard feeds presses read from r into l until r ends or ctx is done.
// Words "a", "yellow", "b", "blue" are one press each; any other word is
// read letter by letter, so "abba" is four presses.
func Keyboard(ctx context.Context, r io.Reader, l *Latch, lg zerolog.Logger) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		word := sc.Text()
		if b, ok := game.ParseButton(word); ok {
			l.Press(b)
			continue
		}
		for len(word) > 0 {
			_, size := utf8.DecodeRuneInString(word)
			if b, ok := game.ParseButton(word[:size]); ok {
				l.Press(b)
			} else {
				lg.Debug().Str("key", word[:size]).Msg("ignored key")
			}
			word = word[size:]
		}
	}
	return sc.Err()
}
