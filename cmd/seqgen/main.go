package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-genius/internal/game"
)

// seqgen prints the sequence a seed produces, for replaying a logged game.
func main() {
	var (
		seed   = flag.Int64("seed", 0, "seed to expand (0 = draw one)")
		n      = flag.Int("n", game.MaxLength, "prefix length to print")
		asJSON = flag.Bool("json", false, "emit JSON")
	)
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *n < 0 || *n > game.MaxLength {
		log.Fatal().Int("n", *n).Int("max", game.MaxLength).Msg("prefix length out of range")
	}
	s := *seed
	if s == 0 {
		s = game.CryptoSeeder{}.Seed()
		log.Info().Int64("seed", s).Msg("drew seed")
	}
	seq := game.FromSeed(s)

	if !*asJSON {
		fmt.Println(seq.Prefix(*n))
		return
	}
	colors := make([]string, *n)
	for i := range colors {
		colors[i] = seq[i].String()
	}
	out := struct {
		Seed     int64    `json:"seed"`
		Sequence string   `json:"sequence"`
		Colors   []string `json:"colors"`
	}{s, seq.Prefix(*n), colors}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("encode")
	}
}
