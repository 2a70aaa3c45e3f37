// Command rir builds and queries a positional inverted index over a
// document corpus.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("rir failed")
		os.Exit(1)
	}
}
