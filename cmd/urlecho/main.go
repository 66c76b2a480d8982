package main

import (
	"os"

	"github.com/indigo-web/urlecho"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := urlecho.New().Logger(log).Serve(); err != nil {
		log.Fatal().Err(err).Msg("cannot serve")
	}
}
