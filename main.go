package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Aashish23092/ocr-autofill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}
