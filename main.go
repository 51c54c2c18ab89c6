package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/urlp/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "urlp"
	app.Version = "0.1"
	app.Usage = "Parses http and https URIs into their components"
	app.Commands = clicmds.Commands()
	app.Flags = clicmds.ParseFlags()
	app.Action = clicmds.Parse

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("urlp failed")
	}
}
