package clicmds

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/urlp/parsers"
	"gitlab.com/urlp/store"
	"gitlab.com/urlp/urlp"
)

// ParseFlags configures the parse command
func ParseFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		datadirFlag(),
		debugFlag(),
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: debug, json or dot",
			Value: "debug",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "record the result in the history store",
			Value: false,
		},
	}
}

// Parse the first argument, or the configured demonstration URI
func Parse(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}

	input := cliCtx.Args().First()
	if input == "" {
		input = cfg.Default
	}

	p := parsers.New(log.Logger)
	u, rest, parseErr := p.Parse(input)
	result := urlp.NewResult(input, u, rest, parseErr)

	if cliCtx.Bool("save") {
		history := store.NewHistory(cfg.DataPath)
		if err := history.Init(); err != nil {
			log.Error().Err(err).Msg("failed to init history store")
			return err
		}
		id, err := history.Add(store.NewEntry(input, u, rest, parseErr))
		if err != nil {
			history.Close()
			return err
		}
		log.Info().Uint64("id", id).Msg("saved to history")
		if err := history.Close(); err != nil {
			return err
		}
	}

	return writeResult(cliCtx.App.Writer, cfg.Format, result)
}
