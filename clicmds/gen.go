package clicmds

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/urlp/gen"
	"gitlab.com/urlp/parsers"
	"gitlab.com/urlp/urlp"
)

// GenFlags configures the gen command
func GenFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		debugFlag(),
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed, the same seed generates the same URIs",
			Value: 0,
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of URIs to generate",
			Value: 10,
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "when set, parse every generated URI and print it in this format",
			Value: "",
		},
	}
}

// Gen prints sample URIs the grammar accepts
func Gen(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}

	g, err := gen.New(cfg.GenSeed)
	if err != nil {
		return err
	}

	w := cliCtx.App.Writer
	for _, input := range g.GenerateN(cfg.GenCount) {
		if !cliCtx.IsSet("format") {
			fmt.Fprintln(w, input)
			continue
		}
		u, rest, err := parsers.ParseURI(input)
		if err != nil {
			log.Error().Err(err).Str("input", input).Msg("generated URI did not parse")
		}
		if err := writeResult(w, cfg.Format, urlp.NewResult(input, u, rest, err)); err != nil {
			return err
		}
	}
	return nil
}
