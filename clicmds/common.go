package clicmds

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/urlp/urlp"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: "toml config to use",
		Value: "",
	}
}

func datadirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "datadir",
		Usage: "history data directory",
		Value: "",
	}
}

func debugFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "debug",
		Usage: "trace each grammar stage",
		Value: false,
	}
}

// loadConfig from --config if given, flags override file values
func loadConfig(cliCtx *cli.Context) (*urlp.Config, error) {
	cfg := urlp.DefaultConfig()

	if path := cliCtx.String("config"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening config")
		}
		defer f.Close()

		if cfg, err = urlp.LoadConfig(f); err != nil {
			return nil, err
		}
	}

	if cliCtx.IsSet("datadir") {
		cfg.DataPath = cliCtx.String("datadir")
	}
	if cliCtx.IsSet("format") {
		cfg.Format = cliCtx.String("format")
	}
	if cliCtx.IsSet("listen") {
		cfg.Listen = cliCtx.String("listen")
	}
	if cliCtx.Bool("debug") {
		cfg.Debug = true
	}
	if cliCtx.IsSet("seed") {
		cfg.GenSeed = cliCtx.Int64("seed")
	}
	if cliCtx.IsSet("count") {
		cfg.GenCount = cliCtx.Int("count")
	}

	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg *urlp.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
