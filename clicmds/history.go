package clicmds

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/urlp/store"
)

// HistoryFlags configures the history command
func HistoryFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		datadirFlag(),
		&cli.IntFlag{
			Name:  "limit",
			Usage: "max entries to print, 0 for all",
			Value: 0,
		},
		&cli.Uint64Flag{
			Name:  "id",
			Usage: "print a single entry",
			Value: 0,
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "entry output format when --id is given: debug, json or dot",
			Value: "debug",
		},
	}
}

// History lists saved parse results
func History(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}

	history := store.NewHistory(cfg.DataPath)
	if err := history.Init(); err != nil {
		log.Error().Err(err).Msg("failed to init history store")
		return err
	}
	defer history.Close()

	w := cliCtx.App.Writer
	if id := cliCtx.Uint64("id"); id != 0 {
		entry, err := history.Get(id)
		if err != nil {
			return err
		}
		return writeResult(w, cfg.Format, entry.Result())
	}

	entries, err := history.List(cliCtx.Int("limit"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Had %d entries\n", len(entries))
	for _, entry := range entries {
		status := "ok"
		if entry.Error != nil {
			status = "err: " + entry.Error.Message
		}
		fmt.Fprintf(w, "%d %s %s (%s)\n", entry.ID, entry.Time.Format("2006-01-02T15:04:05"), entry.Input, status)
	}
	return nil
}
