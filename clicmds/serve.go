package clicmds

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/urlp/api"
	"gitlab.com/urlp/parsers"
	"gitlab.com/urlp/store"
)

// ServeFlags configures the serve command
func ServeFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		datadirFlag(),
		debugFlag(),
		&cli.StringFlag{
			Name:  "listen",
			Usage: "address to listen on",
			Value: ":8080",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "record every parse in the history store",
			Value: false,
		},
	}
}

// Serve the parse API until interrupted
func Serve(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	var history *store.History
	if cliCtx.Bool("save") {
		history = store.NewHistory(cfg.DataPath)
		if err := history.Init(); err != nil {
			log.Error().Err(err).Msg("failed to init history store")
			return err
		}
		defer history.Close()
	}

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: api.New(parsers.New(log.Logger), history).Router(),
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Ctrl-C Pressed, shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Str("listen", cfg.Listen).Msg("Starting urlp server")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
