package clicmds

import "github.com/urfave/cli/v2"

// Commands the urlp app runs
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:    "parse",
			Aliases: []string{"p"},
			Usage:   "parse a URI (defaults to a demonstration URI)",
			Action:  Parse,
			Flags:   ParseFlags(),
		},
		{
			Name:    "serve",
			Aliases: nil,
			Usage:   "serve the parser over http",
			Action:  Serve,
			Flags:   ServeFlags(),
		},
		{
			Name:    "gen",
			Aliases: []string{"g"},
			Usage:   "generate sample URIs",
			Action:  Gen,
			Flags:   GenFlags(),
		},
		{
			Name:    "history",
			Aliases: nil,
			Usage:   "list saved parse results",
			Action:  History,
			Flags:   HistoryFlags(),
		},
	}
}
