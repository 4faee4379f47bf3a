// disklog writes records to rotating log files from the command line.
//
// Usage:
//
//	disklog [global options] <command> [command options]
//
// Commands:
//
//	pipe     append each stdin line as one record
//	stress   submit records from many goroutines and report counters
//
// Examples:
//
//	tail -f app.out | disklog --set directory=/var/log/app pipe --tag app
//	disklog --config disklog.toml stress --workers 64 --records 1000
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/disklog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "disklog: %v\n", err)
		os.Exit(1)
	}
}

func createApp() *cli.Command {
	return &cli.Command{
		Name:  "disklog",
		Usage: "append records to size-rotated log files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with a [disklog] table",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "configuration override as key=value, repeatable",
			},
		},
		Commands: []*cli.Command{
			createPipeCommand(),
			createStressCommand(),
		},
	}
}

// loadConfig resolves defaults, the optional file and the overrides, in that order
func loadConfig(cmd *cli.Command) (*disklog.Config, error) {
	cfg := disklog.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		fileCfg, err := disklog.NewConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyOverride(cmd.StringSlice("set")...); err != nil {
		return nil, err
	}
	return cfg, nil
}
