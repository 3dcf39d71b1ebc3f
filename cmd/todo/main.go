package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/todowidget/internal/cli"
	"github.com/idilsaglam/todowidget/internal/config"
	"github.com/idilsaglam/todowidget/internal/logging"
	"github.com/idilsaglam/todowidget/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = cli.PrintHelp
	cfg, args, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		ui.Fail("config: " + err.Error())
		return 2
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		ui.Fail(err.Error())
		return 2
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closer.Close()
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Run(ctx, args, cli.Options{Config: cfg, Logger: logger})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
