package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todowidget/internal/config"
	"github.com/idilsaglam/todowidget/internal/todolist"
	"github.com/idilsaglam/todowidget/internal/tui"
	"github.com/idilsaglam/todowidget/internal/ui"
	"github.com/idilsaglam/todowidget/internal/view"
)

// Options carries what the root command resolved before dispatch.
type Options struct {
	Config *config.Config
	Logger *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		return doRun(ctx, opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "run":
		if len(a) != 0 {
			ui.Fail("usage: todo run")
			return 2
		}
		return doRun(ctx, opt)

	case "print":
		return doPrint(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny to-do list widget

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  run                Open the interactive list (default)
  print <title...>   Add each title and print the resulting list
  help               Show this help

Flags:
  -sort id|alpha     Order entries by insertion or alphabetically
  -theme NAME        classic, neon or mono
  -locale TAG        Locale for alphabetical order (e.g. en, sv, de)
  -seed TITLE        Entry added at startup (default "Sample TODO")
  -no-seed           Start empty
  -config PATH       TOML config file
  -log-file PATH     Write logs to PATH
  -log-level LEVEL   debug, info, warn or error
  -no-color          Disable colors

Examples:
  todo
  todo -sort alpha print banana apple
`)
}

// -------------- subcommand impls ----------------

func doRun(ctx context.Context, opt Options) int {
	app, err := tui.NewApp(opt.Config, opt.Logger)
	if err != nil {
		ui.Fail("setup: " + err.Error())
		return 1
	}
	if err := tui.Run(ctx, app); err != nil {
		opt.Logger.Error("tui exited", "err", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// doPrint feeds titles through the list in order and prints the result once.
// Nothing is seeded; blank titles are skipped like an empty submission.
func doPrint(titles []string, opt Options) int {
	if len(titles) == 0 {
		ui.Fail("usage: todo print <title...>")
		return 2
	}
	tag, err := opt.Config.Language()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	v := view.New(opt.Config.EmptyText)
	l := todolist.New(v,
		todolist.WithSortOrder(opt.Config.Sort),
		todolist.WithLocale(tag),
		todolist.WithLogger(opt.Logger),
	)
	for _, t := range titles {
		l.Add(t)
	}
	fmt.Println(renderPanel(l, v))
	return 0
}

func renderPanel(l *todolist.List, v *view.List) string {
	t := ui.Current()
	header := fmt.Sprintf("%s   %s %d  %s %s",
		t.Title.Render("Todos"),
		t.Accent.Render("Total"), l.Len(),
		t.Pending.Render("Sort"), l.SortOrder(),
	)
	return ui.Panel([]string{header, "", v.Render(-1, false)})
}
