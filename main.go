package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/NotActuallyHim/ImageEditor/apply"
	"github.com/NotActuallyHim/ImageEditor/batch"
	"github.com/NotActuallyHim/ImageEditor/config"
	"github.com/NotActuallyHim/ImageEditor/edit"
	"github.com/NotActuallyHim/ImageEditor/parallel"
)

type CLI struct {
	Config  string `help:"Configuration file. Defaults to imgedit.{yaml,toml,json} in the working directory or ~/.config/imgedit" type:"path"`
	Workers int    `help:"Number of parallel workers. 0 uses the configured value, then the number of CPUs" default:"0"`
	Verbose bool   `help:"Log debug messages" short:"v"`

	Apply     apply.CLICmd       `cmd:"" help:"Apply filters to one image"`
	Histogram apply.HistogramCmd `cmd:"" help:"Print the brightness histogram of an image"`
	Batch     batch.CLICmd       `cmd:"" help:"Apply filters to every image in a folder"`
	Edit      edit.CLICmd        `cmd:"" help:"Edit an image with one key per filter, rewriting a preview after each change"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("imgedit"),
		kong.Description("Apply pixel filters to images and inspect their brightness histogram."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	conf, err := config.Load(cli.Config)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	workers := cli.Workers
	if workers == 0 {
		workers = conf.Workers
	}
	pool := parallel.Start(workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	kctx.BindTo(os.Stdin, (*io.Reader)(nil))
	kctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err = kctx.Run(conf, pool.Do, pool.Wait)
	pool.Wait(true)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
