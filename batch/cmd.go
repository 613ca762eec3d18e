package batch

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"github.com/NotActuallyHim/ImageEditor/config"
	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/imgio"
	"github.com/NotActuallyHim/ImageEditor/parallel"
	"github.com/NotActuallyHim/ImageEditor/render"
	"github.com/NotActuallyHim/ImageEditor/transform"
)

type CLICmd struct {
	Scan      string   `help:"Source folder to scan" default:"."`
	Dest      string   `help:"Destination folder for filtered pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"filtered"`
	Filter    []string `help:"Filters to apply in order, see 'apply --help'" short:"f"`
	Frame     bool     `help:"Write each image with its histogram panel" default:"false"`
	MaxWidth  int      `help:"Shrink wider images to this width before filtering" group:"resize"`
	MaxHeight int      `help:"Shrink taller images to this height before filtering" group:"resize"`
	Format    string   `help:"Output format. If prefixed with 'unsup:' will convert only formats that cannot be written" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	switch {
	case c.MaxWidth < 0:
		return fmt.Errorf("invalid max width: %d", c.MaxWidth)
	case c.MaxHeight < 0:
		return fmt.Errorf("invalid max height: %d", c.MaxHeight)
	}

	for _, spec := range c.Filter {
		if _, err := transform.ParseFilter(spec); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, conf config.Config) error {
	filters, err := conf.ParseFilters(c.Filter)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))
				if err := c.process(logger, fileName, filters, conf.Layout); err != nil {
					errCount.Add(1)
					logger.Error("could not process image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, fileName string, filters []transform.Filter, layout render.Layout) error {
	g, imgType, err := imgio.Load(filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}

	if c.MaxWidth > 0 || c.MaxHeight > 0 {
		if g, err = shrink(logger, g, c.MaxWidth, c.MaxHeight); err != nil {
			return fmt.Errorf("could not resize: %w", err)
		}
	}

	if g, err = transform.Chain(g, filters...); err != nil {
		return err
	}

	var img image.Image = g.Image()
	if c.Frame {
		img = render.Frame(g, histogram.Compute(g), layout)
	}

	outType := imgio.OutputFormat(imgType, c.Format)
	destName := imgio.DestName(fileName, outType)
	if err = imgio.Save(img, outType, c.Dest, destName); err != nil {
		return err
	}
	logger.Info("saved", "to", filepath.Join(c.Dest, destName), "filters", len(filters))
	return nil
}
