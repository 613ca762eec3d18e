package apply

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/NotActuallyHim/ImageEditor/config"
	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/imgio"
	"github.com/NotActuallyHim/ImageEditor/render"
	"github.com/NotActuallyHim/ImageEditor/transform"
)

type CLICmd struct {
	In     string   `arg:"" help:"Source image" type:"existingfile"`
	Out    string   `help:"Destination image, format taken from the extension" required:""`
	Filter []string `help:"Filters to apply in order: rotate, grayscale, flip-horizontal, flip-vertical, blur[:radius], contrast[:factor], vintage, sepia" short:"f"`
	Frame  bool     `help:"Write the image with its histogram panel" default:"false"`
}

func (c *CLICmd) Validate() error {
	if _, err := imgio.FormatFromPath(c.Out); err != nil {
		return fmt.Errorf("invalid output %q: %w", c.Out, err)
	}
	for _, spec := range c.Filter {
		if _, err := transform.ParseFilter(spec); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLICmd) Run(conf config.Config) error {
	logger := slog.Default().With("file", c.In)

	filters, err := conf.ParseFilters(c.Filter)
	if err != nil {
		return err
	}

	g, format, err := imgio.Load(c.In)
	if err != nil {
		return err
	}
	logger.Info("loaded image", "format", format, "width", g.Width(), "height", g.Height())

	for _, f := range filters {
		logger.Info("applying", "filter", f)
		if g, err = f.Apply(g); err != nil {
			return fmt.Errorf("could not apply %s to %q: %w", f, c.In, err)
		}
	}

	var img image.Image = g.Image()
	if c.Frame {
		img = render.Frame(g, histogram.Compute(g), conf.Layout)
	}
	if err := imgio.SaveFile(img, c.Out); err != nil {
		return err
	}

	logger.Info("saved", "to", c.Out, "filters", len(filters))
	return nil
}

type HistogramCmd struct {
	In    string `arg:"" help:"Source image" type:"existingfile"`
	Width int    `help:"Width of the longest bar in characters" default:"60"`
}

func (c *HistogramCmd) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("invalid bar width: %d", c.Width)
	}
	return nil
}

func (c *HistogramCmd) Run(out io.Writer) error {
	g, _, err := imgio.Load(c.In)
	if err != nil {
		return err
	}
	return render.WriteHistogram(out, histogram.Compute(g), c.Width)
}
