package edit

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/NotActuallyHim/ImageEditor/config"
	"github.com/NotActuallyHim/ImageEditor/editor"
	"github.com/NotActuallyHim/ImageEditor/histogram"
	"github.com/NotActuallyHim/ImageEditor/imgio"
	"github.com/NotActuallyHim/ImageEditor/pixel"
	"github.com/NotActuallyHim/ImageEditor/render"
)

// Keys handled by the command itself; they take precedence over bindings.
const (
	keyQuit  = 'q'
	keyReset = 'r'
	keySave  = 's'
	keyHelp  = '?'
)

type CLICmd struct {
	In      string `arg:"" help:"Image to edit" type:"existingfile"`
	Preview string `help:"Frame (image and histogram) rewritten after every change" default:"preview.png"`
	Out     string `help:"Destination of the current image when saving with 's'" default:"edited.png"`
	Scale   int    `help:"Preview magnification" default:"1"`
}

func (c *CLICmd) Validate() error {
	if c.Scale < 1 {
		return fmt.Errorf("invalid preview scale: %d", c.Scale)
	}
	if _, err := imgio.FormatFromPath(c.Preview); err != nil {
		return fmt.Errorf("invalid preview file %q: %w", c.Preview, err)
	}
	if _, err := imgio.FormatFromPath(c.Out); err != nil {
		return fmt.Errorf("invalid output file %q: %w", c.Out, err)
	}
	return nil
}

// Run reads keys from in, one or more per line, until 'q' or end of input.
// Status lines go to out.
func (c *CLICmd) Run(conf config.Config, in io.Reader, out io.Writer) error {
	logger := slog.Default().With("file", c.In)

	g, format, err := imgio.Load(c.In)
	if err != nil {
		return err
	}
	logger.Info("loaded image", "format", format, "width", g.Width(), "height", g.Height())

	keys, err := conf.Bindings()
	if err != nil {
		return err
	}

	sess, err := editor.New(g, editor.WithKeys(keys), editor.WithRedraw(c.redrawer(logger, conf.Layout, out)))
	if err != nil {
		return err
	}

	if err = writeHelp(out, sess); err != nil {
		return err
	}
	if err = sess.Redraw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		for _, key := range scanner.Text() {
			switch key {
			case ' ', '\t', '\r':
				continue
			case keyQuit:
				logger.Info("quitting", "applied", sess.Applied())
				return nil
			case keyReset:
				logger.Info("resetting")
				err = sess.Reset()
			case keySave:
				err = c.save(logger, sess.Current())
			case keyHelp:
				err = writeHelp(out, sess)
			default:
				var ok bool
				if ok, err = sess.Press(key); err == nil && !ok {
					_, err = fmt.Fprintf(out, "key %q is not bound, '?' lists the bindings\n", key)
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func (c *CLICmd) redrawer(logger *slog.Logger, layout render.Layout, out io.Writer) editor.RedrawFunc {
	return func(g *pixel.Grid, h *histogram.Histogram) error {
		frame := render.Scale(render.Frame(g, h, layout), c.Scale)
		if err := imgio.SaveFile(frame, c.Preview); err != nil {
			return fmt.Errorf("could not write preview: %w", err)
		}

		bin, count := render.Peak(h)
		logger.Debug("redrawn", "preview", c.Preview, "width", g.Width(), "height", g.Height())
		_, err := fmt.Fprintf(out, "%dx%d, brightness peak at %d (%d samples)\n", g.Width(), g.Height(), bin, count)
		return err
	}
}

func (c *CLICmd) save(logger *slog.Logger, g *pixel.Grid) error {
	if err := imgio.SaveFile(g.Image(), c.Out); err != nil {
		return fmt.Errorf("could not save %q: %w", c.Out, err)
	}
	logger.Info("saved", "to", c.Out)
	return nil
}

func writeHelp(w io.Writer, sess *editor.Session) error {
	bindings := sess.Keys()
	for _, k := range slices.Sorted(maps.Keys(bindings)) {
		if _, err := fmt.Fprintf(w, "%c  %s\n", k, bindings[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%c  reset\n%c  save\n%c  help\n%c  quit\n", keyReset, keySave, keyHelp, keyQuit)
	return err
}
