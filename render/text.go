package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/NotActuallyHim/ImageEditor/histogram"
)

// WriteHistogram prints one line per non-empty bin: the bin, its count and
// a bar of up to width characters scaled like the on-screen bars.
func WriteHistogram(w io.Writer, h *histogram.Histogram, width int) error {
	m := h.Max()
	if _, err := fmt.Fprintf(w, "samples: %s, peak: %s\n", humanize.Comma(int64(h.Total())), humanize.Comma(int64(m))); err != nil {
		return err
	}

	for bin, count := range h {
		if count == 0 {
			continue
		}
		bar := strings.Repeat("#", histogram.BarHeight(m, count, width))
		if _, err := fmt.Fprintf(w, "%3d %10s %s\n", bin, humanize.Comma(int64(count)), bar); err != nil {
			return err
		}
	}
	return nil
}

// Peak returns the fullest bin and its count. Ties go to the darker bin.
func Peak(h *histogram.Histogram) (int, int) {
	bin, count := 0, h[0]
	for i, c := range h {
		if c > count {
			bin, count = i, c
		}
	}
	return bin, count
}
