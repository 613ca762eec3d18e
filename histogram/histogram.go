// Package histogram bins grid samples by brightness and scales the counts to
// bar heights for display.
package histogram

import (
	"math"

	"github.com/NotActuallyHim/ImageEditor/pixel"
)

// Bins is the number of brightness buckets, 0 through 254.
const Bins = 255

const (
	weightR = 0.21
	weightG = 0.72
	weightB = 0.07
)

// Histogram holds the number of samples that fell in each brightness bin.
type Histogram [Bins]int

// Bin returns the brightness bucket of s.
func Bin(s pixel.Sample) int {
	v := math.Round(float64(s.R)*weightR + float64(s.G)*weightG + float64(s.B)*weightB)
	return min(max(int(v), 0), Bins-1)
}

// Compute counts every sample of g. The counts add up to g's area.
func Compute(g *pixel.Grid) *Histogram {
	h := &Histogram{}
	if g == nil {
		return h
	}
	for _, row := range g.Rows {
		for _, s := range row {
			h[Bin(s)]++
		}
	}
	return h
}

func (h *Histogram) Total() int {
	var n int
	for _, c := range h {
		n += c
	}
	return n
}

func (h *Histogram) Max() int {
	var m int
	for _, c := range h {
		m = max(m, c)
	}
	return m
}

// BarHeight scales count against maxCount to a bar of at most
// displayHeight pixels, rounding down. A zero maxCount yields 0.
func BarHeight(maxCount, count, displayHeight int) int {
	if maxCount <= 0 {
		return 0
	}
	return int(float64(count) / float64(maxCount) * float64(displayHeight))
}

// Bars returns the bar height of every bin for a display displayHeight
// pixels tall.
func (h *Histogram) Bars(displayHeight int) [Bins]int {
	var bars [Bins]int
	m := h.Max()
	for i, c := range h {
		bars[i] = BarHeight(m, c, displayHeight)
	}
	return bars
}
