package pixel

import "math"

// Sample is one 8-bit, non-premultiplied RGBA value.
type Sample struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque sample.
func Opaque(r, g, b uint8) Sample {
	return Sample{R: r, G: g, B: b, A: 0xFF}
}

// RGBA implements color.Color. Channels are premultiplied by alpha as the
// interface requires.
func (s Sample) RGBA() (uint32, uint32, uint32, uint32) {
	a := uint32(s.A)
	r := uint32(s.R) * a / 0xFF
	g := uint32(s.G) * a / 0xFF
	b := uint32(s.B) * a / 0xFF
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}

func Clamp(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// ClampFloat rounds half away from zero, then clamps to [0, 255].
func ClampFloat(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(int(math.Round(max(min(v, 255), 0))))
}

// TruncFloat truncates toward zero, then clamps to [0, 255].
func TruncFloat(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(int(max(min(v, 255), 0)))
}
