package ink

// Color is an 8-bit RGBA quadruple. Equality between two Colors is
// bit-exact struct equality — no rounding, no color-space conversion.
type Color struct {
	R, G, B, A uint8
}

// RGBA constructs a Color from four 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}
