package ink

// Palette is the bit-exact RGBA table the compiler recognizes. It is an
// external contract (callers rely on these exact values to paint blueprint
// pixels) and must never be remapped.
var palette = map[Color]Kind{
	RGBA(102, 120, 142, 255): Cross,
	RGBA(83, 85, 114, 255):   Tunnel,
	RGBA(100, 106, 87, 255):  Mesh,

	RGBA(122, 47, 36, 255):  Bus1,
	RGBA(62, 122, 36, 255):  Bus2,
	RGBA(36, 65, 122, 255):  Bus3,
	RGBA(37, 98, 122, 255):  Bus4,
	RGBA(122, 45, 102, 255): Bus5,
	RGBA(122, 112, 36, 255): Bus6,

	RGBA(77, 56, 62, 255): Write,
	RGBA(46, 71, 93, 255): Read,

	RGBA(42, 53, 65, 255):    Trace1,
	RGBA(159, 168, 174, 255): Trace2,
	RGBA(161, 85, 94, 255):   Trace3,
	RGBA(161, 108, 86, 255):  Trace4,
	RGBA(161, 133, 86, 255):  Trace5,
	RGBA(161, 152, 86, 255):  Trace6,
	RGBA(153, 161, 86, 255):  Trace7,
	RGBA(136, 161, 86, 255):  Trace8,
	RGBA(108, 161, 86, 255):  Trace9,
	RGBA(86, 161, 141, 255):  Trace10,
	RGBA(86, 147, 161, 255):  Trace11,
	RGBA(86, 123, 161, 255):  Trace12,
	RGBA(86, 98, 161, 255):   Trace13,
	RGBA(102, 86, 161, 255):  Trace14,
	RGBA(135, 86, 161, 255):  Trace15,
	RGBA(161, 85, 151, 255):  Trace16,

	RGBA(146, 255, 99, 255):  Buffer,
	RGBA(255, 198, 99, 255):  And,
	RGBA(99, 242, 255, 255):  Or,
	RGBA(174, 116, 255, 255): Xor,
	RGBA(255, 98, 138, 255):  Not,
	RGBA(255, 162, 0, 255):   Nand,
	RGBA(48, 217, 255, 255):  Nor,
	RGBA(166, 0, 255, 255):   Xnor,

	RGBA(99, 255, 159, 255): LatchOn,
	RGBA(56, 77, 71, 255):   LatchOff,

	RGBA(255, 0, 65, 255):   Clock,
	RGBA(255, 255, 255, 255): LED,
	RGBA(255, 103, 0, 255):  Timer,
	RGBA(229, 255, 0, 255):  Random,
	RGBA(224, 0, 0, 255):    Break,

	RGBA(255, 0, 191, 255): Wifi0,
	RGBA(255, 0, 175, 255): Wifi1,
	RGBA(255, 0, 159, 255): Wifi2,
	RGBA(255, 0, 143, 255): Wifi3,

	// Annotation and Filler are recognized colors that collapse to Empty
	// for compiler purposes; they are listed for documentation but the
	// lookup below defaults unmatched colors to Empty regardless.
	RGBA(58, 69, 81, 255):   Empty, // Annotation
	RGBA(140, 171, 161, 255): Empty, // Filler
	RGBA(0, 0, 0, 0):        Empty,
}

// Comp maps a Color to its InkKind. Any color not present in the palette
// yields Empty, as do Annotation and Filler, which are listed above with
// Empty as their kind. Comp is pure, total, and side-effect free.
func Comp(c Color) Kind {
	if k, ok := palette[c]; ok {
		return k
	}

	return Empty
}

// descriptions gives the human-readable label used by lint messages and
// GraphViz node labels. All trace-family kinds (Write, Read, Trace1..16)
// share the single label "Trace", matching how the reference compiler
// describes them.
var descriptions = map[Kind]string{
	Empty:  "Empty",
	Cross:  "Cross",
	Tunnel: "Tunnel",
	Mesh:   "Mesh",

	Bus1: "Bus1", Bus2: "Bus2", Bus3: "Bus3",
	Bus4: "Bus4", Bus5: "Bus5", Bus6: "Bus6",

	Write: "Trace", Read: "Trace",
	Trace1: "Trace", Trace2: "Trace", Trace3: "Trace", Trace4: "Trace",
	Trace5: "Trace", Trace6: "Trace", Trace7: "Trace", Trace8: "Trace",
	Trace9: "Trace", Trace10: "Trace", Trace11: "Trace", Trace12: "Trace",
	Trace13: "Trace", Trace14: "Trace", Trace15: "Trace", Trace16: "Trace",

	Buffer: "Buffer", And: "And", Or: "Or", Nor: "Nor", Not: "Not",
	Nand: "Nand", Xor: "Xor", Xnor: "Xnor",

	LatchOn: "LatchOn", LatchOff: "LatchOff",

	Clock: "Clock", LED: "LED", Timer: "Timer", Random: "Random", Break: "Break",

	Wifi0: "Wifi0", Wifi1: "Wifi1", Wifi2: "Wifi2", Wifi3: "Wifi3",
}

// Desc returns the human-readable label for k, or "" if k is not one of
// the recognized kinds.
func Desc(k Kind) string {
	return descriptions[k]
}

// paletteInverse is built once from palette for ColorFor; Annotation,
// Filler and the literal zero color all map to Empty in palette, so Empty
// resolves back to whichever of those three entries iteration visits last
// (unspecified, but always one bit-exact recognized color).
var paletteInverse = func() map[Kind]Color {
	inv := make(map[Kind]Color, len(palette))
	for c, k := range palette {
		inv[k] = c
	}

	return inv
}()

// ColorFor returns the palette color for k and true, or the zero Color and
// false if k has no registered color.
func ColorFor(k Kind) (Color, bool) {
	c, ok := paletteInverse[k]

	return c, ok
}
