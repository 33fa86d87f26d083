package ink

// Kind is a tagged variant over the closed set of ink categories a
// blueprint's Logic layer can contain. The numeric encoding packs a handful
// of single-bit role flags (active/bus/trace/wifi/latch) alongside a small
// per-kind ordinal, exactly mirroring the bit layout of the reference
// compiler this package is ported from — downstream code (notably
// Category) depends on that exact layout, not just on the derived
// predicates, so the bit positions are not an implementation detail.
type Kind uint32

// Role bits. busBit/traceBit sit inside catMask (activeBit does not), so two
// kinds whose only bits in catMask are the same role bit are "same-family" for
// merging purposes even when their low-order ordinal differs — this is
// deliberate: any two touching bus (or trace) pixels merge locally
// regardless of color, while the bus/mesh bridging passes are what give
// distinct color runs their separate non-local identity.
const (
	activeBit Kind = 0x10000000
	catMask   Kind = 0x0FFF0000
	busBit    Kind = 0x00010000
	traceBit  Kind = 0x00020000
	wifiBit   Kind = 0x00001000 // not part of catMask: not a category
	latchBit  Kind = 0x00002000 // not part of catMask: not a category
)

// The closed set of ink kinds.
const (
	Empty  Kind = 0
	Cross  Kind = 1
	Tunnel Kind = 2
	Mesh   Kind = 3

	Bus1 Kind = busBit | 4
	Bus2 Kind = busBit | 5
	Bus3 Kind = busBit | 6
	Bus4 Kind = busBit | 7
	Bus5 Kind = busBit | 8
	Bus6 Kind = busBit | 9

	Write Kind = traceBit | 10
	Read  Kind = traceBit | 11

	Trace1  Kind = traceBit | 12
	Trace2  Kind = traceBit | 13
	Trace3  Kind = traceBit | 14
	Trace4  Kind = traceBit | 15
	Trace5  Kind = traceBit | 16
	Trace6  Kind = traceBit | 17
	Trace7  Kind = traceBit | 18
	Trace8  Kind = traceBit | 19
	Trace9  Kind = traceBit | 20
	Trace10 Kind = traceBit | 21
	Trace11 Kind = traceBit | 22
	Trace12 Kind = traceBit | 23
	Trace13 Kind = traceBit | 24
	Trace14 Kind = traceBit | 25
	Trace15 Kind = traceBit | 26
	Trace16 Kind = traceBit | 27

	Buffer Kind = activeBit | 28
	And    Kind = activeBit | 29
	Or     Kind = activeBit | 30
	Nor    Kind = activeBit | 31
	Not    Kind = activeBit | 32
	Nand   Kind = activeBit | 33
	Xor    Kind = activeBit | 34
	Xnor   Kind = activeBit | 35

	LatchOn  Kind = activeBit | latchBit | 36
	LatchOff Kind = activeBit | latchBit | 37

	Clock  Kind = activeBit | 38
	LED    Kind = activeBit | 39
	Timer  Kind = activeBit | 40
	Random Kind = activeBit | 41
	Break  Kind = activeBit | 42

	Wifi0 Kind = activeBit | wifiBit | 43
	Wifi1 Kind = activeBit | wifiBit | 44
	Wifi2 Kind = activeBit | wifiBit | 45
	Wifi3 Kind = activeBit | wifiBit | 46
)

// IsEmpty reports whether k is the Empty kind.
func IsEmpty(k Kind) bool { return k == Empty }

// IsCross reports whether k is the Cross bridge kind.
func IsCross(k Kind) bool { return k == Cross }

// IsTunnel reports whether k is the Tunnel kind.
func IsTunnel(k Kind) bool { return k == Tunnel }

// IsMesh reports whether k is the Mesh kind.
func IsMesh(k Kind) bool { return k == Mesh }

// IsBus reports whether k carries the bus role bit (Bus1..Bus6).
func IsBus(k Kind) bool { return k&busBit != 0 }

// IsTrace reports whether k carries the trace role bit (Write, Read, Trace1..16).
func IsTrace(k Kind) bool { return k&traceBit != 0 }

// IsWifi reports whether k carries the wifi role bit (Wifi0..Wifi3).
func IsWifi(k Kind) bool { return k&wifiBit != 0 }

// IsLatch reports whether k carries the latch role bit (LatchOn, LatchOff).
func IsLatch(k Kind) bool { return k&latchBit != 0 }

// IsRead reports whether k is exactly the Read kind.
func IsRead(k Kind) bool { return k == Read }

// IsWrite reports whether k is exactly the Write kind.
func IsWrite(k Kind) bool { return k == Write }

// IsLED reports whether k is exactly the LED kind.
func IsLED(k Kind) bool { return k == LED }

// IsActive reports whether k carries the active role bit: it drives or
// reads a signal as part of a component (gates, latches, clock, LED,
// timer, random, break, wifi).
func IsActive(k Kind) bool { return k&activeBit != 0 }

// Category extracts the non-zero 12-bit family id shared by kinds that
// merge on mere adjacency regardless of their specific color/ordinal.
// A zero category means k has no such family (Empty, Cross, Tunnel, Mesh,
// and every active gate/latch/peripheral kind are each their own family).
func Category(k Kind) Kind { return k & catMask }

// SameFamily reports whether a and b merge under the local adjacency rule:
// identical kind, or both carry an equal, non-zero Category.
func SameFamily(a, b Kind) bool {
	if a == b {
		return true
	}
	ca, cb := Category(a), Category(b)

	return ca != 0 && ca == cb
}

// WirelessChannel returns the 0..3 channel index for a Wifi kind, or -1 if
// k is not a Wifi kind.
func WirelessChannel(k Kind) int {
	switch k {
	case Wifi0:
		return 0
	case Wifi1:
		return 1
	case Wifi2:
		return 2
	case Wifi3:
		return 3
	default:
		return -1
	}
}
