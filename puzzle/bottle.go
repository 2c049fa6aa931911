package puzzle

import "strings"

// Layer is one slot of a bottle: Empty or a color identifier.
type Layer byte

// Empty is the zero Layer.
const Empty Layer = 0

// EmptySymbol is the wire symbol of an empty layer.
const EmptySymbol = 'e'

// Symbol returns the wire byte of l.
func (l Layer) Symbol() byte {
	if l == Empty {
		return EmptySymbol
	}
	return byte(l)
}

// Bottle is a fixed-capacity stack of colored layers. Free capacity is
// implicit, so an empty layer can never sit under a colored one.
// Bottles are values: Pour returns new bottles and never shares a
// modified backing array with its inputs.
type Bottle struct {
	liquid   []Layer // bottom → surface
	capacity int
}

// NewBottle builds a bottle of the given capacity holding layers listed
// surface first, the wire order. Fewer layers than capacity leave the
// remainder free. It panics if there are more layers than capacity or if a
// layer is Empty; use Parse for untrusted input.
func NewBottle(capacity int, surfaceFirst ...Layer) Bottle {
	if len(surfaceFirst) > capacity {
		panic("puzzle: more layers than capacity")
	}
	b := Bottle{liquid: make([]Layer, len(surfaceFirst)), capacity: capacity}
	for i, l := range surfaceFirst {
		if l == Empty {
			panic("puzzle: NewBottle with an Empty layer")
		}
		b.liquid[len(surfaceFirst)-1-i] = l
	}
	return b
}

// Capacity returns the number of slots.
func (b Bottle) Capacity() int { return b.capacity }

// Filled returns the number of colored layers.
func (b Bottle) Filled() int { return len(b.liquid) }

// Free returns the number of empty layers.
func (b Bottle) Free() int { return b.capacity - len(b.liquid) }

// IsEmpty reports whether the bottle holds no liquid.
func (b Bottle) IsEmpty() bool { return len(b.liquid) == 0 }

// Top returns the surface layer, or Empty for an empty bottle.
func (b Bottle) Top() Layer {
	if len(b.liquid) == 0 {
		return Empty
	}
	return b.liquid[len(b.liquid)-1]
}

// Run returns how many consecutive layers at the surface share Top's color.
func (b Bottle) Run() int {
	top := b.Top()
	n := 0
	for i := len(b.liquid) - 1; i >= 0 && b.liquid[i] == top; i-- {
		n++
	}
	return n
}

// Uniform reports whether every layer equals the surface color or is empty.
func (b Bottle) Uniform() bool {
	return b.Run() == len(b.liquid)
}

// Slot returns the layer at height k, 0 being the bottom; slots above the
// liquid are Empty.
func (b Bottle) Slot(k int) Layer {
	if k < 0 || k >= len(b.liquid) {
		return Empty
	}
	return b.liquid[k]
}

// Layers returns all slots surface first, free capacity as trailing Empty.
func (b Bottle) Layers() []Layer {
	out := make([]Layer, b.capacity)
	for i := range b.liquid {
		out[i] = b.liquid[len(b.liquid)-1-i]
	}
	return out
}

// String returns the wire encoding of b.
func (b Bottle) String() string {
	var sb strings.Builder
	sb.Grow(b.capacity)
	for _, l := range b.Layers() {
		sb.WriteByte(l.Symbol())
	}
	return sb.String()
}

// CanPour reports whether from may pour into to: from must hold liquid and
// to must be empty or show the same surface color. The free capacity of to
// is not consulted.
func CanPour(from, to Bottle) bool {
	if from.IsEmpty() {
		return false
	}
	return to.IsEmpty() || to.Top() == from.Top()
}

// Pour moves min(to.Free(), from.Run()) layers of from's surface color onto
// to and returns the updated bottles with the number of layers moved.
// Callers check CanPour first.
func Pour(from, to Bottle) (Bottle, Bottle, int) {
	c := from.Top()
	moved := min(to.Free(), from.Run())
	if moved == 0 {
		return from, to, 0
	}

	nf := Bottle{capacity: from.capacity, liquid: make([]Layer, len(from.liquid)-moved)}
	copy(nf.liquid, from.liquid)

	nt := Bottle{capacity: to.capacity, liquid: make([]Layer, len(to.liquid), len(to.liquid)+moved)}
	copy(nt.liquid, to.liquid)
	for i := 0; i < moved; i++ {
		nt.liquid = append(nt.liquid, c)
	}
	return nf, nt, moved
}
