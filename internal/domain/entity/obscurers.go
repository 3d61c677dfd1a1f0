package entity

import "math"

// Segment is an axis-aligned boundary edge in body-local pixels.
// X1 <= X2 and Y1 <= Y2.
type Segment struct {
	X1, Y1, X2, Y2 int
}

// Obscurers holds the merged boundary edges of a body's obscuring cells,
// grouped by the direction they face
type Obscurers struct {
	Left   []Segment
	Right  []Segment
	Top    []Segment
	Bottom []Segment
}

// Len returns the total segment count
func (o *Obscurers) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Left) + len(o.Right) + len(o.Top) + len(o.Bottom)
}

// Quad is a shadow polygon: the occluding edge followed by its projection
type Quad struct {
	Points [4]Vec
}

// ExtractObscurers builds the boundary segments of b's obscuring cells.
// Consecutive boundary cells along a column (left/right faces) or a row
// (top/bottom faces) merge into one segment.
func ExtractObscurers(b *TileBody) *Obscurers {
	o := &Obscurers{}
	if b.Size <= 0 || b.Width <= 0 {
		return o
	}

	s := b.Size
	h := b.Height()
	occ := func(col, row int) bool {
		return b.Cell(col, row).Has(FlagObscuring)
	}

	for col := 0; col < b.Width; col++ {
		runs(h, func(row int) bool { return occ(col, row) && !occ(col-1, row) }, func(start, end int) {
			o.Left = append(o.Left, Segment{X1: col * s, Y1: start * s, X2: col * s, Y2: end * s})
		})
		runs(h, func(row int) bool { return occ(col, row) && !occ(col+1, row) }, func(start, end int) {
			x := (col + 1) * s
			o.Right = append(o.Right, Segment{X1: x, Y1: start * s, X2: x, Y2: end * s})
		})
	}

	for row := 0; row < h; row++ {
		runs(b.Width, func(col int) bool { return occ(col, row) && !occ(col, row-1) }, func(start, end int) {
			o.Top = append(o.Top, Segment{X1: start * s, Y1: row * s, X2: end * s, Y2: row * s})
		})
		runs(b.Width, func(col int) bool { return occ(col, row) && !occ(col, row+1) }, func(start, end int) {
			y := (row + 1) * s
			o.Bottom = append(o.Bottom, Segment{X1: start * s, Y1: y, X2: end * s, Y2: y})
		})
	}

	return o
}

// runs calls emit(start, end) for each maximal [start, end) run of edge
func runs(n int, edge func(i int) bool, emit func(start, end int)) {
	start := -1
	for i := 0; i <= n; i++ {
		on := i < n && edge(i)
		if on && start < 0 {
			start = i
		} else if !on && start >= 0 {
			emit(start, i)
			start = -1
		}
	}
}

// ShadowQuads appends the shadow of every segment that faces eye and lies
// within radius of it. ox, oy is the owning body's world origin.
func (o *Obscurers) ShadowQuads(ox, oy int, eye Vec, radius float64, dst []Quad) []Quad {
	if o == nil {
		return dst
	}
	for _, seg := range o.Left {
		if eye.X < float64(ox+seg.X1) {
			dst = appendShadow(dst, seg, ox, oy, eye, radius)
		}
	}
	for _, seg := range o.Right {
		if eye.X > float64(ox+seg.X1) {
			dst = appendShadow(dst, seg, ox, oy, eye, radius)
		}
	}
	for _, seg := range o.Top {
		if eye.Y < float64(oy+seg.Y1) {
			dst = appendShadow(dst, seg, ox, oy, eye, radius)
		}
	}
	for _, seg := range o.Bottom {
		if eye.Y > float64(oy+seg.Y1) {
			dst = appendShadow(dst, seg, ox, oy, eye, radius)
		}
	}
	return dst
}

func appendShadow(dst []Quad, seg Segment, ox, oy int, eye Vec, radius float64) []Quad {
	a := Vec{X: float64(ox + seg.X1), Y: float64(oy + seg.Y1)}
	b := Vec{X: float64(ox + seg.X2), Y: float64(oy + seg.Y2)}

	// Nearest point of an axis-aligned segment is a per-axis clamp
	nx := math.Min(math.Max(eye.X, a.X), b.X)
	ny := math.Min(math.Max(eye.Y, a.Y), b.Y)
	if math.Hypot(nx-eye.X, ny-eye.Y) > radius {
		return dst
	}

	return append(dst, Quad{Points: [4]Vec{
		a,
		b,
		extend(b, eye, radius),
		extend(a, eye, radius),
	}})
}

// extend pushes p away from eye by dist
func extend(p, eye Vec, dist float64) Vec {
	d := p.Sub(eye)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return p
	}
	return p.Add(d.Scale(dist / l))
}
