package entity

// TileFlag is the per-cell occupancy and visibility bit set of a tile body
type TileFlag uint8

const (
	FlagSolid     TileFlag = 1 << iota // collides with actors
	FlagVisible                        // drawn by the renderer
	FlagBlocking                       // blocks line of sight
	FlagObscuring                      // casts shadows for the eye
)

// CellEmpty is an unoccupied cell
const CellEmpty TileFlag = 0

// CellSolid is a regular wall cell
const CellSolid = FlagSolid | FlagVisible | FlagBlocking | FlagObscuring

// Has reports whether any bit of mask is set
func (f TileFlag) Has(mask TileFlag) bool {
	return f&mask != 0
}

// TileBody is one contiguous chunk of level geometry.
// Occupancy is fixed at load; only X and Y change at runtime.
type TileBody struct {
	X, Y  int // world origin (pixels)
	Size  int // tile edge length (pixels)
	Width int // tiles per row
	Data  []TileFlag

	// Obscurers caches the boundary segments of obscuring cells.
	// Nil until ExtractObscurers has been run for this body.
	Obscurers *Obscurers
}

// NewTileBody creates a tile body with row-major cell data
func NewTileBody(x, y, size, width int, data []TileFlag) *TileBody {
	return &TileBody{
		X:     x,
		Y:     y,
		Size:  size,
		Width: width,
		Data:  data,
	}
}

// ParseRows converts text rows into row-major cell data.
// Short rows are padded with empty cells; unmapped glyphs are empty.
func ParseRows(rows []string, mapping map[rune]TileFlag) (width int, data []TileFlag) {
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	data = make([]TileFlag, width*len(rows))
	for y, row := range rows {
		for x, ch := range []rune(row) {
			data[y*width+x] = mapping[ch]
		}
	}
	return width, data
}

// Height returns the number of rows
func (b *TileBody) Height() int {
	if b.Width <= 0 {
		return 0
	}
	return len(b.Data) / b.Width
}

// Bounds returns the body's world-space extent
func (b *TileBody) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width * b.Size, H: b.Height() * b.Size}
}

// Cell returns the flags at tile coordinates.
// Anything outside the authored extent is empty.
func (b *TileBody) Cell(col, row int) TileFlag {
	if col < 0 || col >= b.Width || row < 0 || row >= b.Height() {
		return CellEmpty
	}
	return b.Data[row*b.Width+col]
}

// Move translates the body by (dx, dy) pixels
func (b *TileBody) Move(dx, dy int) {
	b.X += dx
	b.Y += dy
}

// TileRange returns the inclusive tile index range covered by r,
// relative to the body origin. The range is not clamped.
func (b *TileBody) TileRange(r Rect) (c0, r0, c1, r1 int) {
	c0 = FloorDiv(r.X-b.X, b.Size)
	r0 = FloorDiv(r.Y-b.Y, b.Size)
	c1 = FloorDiv(r.X+r.W-1-b.X, b.Size)
	r1 = FloorDiv(r.Y+r.H-1-b.Y, b.Size)
	return c0, r0, c1, r1
}

// Collides reports whether r overlaps any solid cell
func (b *TileBody) Collides(r Rect) bool {
	return b.overlaps(r, FlagSolid)
}

func (b *TileBody) overlaps(r Rect, mask TileFlag) bool {
	if r.Empty() || b.Size <= 0 || b.Width <= 0 {
		return false
	}

	c0, r0, c1, r1 := b.TileRange(r)

	// Clamp to the authored extent; cells outside it are empty
	c0 = max(c0, 0)
	r0 = max(r0, 0)
	c1 = min(c1, b.Width-1)
	r1 = min(r1, b.Height()-1)

	for row := r0; row <= r1; row++ {
		base := row * b.Width
		for col := c0; col <= c1; col++ {
			if b.Data[base+col].Has(mask) {
				return true
			}
		}
	}
	return false
}
