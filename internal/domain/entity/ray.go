package entity

import "math"

// RayCrossing is where a segment first enters a ray-blocking cell
type RayCrossing struct {
	Fraction float64 // 0..1 along the segment
	Axis     Axis    // grid line family crossed
	Point    Vec     // world-space point on the crossed face
}

// blocksRay reports whether the cell stops line of sight
func (b *TileBody) blocksRay(col, row int) bool {
	return b.Cell(col, row).Has(FlagSolid | FlagBlocking)
}

// RayFraction walks the segment origin->dest cell by cell (DDA) and returns
// the first crossing into a blocking cell. A segment that starts inside a
// blocking cell never crosses a surface and reports no hit.
func (b *TileBody) RayFraction(origin, dest Vec) (RayCrossing, bool) {
	if b.Size <= 0 || b.Width <= 0 {
		return RayCrossing{}, false
	}

	size := float64(b.Size)
	lx := (origin.X - float64(b.X)) / size
	ly := (origin.Y - float64(b.Y)) / size
	dx := (dest.X - origin.X) / size
	dy := (dest.Y - origin.Y) / size

	cx := int(math.Floor(lx))
	cy := int(math.Floor(ly))
	if b.blocksRay(cx, cy) {
		return RayCrossing{}, false
	}

	stepX, tMaxX, tDeltaX := ddaAxis(lx, dx)
	stepY, tMaxY, tDeltaY := ddaAxis(ly, dy)

	for {
		var t float64
		var axis Axis
		// X wins exact corner ties, matching the resolver's axis order
		if tMaxX <= tMaxY {
			t = tMaxX
			if t > 1 {
				return RayCrossing{}, false
			}
			cx += stepX
			tMaxX += tDeltaX
			axis = AxisX
		} else {
			t = tMaxY
			if t > 1 {
				return RayCrossing{}, false
			}
			cy += stepY
			tMaxY += tDeltaY
			axis = AxisY
		}

		if !b.blocksRay(cx, cy) {
			continue
		}

		hit := RayCrossing{Fraction: t, Axis: axis}
		if axis == AxisX {
			face := cx
			if stepX < 0 {
				face = cx + 1
			}
			hit.Point = Vec{
				X: float64(b.X + face*b.Size),
				Y: origin.Y + t*(dest.Y-origin.Y),
			}
		} else {
			face := cy
			if stepY < 0 {
				face = cy + 1
			}
			hit.Point = Vec{
				X: origin.X + t*(dest.X-origin.X),
				Y: float64(b.Y + face*b.Size),
			}
		}
		return hit, true
	}
}

// ddaAxis returns the cell step, the parametric distance to the first grid
// line and the distance between grid lines along one axis
func ddaAxis(l, d float64) (step int, tMax, tDelta float64) {
	switch {
	case d > 0:
		return 1, (math.Floor(l) + 1 - l) / d, 1 / d
	case d < 0:
		return -1, (l - math.Floor(l)) / -d, 1 / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}
