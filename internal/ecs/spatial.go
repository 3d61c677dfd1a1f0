package ecs

import (
	"slices"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

// DefaultBucketSize is the bucket edge length in pixels.
// Four 16px tiles per bucket keeps a typical actor query to one or two
// buckets while a screen-wide ray touches only a handful.
const DefaultBucketSize = 64

// BucketKey identifies a bucket cell
type BucketKey struct {
	X, Y int
}

// SpatialIndex is a uniform bucket grid mapping world regions to the
// entities overlapping them. It stores membership only: callers remove an
// entity at its old rect and insert it at the new one whenever it moves.
type SpatialIndex struct {
	bucketSize int
	buckets    map[BucketKey][]EntityID
}

// NewSpatialIndex creates an index; non-positive sizes use DefaultBucketSize
func NewSpatialIndex(bucketSize int) *SpatialIndex {
	if bucketSize <= 0 {
		bucketSize = DefaultBucketSize
	}
	return &SpatialIndex{
		bucketSize: bucketSize,
		buckets:    make(map[BucketKey][]EntityID),
	}
}

// BucketSize returns the bucket edge length
func (idx *SpatialIndex) BucketSize() int {
	return idx.bucketSize
}

// Len returns the number of non-empty buckets
func (idx *SpatialIndex) Len() int {
	return len(idx.buckets)
}

// bucketRange returns the inclusive bucket range covering r
func (idx *SpatialIndex) bucketRange(r entity.Rect) (x0, y0, x1, y1 int, ok bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	x0 = entity.FloorDiv(r.X, idx.bucketSize)
	y0 = entity.FloorDiv(r.Y, idx.bucketSize)
	x1 = entity.FloorDiv(r.X+r.W-1, idx.bucketSize)
	y1 = entity.FloorDiv(r.Y+r.H-1, idx.bucketSize)
	return x0, y0, x1, y1, true
}

// Insert adds id to every bucket r overlaps. Inserting twice is a no-op.
func (idx *SpatialIndex) Insert(id EntityID, r entity.Rect) {
	x0, y0, x1, y1, ok := idx.bucketRange(r)
	if !ok {
		return
	}
	for by := y0; by <= y1; by++ {
		for bx := x0; bx <= x1; bx++ {
			key := BucketKey{X: bx, Y: by}
			bucket := idx.buckets[key]
			if slices.Contains(bucket, id) {
				continue
			}
			idx.buckets[key] = append(bucket, id)
		}
	}
}

// Remove deletes id from every bucket r overlaps. Absent ids are ignored.
func (idx *SpatialIndex) Remove(id EntityID, r entity.Rect) {
	x0, y0, x1, y1, ok := idx.bucketRange(r)
	if !ok {
		return
	}
	for by := y0; by <= y1; by++ {
		for bx := x0; bx <= x1; bx++ {
			key := BucketKey{X: bx, Y: by}
			bucket := idx.buckets[key]
			i := slices.Index(bucket, id)
			if i < 0 {
				continue
			}
			bucket = slices.Delete(bucket, i, i+1)
			if len(bucket) == 0 {
				delete(idx.buckets, key)
				continue
			}
			idx.buckets[key] = bucket
		}
	}
}

// Visit calls fn for each member of the buckets r overlaps until fn returns
// false. An entity spanning several buckets may be visited more than once.
func (idx *SpatialIndex) Visit(r entity.Rect, fn func(id EntityID) bool) {
	x0, y0, x1, y1, ok := idx.bucketRange(r)
	if !ok {
		return
	}
	for by := y0; by <= y1; by++ {
		for bx := x0; bx <= x1; bx++ {
			for _, id := range idx.buckets[BucketKey{X: bx, Y: by}] {
				if !fn(id) {
					return
				}
			}
		}
	}
}

// Entities returns the de-duplicated members of every bucket r overlaps,
// in ascending ID order. Members are candidates: their footprints share a
// bucket with r but need not overlap it.
func (idx *SpatialIndex) Entities(r entity.Rect) []EntityID {
	var out []EntityID
	idx.Visit(r, func(id EntityID) bool {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
		return true
	})
	slices.Sort(out)
	return out
}
