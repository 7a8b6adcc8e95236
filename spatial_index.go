package lanetopo

import (
	"sort"

	"github.com/peterstace/simplefeatures/rtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// startPointIndex is an R-tree over ground-plane projections of lanes first world points
type startPointIndex struct {
	tree   *rtree.RTree
	points []r3.Vec
}

func newStartPointIndex(lanes []*MapLane) *startPointIndex {
	items := make([]rtree.BulkItem, len(lanes))
	points := make([]r3.Vec, len(lanes))
	for i, lane := range lanes {
		pt := lane.FirstWorld()
		points[i] = pt
		items[i] = rtree.BulkItem{
			Box:      rtree.Box{MinX: pt.X, MinY: pt.Z, MaxX: pt.X, MaxY: pt.Z},
			RecordID: i,
		}
	}
	return &startPointIndex{
		tree:   rtree.BulkLoad(items),
		points: points,
	}
}

// within returns indices of lanes which first point is closer than radius to given point.
// Indices are sorted, so result is the same as for the full scan.
func (idx *startPointIndex) within(pt r3.Vec, radius float64) []int {
	box := rtree.Box{
		MinX: pt.X - radius,
		MinY: pt.Z - radius,
		MaxX: pt.X + radius,
		MaxY: pt.Z + radius,
	}
	found := []int{}
	_ = idx.tree.RangeSearch(box, func(recordID int) error {
		if findDistance3D(pt, idx.points[recordID]) < radius {
			found = append(found, recordID)
		}
		return nil
	})
	sort.Ints(found)
	return found
}
