package lanetopo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// MapLaneSection groups parallel lanes of the same road segment
type MapLaneSection struct {
	ID EntityID
	// Member lanes ordered from left to right
	Lanes []*MapLane
	// Lateral span between outermost member centerlines
	Width float64
}

// NewMapLaneSection returns lane section attached to the entity with given ID
func NewMapLaneSection(id EntityID) *MapLaneSection {
	return &MapLaneSection{
		ID: id,
	}
}

// SetLaneData derives section data from member lanes with resolved world positions.
// Lanes are ordered left to right relative to the travel direction of the first member
// and get their section and neighbours assigned. Successors and stop lines are not touched.
func (section *MapLaneSection) SetLaneData(members []*MapLane) {
	section.Lanes = make([]*MapLane, 0, len(members))
	for _, lane := range members {
		if lane.isResolved() {
			section.Lanes = append(section.Lanes, lane)
		}
	}
	section.Width = 0
	if len(section.Lanes) == 0 {
		return
	}

	offsets := lateralOffsets(section.Lanes)
	indices := make([]int, len(section.Lanes))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return offsets[indices[i]] > offsets[indices[j]]
	})
	sorted := make([]*MapLane, len(section.Lanes))
	for i := range sorted {
		sorted[i] = section.Lanes[indices[i]]
	}
	section.Lanes = sorted
	section.Width = offsets[indices[0]] - offsets[indices[len(indices)-1]]

	for i, lane := range section.Lanes {
		lane.Section = section
		lane.LeftLane = nil
		lane.RightLane = nil
		if i > 0 {
			lane.LeftLane = section.Lanes[i-1]
		}
		if i < len(section.Lanes)-1 {
			lane.RightLane = section.Lanes[i+1]
		}
	}
}

// lateralOffsets returns signed offsets of lanes first points to the left of the first lane travel direction
func lateralOffsets(lanes []*MapLane) []float64 {
	offsets := make([]float64, len(lanes))
	ref := lanes[0]
	origin := Project2D(ref.FirstWorld())
	end := Project2D(ref.LastWorld())
	dx, dy := end[0]-origin[0], end[1]-origin[1]
	norm := math.Hypot(dx, dy)
	if norm < epsilon {
		return offsets
	}
	// Left normal in the ground plane
	left := orb.Point{-dy / norm, dx / norm}
	for i, lane := range lanes {
		pt := Project2D(lane.FirstWorld())
		offsets[i] = (pt[0]-origin[0])*left[0] + (pt[1]-origin[1])*left[1]
	}
	return offsets
}
