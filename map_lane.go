package lanetopo

import (
	"fmt"
)

// MapLane is a directed lane centerline
type MapLane struct {
	Polyline
	// Traffic lane or reference (boundary) lane used for connectivity only
	IsTrafficLane bool
	// Authored speed limit (m/s). Zero means unset
	Speed float64
	// Successors. Unique by identity, order of discovery is not meaningful
	NextConnectedLanes []*MapLane
	// Bound stop line (at most one)
	StopLine *MapLine

	// Populated by lane section aggregation
	Section   *MapLaneSection
	LeftLane  *MapLane
	RightLane *MapLane

	// Populated by intersection aggregation
	TurnType TurnType
}

// NewMapLane returns lane attached to the entity with given ID
func NewMapLane(id EntityID, localPositions ...[3]float64) *MapLane {
	return &MapLane{
		Polyline: newPolyline(id, localPositions),
	}
}

// String returns pretty printed lane
func (lane *MapLane) String() string {
	return fmt.Sprintf("Lane '%s' | points: %d | traffic: %t | successors: %d", lane.ID, len(lane.LocalPositions), lane.IsTrafficLane, len(lane.NextConnectedLanes))
}

// hasSuccessor checks if given lane is already registered as successor
func (lane *MapLane) hasSuccessor(candidate *MapLane) bool {
	for _, next := range lane.NextConnectedLanes {
		if next == candidate {
			return true
		}
	}
	return false
}

// addSuccessor registers successor keeping uniqueness by identity
func (lane *MapLane) addSuccessor(candidate *MapLane) {
	if lane.hasSuccessor(candidate) {
		return
	}
	lane.NextConnectedLanes = append(lane.NextConnectedLanes, candidate)
}

// StraightLength returns distance between first and last world points (not the arc length)
func (lane *MapLane) StraightLength() float64 {
	return straightLength(lane.WorldPositions)
}

// Length returns arc length of the world polyline
func (lane *MapLane) Length() float64 {
	return getLength(lane.WorldPositions)
}
