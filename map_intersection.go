package lanetopo

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// MapIntersection groups lanes of a junction
type MapIntersection struct {
	ID    EntityID
	Lanes []*MapLane
	// Unique stop lines governing member lanes or lanes feeding them
	StopLines []*MapLine
	// Mean of member lanes end points
	Center r3.Vec
	// Member lanes which centerlines cross each other (symmetric)
	Conflicts map[*MapLane][]*MapLane
}

// NewMapIntersection returns intersection attached to the entity with given ID
func NewMapIntersection(id EntityID) *MapIntersection {
	return &MapIntersection{
		ID:        id,
		Conflicts: make(map[*MapLane][]*MapLane),
	}
}

// SetIntersectionData derives intersection data from member lanes.
// Members without world positions get them resolved (successors are not touched).
// 'network' is an optional set of lanes used to find stop lines of lanes feeding the intersection.
func (intersection *MapIntersection) SetIntersectionData(resolver TransformResolver, members []*MapLane, network []*MapLane) error {
	for _, lane := range members {
		if lane.isResolved() {
			continue
		}
		if len(lane.LocalPositions) < 2 {
			return errors.Wrapf(ErrMalformedLane, "lane '%s' of intersection '%s' has %d points", lane.ID, intersection.ID, len(lane.LocalPositions))
		}
		err := lane.resolveWorld(resolver)
		if err != nil {
			return err
		}
	}
	intersection.Lanes = make([]*MapLane, len(members))
	copy(intersection.Lanes, members)

	endpoints := make([]r3.Vec, 0, 2*len(members))
	for _, lane := range members {
		endpoints = append(endpoints, lane.FirstWorld(), lane.LastWorld())
		lane.TurnType = turnBetweenLines(ProjectLine2D(lane.WorldPositions))
	}
	intersection.Center = findCentroid(endpoints)

	intersection.StopLines = intersection.StopLines[:0]
	seen := make(map[*MapLine]struct{})
	addStopLine := func(line *MapLine) {
		if line == nil {
			return
		}
		if _, ok := seen[line]; ok {
			return
		}
		seen[line] = struct{}{}
		intersection.StopLines = append(intersection.StopLines, line)
	}
	memberSet := make(map[*MapLane]struct{}, len(members))
	for _, lane := range members {
		memberSet[lane] = struct{}{}
		addStopLine(lane.StopLine)
	}
	for _, lane := range network {
		if _, ok := memberSet[lane]; ok {
			continue
		}
		for _, next := range lane.NextConnectedLanes {
			if _, ok := memberSet[next]; ok {
				addStopLine(lane.StopLine)
				break
			}
		}
	}

	intersection.Conflicts = make(map[*MapLane][]*MapLane)
	for i, lane := range members {
		line := ProjectLine2D(lane.WorldPositions)
		for _, other := range members[i+1:] {
			if findDistance3D(lane.FirstWorld(), other.FirstWorld()) < epsilon {
				continue
			}
			if crossed, _ := SegmentsIntersect(line, ProjectLine2D(other.WorldPositions)); crossed {
				intersection.Conflicts[lane] = append(intersection.Conflicts[lane], other)
				intersection.Conflicts[other] = append(intersection.Conflicts[other], lane)
			}
		}
	}
	return nil
}
