package lanetopo

import (
	"github.com/pkg/errors"
)

// resolveLanes recomputes world positions of lanes and rebuilds their successors.
// Lane A becomes successor of lane L when the last point of L is closer than proximity to the first point of A.
//
// Note: lane is not excluded from its own candidates, so a closed lane is a successor of itself
//
func resolveLanes(resolver TransformResolver, lanes []*MapLane, proximity float64, useIndex bool) error {
	for _, lane := range lanes {
		if len(lane.LocalPositions) < 2 {
			return errors.Wrapf(ErrMalformedLane, "lane '%s' has %d points", lane.ID, len(lane.LocalPositions))
		}
	}

	// Convert local to world positions
	for _, lane := range lanes {
		err := lane.resolveWorld(resolver)
		if err != nil {
			return err
		}
	}

	// Set connected lanes
	if useIndex {
		connectLanesIndexed(lanes, proximity)
		return nil
	}
	connectLanes(lanes, proximity)
	return nil
}

// connectLanes is O(n^2) scan over all lane pairs
func connectLanes(lanes []*MapLane, proximity float64) {
	for _, lane := range lanes {
		lane.NextConnectedLanes = lane.NextConnectedLanes[:0]
		lastPt := lane.LastWorld()
		for _, altLane := range lanes {
			firstPt := altLane.FirstWorld()
			if findDistance3D(lastPt, firstPt) < proximity {
				lane.addSuccessor(altLane)
			}
		}
	}
}

// connectLanesIndexed gives the same result as connectLanes using R-tree over first points
func connectLanesIndexed(lanes []*MapLane, proximity float64) {
	if len(lanes) == 0 {
		return
	}
	index := newStartPointIndex(lanes)
	for _, lane := range lanes {
		lane.NextConnectedLanes = lane.NextConnectedLanes[:0]
		for _, candidateIdx := range index.within(lane.LastWorld(), proximity) {
			lane.addSuccessor(lanes[candidateIdx])
		}
	}
}
