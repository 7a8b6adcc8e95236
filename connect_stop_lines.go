package lanetopo

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// stopLines filters lines of LINE_STOP type
func stopLines(lines []*MapLine) []*MapLine {
	stops := make([]*MapLine, 0, len(lines))
	for _, line := range lines {
		if line.LineType == LINE_STOP {
			stops = append(stops, line)
		}
	}
	return stops
}

// prepareStopLines validates stop lines and recomputes their world positions.
// Only lines without points are rejected: a single point line has both ends defined and is never near anything.
func prepareStopLines(resolver TransformResolver, stops []*MapLine) error {
	for _, line := range stops {
		if len(line.LocalPositions) == 0 {
			return errors.Wrapf(ErrMalformedLine, "line '%s' has no points", line.ID)
		}
	}

	// Convert local to world positions
	for _, line := range stops {
		err := line.resolveWorld(resolver)
		if err != nil {
			return err
		}
	}
	return nil
}

// bindStopLines attaches prepared stop lines to lanes they terminate.
// Lane gets stop line when either the stop line crosses the lane terminal pseudo-segment
// or the lane last point is closer than proximity to the segment between stop line ends.
// Lane holds one stop line: the last matching one wins.
//
// Note: terminal pseudo-segment is the lane last point repeated, i.e. a zero-length segment.
// Crossing test never fires for it and binding comes from the proximity test
//
func bindStopLines(stops []*MapLine, lanes []*MapLane, proximity float64) {
	for _, line := range stops {
		if len(line.WorldPositions) == 0 {
			continue
		}
		stopLine2D := ProjectLine2D(line.WorldPositions)
		stopStart, stopEnd := stopLine2D[0], stopLine2D[len(stopLine2D)-1]
		for _, lane := range lanes {
			if len(lane.WorldPositions) == 0 {
				continue
			}
			laneEnd := Project2D(lane.LastWorld())
			terminal := orb.LineString{laneEnd, laneEnd}
			isIntersected, _ := SegmentsIntersect(stopLine2D, terminal)
			isClose := PointNearSegment(laneEnd, stopStart, stopEnd, proximity)
			if isIntersected || isClose {
				lane.StopLine = line
			}
		}
	}
}
