package lanetopo

import (
	"math"

	"github.com/paulmach/orb"
)

// angleBetweenLines returs angle between two lines
//
// Note: panics if number of points in any line is less than 2
//
func angleBetweenLines(l1 orb.LineString, l2 orb.LineString) float64 {
	angle1 := math.Atan2(l1[len(l1)-1].Y()-l1[0].Y(), l1[len(l1)-1].X()-l1[0].X())
	angle2 := math.Atan2(l2[len(l2)-1].Y()-l2[0].Y(), l2[len(l2)-1].X()-l2[0].X())
	return normalizeAngle(angle2 - angle1)
}

func normalizeAngle(angle float64) float64 {
	if angle < -1*math.Pi {
		angle += 2 * math.Pi
	}
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// turnBetweenLines classifies the turn made by a line from its first segment to its last one
//
// Note: angles are evaluated in the ground plane where X is east and Y (world Z) is north,
// so positive angle is a counter-clockwise (left) turn
//
func turnBetweenLines(line orb.LineString) TurnType {
	if len(line) < 2 {
		return TURN_UNDEFINED
	}
	if len(line) == 2 {
		return TURN_STRAIGHT
	}
	first := orb.LineString{line[0], line[1]}
	last := orb.LineString{line[len(line)-2], line[len(line)-1]}
	angleDiff := angleBetweenLines(first, last)
	switch {
	case -0.25*math.Pi <= angleDiff && angleDiff <= 0.25*math.Pi:
		return TURN_STRAIGHT
	case angleDiff < -0.25*math.Pi && angleDiff >= -0.75*math.Pi:
		return TURN_RIGHT
	case angleDiff > 0.25*math.Pi && angleDiff <= 0.75*math.Pi:
		return TURN_LEFT
	default:
		return TURN_UTURN
	}
}
