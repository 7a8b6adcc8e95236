package lanetopo

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// MapLine is an authored line marking. Only LINE_STOP lines are bound to lanes
type MapLine struct {
	Polyline
	LineType LineType
}

// NewMapLine returns line attached to the entity with given ID
func NewMapLine(id EntityID, lineType LineType, localPositions ...[3]float64) *MapLine {
	return &MapLine{
		Polyline: newPolyline(id, localPositions),
		LineType: lineType,
	}
}

// String returns pretty printed line
func (line *MapLine) String() string {
	return fmt.Sprintf("Line '%s' | type: %s | points: %d", line.ID, line.LineType, len(line.LocalPositions))
}

func newPolyline(id EntityID, localPositions [][3]float64) Polyline {
	pl := Polyline{
		ID:             id,
		LocalPositions: make([]r3.Vec, len(localPositions)),
	}
	for i, pt := range localPositions {
		pl.LocalPositions[i] = r3.Vec{X: pt[0], Y: pt[1], Z: pt[2]}
	}
	return pl
}
