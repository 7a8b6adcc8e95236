package lanetopo

import (
	"github.com/paulmach/orb/encoding/wkt"
	"gonum.org/v1/gonum/spatial/r3"
)

// PrepareWKTLinestring returns WKT representation of ground-plane projection of given points
func PrepareWKTLinestring(pts []r3.Vec) string {
	return wkt.MarshalString(ProjectLine2D(pts))
}

// PrepareWKTPoint returns WKT representation of ground-plane projection of given point
func PrepareWKTPoint(pt r3.Vec) string {
	return wkt.MarshalString(Project2D(pt))
}
