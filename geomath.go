package lanetopo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	epsilon = 1e-10
)

// TransformToWorld converts local points of the entity into world space via given resolver
func TransformToWorld(resolver TransformResolver, id EntityID, local []r3.Vec) ([]r3.Vec, error) {
	world := make([]r3.Vec, 0, len(local))
	for _, pt := range local {
		worldPt, err := resolver.ResolveWorldPoint(id, pt)
		if err != nil {
			return nil, err
		}
		world = append(world, worldPt)
	}
	return world, nil
}

// Project2D returns ground-plane projection of given point: vertical axis (Y) is dropped, so X == X and Y == Z
func Project2D(p r3.Vec) orb.Point {
	return orb.Point{p.X, p.Z}
}

// ProjectLine2D returns ground-plane projection of given points
func ProjectLine2D(pts []r3.Vec) orb.LineString {
	line := make(orb.LineString, len(pts))
	for i, pt := range pts {
		line[i] = Project2D(pt)
	}
	return line
}

// SegmentsIntersect checks every segment of curve 'a' against every segment of curve 'b'.
// Returns true and intersection points if any pair of segments crosses.
//
// Note: zero-length segments never intersect, collinear overlaps are not reported
//
func SegmentsIntersect(a, b orb.LineString) (bool, []orb.Point) {
	var intersections []orb.Point
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(b); j++ {
			if pt, ok := intersectSegments(a[i-1], a[i], b[j-1], b[j]); ok {
				intersections = append(intersections, pt)
			}
		}
	}
	return len(intersections) > 0, intersections
}

// intersectSegments returns intersection point of two segments
// p1, p2 - first segment
// p3, p4 - second segment
func intersectSegments(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	r := orb.Point{p2[0] - p1[0], p2[1] - p1[1]}
	s := orb.Point{p4[0] - p3[0], p4[1] - p3[1]}
	rxs := cross(r, s)
	// Parallel, collinear or degenerate
	if math.Abs(rxs) < epsilon {
		return orb.Point{}, false
	}
	qp := orb.Point{p3[0] - p1[0], p3[1] - p1[1]}
	t := cross(qp, s) / rxs
	u := cross(qp, r) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}
	return orb.Point{p1[0] + t*r[0], p1[1] + t*r[1]}, true
}

// PointNearSegment checks if distance from 'p' to segment [segA, segB] is less than tolerance.
// Projection of the point is clamped to the segment ends.
//
// Note: zero-length segment is never near anything
//
func PointNearSegment(p, segA, segB orb.Point, tolerance float64) bool {
	dx := segB[0] - segA[0]
	dy := segB[1] - segA[1]
	lenSq := dx*dx + dy*dy
	if lenSq < epsilon*epsilon {
		return false
	}
	t := ((p[0]-segA[0])*dx + (p[1]-segA[1])*dy) / lenSq
	var closest orb.Point
	switch {
	case t < 0:
		closest = segA
	case t > 1:
		closest = segB
	default:
		closest = orb.Point{segA[0] + t*dx, segA[1] + t*dy}
	}
	return planar.Distance(p, closest) < tolerance
}

func cross(a, b orb.Point) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// findDistance3D returns Euclidean distance between two world points
func findDistance3D(p, q r3.Vec) float64 {
	return r3.Norm(r3.Sub(p, q))
}

// straightLength returns distance between first and last points of given line (not the arc length)
func straightLength(pts []r3.Vec) float64 {
	if len(pts) < 2 {
		return 0.0
	}
	return findDistance3D(pts[0], pts[len(pts)-1])
}

// getLength returns arc length for given line
func getLength(pts []r3.Vec) float64 {
	totalLength := 0.0
	if len(pts) < 2 {
		return totalLength
	}
	for i := 1; i < len(pts); i++ {
		totalLength += findDistance3D(pts[i-1], pts[i])
	}
	return totalLength
}

// findCentroid returns mean point of given points
func findCentroid(pts []r3.Vec) r3.Vec {
	if len(pts) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, pt := range pts {
		sum = r3.Add(sum, pt)
	}
	return r3.Scale(1/float64(len(pts)), sum)
}
