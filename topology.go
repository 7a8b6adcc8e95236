package lanetopo

// Topology is the result of a full build
type Topology struct {
	// Traffic lanes
	Lanes []*MapLane
	// Traffic and reference lanes
	Network             []*MapLane
	Intersections       []*MapIntersection
	ConnectionProximity float64
}

// Lane returns lane with given ID (traffic or reference one)
func (topology *Topology) Lane(id EntityID) (*MapLane, bool) {
	for _, lane := range topology.Network {
		if lane.ID == id {
			return lane, true
		}
	}
	return nil, false
}

// Intersection returns intersection with given ID
func (topology *Topology) Intersection(id EntityID) (*MapIntersection, bool) {
	for _, intersection := range topology.Intersections {
		if intersection.ID == id {
			return intersection, true
		}
	}
	return nil, false
}

// TotalLaneLength returns TotalLaneLength of traffic lanes
func (topology *Topology) TotalLaneLength() float64 {
	return TotalLaneLength(topology.Lanes)
}
