package lanetopo

import (
	"math"

	"github.com/LdDl/ch"
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

// RoutingGraph is lane-level routing graph: lanes are vertices, successors are edges.
// Weight of an edge is the arc length of the target lane.
type RoutingGraph struct {
	graph      *ch.Graph
	labels     map[EntityID]int64
	lanes      map[int64]*MapLane
	contracted bool
}

// laneLabel returns stable vertex label for given lane ID
func laneLabel(id EntityID) int64 {
	return int64(xxhash.Sum64String(string(id)) & math.MaxInt64)
}

// RoutingGraph builds routing graph over all lanes of the topology (traffic and reference ones)
//
// Note: self-loops are not routable and are skipped
//
func (topology *Topology) RoutingGraph() (*RoutingGraph, error) {
	rg := &RoutingGraph{
		graph:  &ch.Graph{},
		labels: make(map[EntityID]int64, len(topology.Network)),
		lanes:  make(map[int64]*MapLane, len(topology.Network)),
	}
	for _, lane := range topology.Network {
		label := laneLabel(lane.ID)
		if other, ok := rg.lanes[label]; ok && other != lane {
			return nil, errors.Errorf("vertex label collision for lanes '%s' and '%s'", other.ID, lane.ID)
		}
		err := rg.graph.CreateVertex(label)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create vertex for lane '%s'", lane.ID)
		}
		rg.labels[lane.ID] = label
		rg.lanes[label] = lane
	}
	for _, lane := range topology.Network {
		source := rg.labels[lane.ID]
		for _, next := range lane.NextConnectedLanes {
			if next == lane {
				continue
			}
			target, ok := rg.labels[next.ID]
			if !ok {
				return nil, errors.Wrapf(ErrLaneNotFound, "successor '%s' of lane '%s'", next.ID, lane.ID)
			}
			err := rg.graph.AddEdge(source, target, next.Length())
			if err != nil {
				return nil, errors.Wrapf(err, "Can't add edge '%s' -> '%s'", lane.ID, next.ID)
			}
		}
	}
	return rg, nil
}

// Prepare contracts the graph. Queries call it on demand
func (rg *RoutingGraph) Prepare() {
	if rg.contracted {
		return
	}
	rg.graph.PrepareContractionHierarchies()
	rg.contracted = true
}

// ShortestLanePath returns cost and lane IDs of the shortest path between two lanes.
// Cost excludes the source lane. Empty path and -1 cost mean there is no path.
func (rg *RoutingGraph) ShortestLanePath(from, to EntityID) (float64, []EntityID, error) {
	source, ok := rg.labels[from]
	if !ok {
		return -1, nil, errors.Wrapf(ErrLaneNotFound, "'%s'", from)
	}
	target, ok := rg.labels[to]
	if !ok {
		return -1, nil, errors.Wrapf(ErrLaneNotFound, "'%s'", to)
	}
	if source == target {
		return 0, []EntityID{from}, nil
	}
	rg.Prepare()
	cost, vertices := rg.graph.ShortestPath(source, target)
	if cost < 0 || len(vertices) == 0 {
		return -1, nil, nil
	}
	path := make([]EntityID, len(vertices))
	for i, label := range vertices {
		path[i] = rg.lanes[label].ID
	}
	return cost, path, nil
}

// ExportShortcutsToFile writes shortcuts of the contracted graph
func (rg *RoutingGraph) ExportShortcutsToFile(fname string) error {
	rg.Prepare()
	return rg.graph.ExportShortcutsToFile(fname)
}
