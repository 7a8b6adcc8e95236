package lanetopo

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	osmTagPrefix = "lanetopo:"
)

// OSM returns lanes as OSM ways. World points become nodes: X goes to longitude, Z to latitude
// and Y to 'ele' tag, all of them in map units rather than degrees.
func (topology *Topology) OSM() *osm.OSM {
	data := &osm.OSM{
		Version:   "0.6",
		Generator: "lanetopo",
	}
	nodeID := osm.NodeID(0)
	for i, lane := range topology.Network {
		way := &osm.Way{
			ID:      osm.WayID(i + 1),
			Visible: true,
			Nodes:   make(osm.WayNodes, 0, len(lane.WorldPositions)),
			Tags: osm.Tags{
				{Key: osmTagPrefix + "id", Value: string(lane.ID)},
				{Key: osmTagPrefix + "traffic", Value: fmt.Sprintf("%t", lane.IsTrafficLane)},
				{Key: osmTagPrefix + "next", Value: strings.Join(laneIDs(lane.NextConnectedLanes), ";")},
			},
		}
		if lane.Speed > 0 {
			way.Tags = append(way.Tags, osm.Tag{Key: "maxspeed", Value: fmt.Sprintf("%f", lane.Speed)})
		}
		if lane.StopLine != nil {
			way.Tags = append(way.Tags, osm.Tag{Key: osmTagPrefix + "stop_line", Value: string(lane.StopLine.ID)})
		}
		for _, pt := range lane.WorldPositions {
			nodeID++
			data.Nodes = append(data.Nodes, &osm.Node{
				ID:      nodeID,
				Lon:     pt.X,
				Lat:     pt.Z,
				Visible: true,
				Tags:    osm.Tags{{Key: "ele", Value: fmt.Sprintf("%f", pt.Y)}},
			})
			way.Nodes = append(way.Nodes, osm.WayNode{ID: nodeID})
		}
		data.Ways = append(data.Ways, way)
	}
	return data
}

// ExportToOSM writes OSM XML representation of the topology to the file
func (topology *Topology) ExportToOSM(fname string) error {
	b, err := xml.MarshalIndent(topology.OSM(), "", " ")
	if err != nil {
		return errors.Wrap(err, "Can't marshal OSM data")
	}
	err = os.WriteFile(fname, append([]byte(xml.Header), b...), 0o644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}
