package lanetopo

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// GeoJSON returns lanes, bound stop lines and intersection centers as features.
// Coordinates are ground-plane projections (X, Z) in map units.
func (topology *Topology) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	var stops []*MapLine
	seen := make(map[*MapLine]struct{})
	for _, lane := range topology.Network {
		feature := geojson.NewLineStringFeature(coordinates2D(lane.WorldPositions))
		feature.ID = string(lane.ID)
		feature.SetProperty("kind", "lane")
		feature.SetProperty("traffic", lane.IsTrafficLane)
		feature.SetProperty("speed", lane.Speed)
		feature.SetProperty("straight_length", lane.StraightLength())
		feature.SetProperty("turn", lane.TurnType.String())
		feature.SetProperty("next_lanes", laneIDs(lane.NextConnectedLanes))
		if lane.StopLine != nil {
			feature.SetProperty("stop_line", string(lane.StopLine.ID))
			if _, ok := seen[lane.StopLine]; !ok {
				seen[lane.StopLine] = struct{}{}
				stops = append(stops, lane.StopLine)
			}
		}
		fc.AddFeature(feature)
	}
	for _, line := range stops {
		feature := geojson.NewLineStringFeature(coordinates2D(line.WorldPositions))
		feature.ID = string(line.ID)
		feature.SetProperty("kind", "stop_line")
		fc.AddFeature(feature)
	}
	for _, intersection := range topology.Intersections {
		center := Project2D(intersection.Center)
		feature := geojson.NewPointFeature([]float64{center[0], center[1]})
		feature.ID = string(intersection.ID)
		feature.SetProperty("kind", "intersection")
		feature.SetProperty("lanes", laneIDs(intersection.Lanes))
		fc.AddFeature(feature)
	}
	return fc
}

// ExportToGeoJSON writes GeoJSON representation of the topology to the file
func (topology *Topology) ExportToGeoJSON(fname string) error {
	b, err := topology.GeoJSON().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal features")
	}
	err = os.WriteFile(fname, b, 0o644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}

func coordinates2D(pts []r3.Vec) [][]float64 {
	coords := make([][]float64, len(pts))
	for i, pt := range pts {
		p := Project2D(pt)
		coords[i] = []float64{p[0], p[1]}
	}
	return coords
}

func laneIDs(lanes []*MapLane) []string {
	ids := make([]string, len(lanes))
	for i, lane := range lanes {
		ids[i] = string(lane.ID)
	}
	return ids
}
