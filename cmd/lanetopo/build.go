package main

import (
	"fmt"

	"github.com/LdDl/lanetopo"
	"github.com/pkg/errors"
)

// SceneOptions are shared by commands which build topology
type SceneOptions struct {
	Scene     string  `short:"s" long:"scene" required:"true" description:"Authored scene file (YAML)"`
	Proximity float64 `short:"p" long:"proximity" default:"1.0" description:"Connection proximity for lanes and stop lines"`
	Index     bool    `long:"index" description:"Use R-tree for lanes connectivity search"`
	Verbose   bool    `short:"v" long:"verbose" description:"Verbose output"`
}

// buildTopology loads the scene and builds topology
func (o SceneOptions) buildTopology() (*lanetopo.Topology, error) {
	scene, holder, err := lanetopo.LoadSceneYAML(o.Scene)
	if err != nil {
		return nil, err
	}
	builder, err := lanetopo.NewBuilder(
		scene,
		holder,
		lanetopo.WithConnectionProximity(o.Proximity),
		lanetopo.WithSpatialIndex(o.Index),
		lanetopo.WithVerbose(o.Verbose),
	)
	if err != nil {
		return nil, err
	}
	if o.Verbose {
		fmt.Println(builder)
	}
	return builder.Build()
}

type buildCmd struct {
	SceneOptions

	CSV     string `long:"csv" description:"Export to CSV files ('map.csv' gives 'map_lanes.csv' and 'map_intersections.csv')"`
	GeoJSON string `long:"geojson" description:"Export to GeoJSON file"`
	OSM     string `long:"osm" description:"Export to OSM XML file"`
	SQLite  string `long:"sqlite" description:"Store topology in SQLite database"`
}

// Execute builds topology and writes requested exports.
func (c *buildCmd) Execute(_ []string) error {
	topology, err := c.buildTopology()
	if err != nil {
		return err
	}

	stopLinesBound := 0
	for _, lane := range topology.Lanes {
		if lane.StopLine != nil {
			stopLinesBound++
		}
	}
	fmt.Printf("traffic lanes: %d\n", len(topology.Lanes))
	fmt.Printf("all lanes: %d\n", len(topology.Network))
	fmt.Printf("lanes with stop line: %d\n", stopLinesBound)
	fmt.Printf("intersections: %d\n", len(topology.Intersections))
	fmt.Printf("total lane length: %f\n", topology.TotalLaneLength())

	if c.CSV != "" {
		if err := topology.ExportToCSV(c.CSV); err != nil {
			return errors.Wrap(err, "Can't export CSV")
		}
	}
	if c.GeoJSON != "" {
		if err := topology.ExportToGeoJSON(c.GeoJSON); err != nil {
			return errors.Wrap(err, "Can't export GeoJSON")
		}
	}
	if c.OSM != "" {
		if err := topology.ExportToOSM(c.OSM); err != nil {
			return errors.Wrap(err, "Can't export OSM")
		}
	}
	if c.SQLite != "" {
		buildID, err := topology.ExportToSQLite(c.SQLite)
		if err != nil {
			return errors.Wrap(err, "Can't export SQLite")
		}
		fmt.Printf("build id: %s\n", buildID)
	}
	return nil
}
