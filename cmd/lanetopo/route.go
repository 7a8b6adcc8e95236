package main

import (
	"fmt"
	"time"

	"github.com/LdDl/lanetopo"
)

type routeCmd struct {
	SceneOptions

	From      string `long:"from" required:"true" description:"Source lane ID"`
	To        string `long:"to" required:"true" description:"Target lane ID"`
	Shortcuts string `long:"shortcuts" description:"Export shortcuts of contracted graph to the file"`
}

// Execute finds shortest lane path.
func (c *routeCmd) Execute(_ []string) error {
	topology, err := c.buildTopology()
	if err != nil {
		return err
	}
	graph, err := topology.RoutingGraph()
	if err != nil {
		return err
	}

	if c.Verbose {
		fmt.Print("Starting contraction process...")
	}
	st := time.Now()
	graph.Prepare()
	if c.Verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	cost, path, err := graph.ShortestLanePath(lanetopo.EntityID(c.From), lanetopo.EntityID(c.To))
	if err != nil {
		return err
	}
	if len(path) == 0 {
		fmt.Printf("no path from '%s' to '%s'\n", c.From, c.To)
	} else {
		fmt.Printf("cost: %f\n", cost)
		for _, id := range path {
			fmt.Println(id)
		}
	}

	if c.Shortcuts != "" {
		return graph.ExportShortcutsToFile(c.Shortcuts)
	}
	return nil
}
