// Command lanetopo builds lanes topology of an authored map scene.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

const version = "0.1.0"

type rootCmd struct {
	Version versionCmd `command:"version" description:"Show version information"`
	Build   buildCmd   `command:"build" description:"Build lanes topology and export it"`
	Route   routeCmd   `command:"route" description:"Find shortest lane path between two lanes"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	fmt.Println("lanetopo", version)
	return nil
}
