package lanetopo

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const (
	DEFAULT_CONNECTION_PROXIMITY = 1.0
)

// Builder builds lanes and intersections topology from the authored scene.
// It is not safe for concurrent use: builds mutate entities owned by the scene.
type Builder struct {
	scene               SceneProvider
	holder              *MapHolder
	connectionProximity float64
	useSpatialIndex     bool
	verbose             bool
	logf                func(format string, v ...interface{})
	// All lanes (traffic and reference) of the last lanes build
	network []*MapLane
}

func (builder *Builder) String() string {
	return fmt.Sprintf(`
Topology builder parameters:
	map root: '%s'
	traffic lanes: '%s'
	intersections: '%s'
	connection proximity: %f
	spatial index enabled?: %t
	verbose?: %t
	`,
		builder.holderRegion(func(h *MapHolder) EntityID { return h.Root }),
		builder.holderRegion(func(h *MapHolder) EntityID { return h.TrafficLanes }),
		builder.holderRegion(func(h *MapHolder) EntityID { return h.Intersections }),
		builder.connectionProximity,
		builder.useSpatialIndex,
		builder.verbose,
	)
}

func (builder *Builder) holderRegion(get func(h *MapHolder) EntityID) EntityID {
	if builder.holder == nil {
		return ""
	}
	return get(builder.holder)
}

// NewBuilder returns builder over given scene and map holder
func NewBuilder(scene SceneProvider, holder *MapHolder, options ...func(*Builder)) (*Builder, error) {
	builder := &Builder{
		scene:               scene,
		holder:              holder,
		connectionProximity: DEFAULT_CONNECTION_PROXIMITY,
	}
	for _, option := range options {
		option(builder)
	}
	if builder.connectionProximity < 0 {
		return nil, errors.Wrapf(ErrInvalidProximity, "got %f", builder.connectionProximity)
	}
	return builder, nil
}

// ConnectionProximity returns tolerance used for connectivity and stop lines binding
func (builder *Builder) ConnectionProximity() float64 {
	return builder.connectionProximity
}

func (builder *Builder) diagnostic(format string, v ...interface{}) {
	if builder.logf != nil {
		builder.logf(format, v...)
		return
	}
	Logf(format, v...)
}

// checkRegions reports missing map root when holder or any of given regions is absent in the scene
func (builder *Builder) checkRegions(regions ...func(h *MapHolder) EntityID) error {
	if builder.scene == nil || builder.holder == nil {
		builder.diagnostic("missing map holder, please provide map holder with root, traffic lanes and intersections regions of the map")
		return ErrMissingMapRoot
	}
	for _, get := range regions {
		region := get(builder.holder)
		if region == "" || !builder.scene.Exists(region) {
			builder.diagnostic("missing map region '%s', please set map holder regions to existing scene nodes", region)
			return errors.Wrapf(ErrMissingMapRoot, "region '%s'", region)
		}
	}
	return nil
}

// BuildLanes resolves world positions and connectivity of all lanes under the map root,
// aggregates lane sections and binds stop lines. Returns traffic lanes only.
func (builder *Builder) BuildLanes() ([]*MapLane, error) {
	err := builder.checkRegions(
		func(h *MapHolder) EntityID { return h.Root },
		func(h *MapHolder) EntityID { return h.TrafficLanes },
	)
	if err != nil {
		return nil, err
	}
	root, trafficRegion := builder.holder.Root, builder.holder.TrafficLanes

	trafficLanes := builder.scene.Lanes(trafficRegion)
	lanes := uniqueLanes(builder.scene.Lanes(root), trafficLanes)

	// Stop lines are validated before any lane is mutated
	stops := stopLines(builder.scene.Lines(root))
	err = prepareStopLines(builder.scene, stops)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare stop lines")
	}

	if builder.verbose {
		fmt.Printf("Resolving lanes (%d)...", len(lanes))
	}
	st := time.Now()
	err = resolveLanes(builder.scene, lanes, builder.connectionProximity, builder.useSpatialIndex)
	if err != nil {
		return nil, errors.Wrap(err, "Can't resolve lanes")
	}
	if builder.verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	builder.network = lanes

	for _, lane := range lanes {
		lane.IsTrafficLane = false
		lane.StopLine = nil
		lane.Section = nil
		lane.LeftLane = nil
		lane.RightLane = nil
	}
	for _, lane := range trafficLanes {
		lane.IsTrafficLane = true
	}

	if builder.verbose {
		fmt.Print("Preparing lane sections...")
	}
	st = time.Now()
	sections := builder.scene.LaneSections(trafficRegion)
	for _, section := range sections {
		section.SetLaneData(builder.scene.Lanes(section.ID))
	}
	if builder.verbose {
		fmt.Printf("Done in %v\n\tSections: %d\n", time.Since(st), len(sections))
	}

	if builder.verbose {
		fmt.Print("Binding stop lines...")
	}
	st = time.Now()
	bindStopLines(stops, lanes, builder.connectionProximity)
	if builder.verbose {
		fmt.Printf("Done in %v\n\tStop lines: %d\n", time.Since(st), len(stops))
	}
	return trafficLanes, nil
}

// BuildIntersections aggregates intersections under the intersections region
func (builder *Builder) BuildIntersections() ([]*MapIntersection, error) {
	err := builder.checkRegions(
		func(h *MapHolder) EntityID { return h.Intersections },
	)
	if err != nil {
		return nil, err
	}
	if builder.verbose {
		fmt.Print("Preparing intersections...")
	}
	st := time.Now()
	intersections := builder.scene.Intersections(builder.holder.Intersections)
	for _, intersection := range intersections {
		err := intersection.SetIntersectionData(builder.scene, builder.scene.Lanes(intersection.ID), builder.network)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't prepare intersection '%s'", intersection.ID)
		}
	}
	if builder.verbose {
		fmt.Printf("Done in %v\n\tIntersections: %d\n", time.Since(st), len(intersections))
	}
	return intersections, nil
}

// Build runs lanes build then intersections build
func (builder *Builder) Build() (*Topology, error) {
	lanes, err := builder.BuildLanes()
	if err != nil {
		return nil, err
	}
	intersections, err := builder.BuildIntersections()
	if err != nil {
		return nil, err
	}
	network := make([]*MapLane, len(builder.network))
	copy(network, builder.network)
	return &Topology{
		Lanes:               lanes,
		Network:             network,
		Intersections:       intersections,
		ConnectionProximity: builder.connectionProximity,
	}, nil
}

// TotalLaneLength sums straight distances between first and last world points of lanes.
// Intermediate points are ignored: it is a capacity metric, not a path length.
func TotalLaneLength(lanes []*MapLane) float64 {
	totalLaneDist := 0.0
	for _, lane := range lanes {
		totalLaneDist += lane.StraightLength()
	}
	return totalLaneDist
}

// uniqueLanes concatenates lane lists dropping repeated lanes
func uniqueLanes(lists ...[]*MapLane) []*MapLane {
	seen := make(map[*MapLane]struct{})
	result := []*MapLane{}
	for _, list := range lists {
		for _, lane := range list {
			if _, ok := seen[lane]; ok {
				continue
			}
			seen[lane] = struct{}{}
			result = append(result, lane)
		}
	}
	return result
}
