package lanetopo

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// TransformResolver resolves local points of a scene entity into the world frame
type TransformResolver interface {
	ResolveWorldPoint(id EntityID, local r3.Vec) (r3.Vec, error)
}

// SceneProvider is the authoring scene: spatial hierarchy plus map entities attached to it.
// Enumerations walk the sub-tree of the region depth-first (pre-order), region itself included.
type SceneProvider interface {
	TransformResolver
	Exists(id EntityID) bool
	Lanes(region EntityID) []*MapLane
	LaneSections(region EntityID) []*MapLaneSection
	Lines(region EntityID) []*MapLine
	Intersections(region EntityID) []*MapIntersection
}

// MapHolder references regions of the map in the scene.
// Root is the reference lanes region and the map root at once: every lane under it
// (traffic and reference ones) takes part in connectivity and every stop line under it is bound.
// Lanes under TrafficLanes are traffic lanes.
type MapHolder struct {
	Root          EntityID `json:"root"`
	TrafficLanes  EntityID `json:"traffic_lanes"`
	Intersections EntityID `json:"intersections"`
}

// Frame is a local transform relative to the parent frame
type Frame struct {
	Position r3.Vec
	// Euler angles in degrees applied around Z, then X, then Y
	Rotation r3.Vec
	Scale    r3.Vec
}

// IdentityFrame returns frame which doesn't change points
func IdentityFrame() Frame {
	return Frame{Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// TranslationFrame returns frame which only moves points
func TranslationFrame(x, y, z float64) Frame {
	frame := IdentityFrame()
	frame.Position = r3.Vec{X: x, Y: y, Z: z}
	return frame
}

// Apply transforms point from this frame into the parent frame: scale, rotate, then translate
func (frame Frame) Apply(p r3.Vec) r3.Vec {
	v := r3.Vec{X: p.X * frame.Scale.X, Y: p.Y * frame.Scale.Y, Z: p.Z * frame.Scale.Z}
	if frame.Rotation.Z != 0 {
		v = r3.NewRotation(degreesToRadians(frame.Rotation.Z), r3.Vec{Z: 1}).Rotate(v)
	}
	if frame.Rotation.X != 0 {
		v = r3.NewRotation(degreesToRadians(frame.Rotation.X), r3.Vec{X: 1}).Rotate(v)
	}
	if frame.Rotation.Y != 0 {
		v = r3.NewRotation(degreesToRadians(frame.Rotation.Y), r3.Vec{Y: 1}).Rotate(v)
	}
	return r3.Add(v, frame.Position)
}

// degreesToRadians r = deg * pi / 180
func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// SceneNode is a node of the spatial hierarchy. Map entities attached to it share its ID and frame
type SceneNode struct {
	ID       EntityID
	Frame    Frame
	Parent   *SceneNode
	Children []*SceneNode

	Lane         *MapLane
	Line         *MapLine
	LaneSection  *MapLaneSection
	Intersection *MapIntersection
}

// Scene is an in-memory SceneProvider
type Scene struct {
	nodes map[EntityID]*SceneNode
	roots []*SceneNode
}

// NewScene returns empty scene
func NewScene() *Scene {
	return &Scene{
		nodes: make(map[EntityID]*SceneNode),
	}
}

// AddNode adds node under given parent. Empty parent makes a top-level node
func (scene *Scene) AddNode(parent, id EntityID, frame Frame) (*SceneNode, error) {
	if id == "" {
		return nil, errors.New("empty node ID")
	}
	if _, ok := scene.nodes[id]; ok {
		return nil, errors.Errorf("duplicate node ID '%s'", id)
	}
	node := &SceneNode{
		ID:    id,
		Frame: frame,
	}
	if parent == "" {
		scene.roots = append(scene.roots, node)
	} else {
		parentNode, ok := scene.nodes[parent]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownEntity, "parent '%s' of node '%s'", parent, id)
		}
		node.Parent = parentNode
		parentNode.Children = append(parentNode.Children, node)
	}
	scene.nodes[id] = node
	return node, nil
}

// AddLane adds node with lane attached
func (scene *Scene) AddLane(parent, id EntityID, frame Frame, localPositions ...[3]float64) (*MapLane, error) {
	node, err := scene.AddNode(parent, id, frame)
	if err != nil {
		return nil, err
	}
	node.Lane = NewMapLane(id, localPositions...)
	return node.Lane, nil
}

// AddLine adds node with line attached
func (scene *Scene) AddLine(parent, id EntityID, frame Frame, lineType LineType, localPositions ...[3]float64) (*MapLine, error) {
	node, err := scene.AddNode(parent, id, frame)
	if err != nil {
		return nil, err
	}
	node.Line = NewMapLine(id, lineType, localPositions...)
	return node.Line, nil
}

// AddLaneSection adds node with lane section attached
func (scene *Scene) AddLaneSection(parent, id EntityID, frame Frame) (*MapLaneSection, error) {
	node, err := scene.AddNode(parent, id, frame)
	if err != nil {
		return nil, err
	}
	node.LaneSection = NewMapLaneSection(id)
	return node.LaneSection, nil
}

// AddIntersection adds node with intersection attached
func (scene *Scene) AddIntersection(parent, id EntityID, frame Frame) (*MapIntersection, error) {
	node, err := scene.AddNode(parent, id, frame)
	if err != nil {
		return nil, err
	}
	node.Intersection = NewMapIntersection(id)
	return node.Intersection, nil
}

// Node returns node with given ID
func (scene *Scene) Node(id EntityID) (*SceneNode, bool) {
	node, ok := scene.nodes[id]
	return node, ok
}

// Exists checks if node with given ID is in the scene
func (scene *Scene) Exists(id EntityID) bool {
	_, ok := scene.nodes[id]
	return ok
}

// ResolveWorldPoint applies frames of the entity and all of its ancestors to the local point
func (scene *Scene) ResolveWorldPoint(id EntityID, local r3.Vec) (r3.Vec, error) {
	node, ok := scene.nodes[id]
	if !ok {
		return r3.Vec{}, errors.Wrapf(ErrUnknownEntity, "'%s'", id)
	}
	pt := local
	for ; node != nil; node = node.Parent {
		pt = node.Frame.Apply(pt)
	}
	return pt, nil
}

// walk visits sub-tree of the region in pre-order
func (scene *Scene) walk(region EntityID, visit func(node *SceneNode)) {
	root, ok := scene.nodes[region]
	if !ok {
		return
	}
	stack := []*SceneNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}

// Lanes returns lanes in sub-tree of the region
func (scene *Scene) Lanes(region EntityID) []*MapLane {
	lanes := []*MapLane{}
	scene.walk(region, func(node *SceneNode) {
		if node.Lane != nil {
			lanes = append(lanes, node.Lane)
		}
	})
	return lanes
}

// LaneSections returns lane sections in sub-tree of the region
func (scene *Scene) LaneSections(region EntityID) []*MapLaneSection {
	sections := []*MapLaneSection{}
	scene.walk(region, func(node *SceneNode) {
		if node.LaneSection != nil {
			sections = append(sections, node.LaneSection)
		}
	})
	return sections
}

// Lines returns lines in sub-tree of the region
func (scene *Scene) Lines(region EntityID) []*MapLine {
	lines := []*MapLine{}
	scene.walk(region, func(node *SceneNode) {
		if node.Line != nil {
			lines = append(lines, node.Line)
		}
	})
	return lines
}

// Intersections returns intersections in sub-tree of the region
func (scene *Scene) Intersections(region EntityID) []*MapIntersection {
	intersections := []*MapIntersection{}
	scene.walk(region, func(node *SceneNode) {
		if node.Intersection != nil {
			intersections = append(intersections, node.Intersection)
		}
	})
	return intersections
}
