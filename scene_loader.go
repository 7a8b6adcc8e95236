package lanetopo

import (
	"os"

	"github.com/invopop/yaml"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// sceneFile is the authored scene as stored on disk
type sceneFile struct {
	Holder *MapHolder  `json:"holder"`
	Nodes  []sceneNode `json:"nodes"`
}

type sceneNode struct {
	ID           EntityID    `json:"id"`
	Position     *[3]float64 `json:"position,omitempty"`
	Rotation     *[3]float64 `json:"rotation,omitempty"` // Euler degrees
	Scale        *[3]float64 `json:"scale,omitempty"`
	Lane         *sceneLane  `json:"lane,omitempty"`
	Line         *sceneLine  `json:"line,omitempty"`
	LaneSection  bool        `json:"lane_section,omitempty"`
	Intersection bool        `json:"intersection,omitempty"`
	Children     []sceneNode `json:"children,omitempty"`
}

type sceneLane struct {
	Speed  float64      `json:"speed,omitempty"`
	Points [][3]float64 `json:"points"`
}

type sceneLine struct {
	Type   string       `json:"type"`
	Points [][3]float64 `json:"points"`
}

// LoadSceneYAML reads authored scene from YAML file
func LoadSceneYAML(fname string) (*Scene, *MapHolder, error) {
	raw, err := os.ReadFile(fname)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can't read scene file")
	}
	return ParseSceneYAML(raw)
}

// ParseSceneYAML parses authored scene. Holder is nil when the scene doesn't declare one
func ParseSceneYAML(raw []byte) (*Scene, *MapHolder, error) {
	var file sceneFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, errors.Wrap(err, "Can't parse scene")
	}
	scene := NewScene()
	for i := range file.Nodes {
		if err := scene.addSceneNode("", &file.Nodes[i]); err != nil {
			return nil, nil, err
		}
	}
	return scene, file.Holder, nil
}

func (scene *Scene) addSceneNode(parent EntityID, raw *sceneNode) error {
	frame := IdentityFrame()
	if raw.Position != nil {
		frame.Position = vecFromArray(*raw.Position)
	}
	if raw.Rotation != nil {
		frame.Rotation = vecFromArray(*raw.Rotation)
	}
	if raw.Scale != nil {
		frame.Scale = vecFromArray(*raw.Scale)
	}
	node, err := scene.AddNode(parent, raw.ID, frame)
	if err != nil {
		return err
	}
	if raw.Lane != nil {
		node.Lane = NewMapLane(raw.ID, raw.Lane.Points...)
		node.Lane.Speed = raw.Lane.Speed
	}
	if raw.Line != nil {
		lineType := ParseLineType(raw.Line.Type)
		if lineType == LINE_UNKNOWN && raw.Line.Type != "" {
			Logf("line '%s' has unrecognized type '%s'", raw.ID, raw.Line.Type)
		}
		node.Line = NewMapLine(raw.ID, lineType, raw.Line.Points...)
	}
	if raw.LaneSection {
		node.LaneSection = NewMapLaneSection(raw.ID)
	}
	if raw.Intersection {
		node.Intersection = NewMapIntersection(raw.ID)
	}
	for i := range raw.Children {
		if err := scene.addSceneNode(raw.ID, &raw.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

func vecFromArray(arr [3]float64) r3.Vec {
	return r3.Vec{X: arr[0], Y: arr[1], Z: arr[2]}
}
