package lanetopo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var approxVec = cmpopts.EquateApprox(0, 1e-9)

func TestFrameApply(t *testing.T) {
	tt := []struct {
		name    string
		frame   Frame
		in      r3.Vec
		correct r3.Vec
	}{
		{"identity", IdentityFrame(), r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 1, Y: 2, Z: 3}},
		{"translation", TranslationFrame(10, 0, -5), r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 11, Y: 2, Z: -2}},
		{"scale", Frame{Scale: r3.Vec{X: 2, Y: 1, Z: 0.5}}, r3.Vec{X: 1, Y: 2, Z: 4}, r3.Vec{X: 2, Y: 2, Z: 2}},
		{"rotation z", Frame{Rotation: r3.Vec{Z: 90}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}}, r3.Vec{X: 1}, r3.Vec{Y: 1}},
		{"rotation x", Frame{Rotation: r3.Vec{X: 90}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}}, r3.Vec{Y: 1}, r3.Vec{Z: 1}},
		{"rotation y", Frame{Rotation: r3.Vec{Y: 90}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}}, r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{
			"scale rotate translate",
			Frame{Position: r3.Vec{X: 5}, Rotation: r3.Vec{Y: 180}, Scale: r3.Vec{X: 2, Y: 2, Z: 2}},
			r3.Vec{X: 1},
			r3.Vec{X: 3},
		},
	}
	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			res := test.frame.Apply(test.in)
			if diff := cmp.Diff(test.correct, res, approxVec); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSceneResolveWorldPoint(t *testing.T) {
	scene := NewScene()
	_, err := scene.AddNode("", "root", TranslationFrame(100, 0, 0))
	require.NoError(t, err)
	rotated := IdentityFrame()
	rotated.Rotation = r3.Vec{Y: 90}
	_, err = scene.AddNode("root", "rotated", rotated)
	require.NoError(t, err)
	_, err = scene.AddLane("rotated", "lane", TranslationFrame(0, 0, 1), [3]float64{0, 0, 0}, [3]float64{0, 0, 1})
	require.NoError(t, err)

	world, err := scene.ResolveWorldPoint("lane", r3.Vec{Z: 1})
	require.NoError(t, err)
	// Local (0,0,2) in 'rotated' frame is (2,0,0) in 'root' frame
	if diff := cmp.Diff(r3.Vec{X: 102}, world, approxVec); diff != "" {
		t.Errorf("ResolveWorldPoint() mismatch (-want +got):\n%s", diff)
	}

	_, err = scene.ResolveWorldPoint("unknown", r3.Vec{})
	assert.True(t, errors.Is(err, ErrUnknownEntity))
}

func TestSceneAddNodeErrors(t *testing.T) {
	scene := NewScene()
	_, err := scene.AddNode("", "", IdentityFrame())
	assert.Error(t, err)
	_, err = scene.AddNode("", "a", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddNode("", "a", IdentityFrame())
	assert.Error(t, err)
	_, err = scene.AddNode("missing", "b", IdentityFrame())
	assert.True(t, errors.Is(err, ErrUnknownEntity))
	assert.False(t, scene.Exists("b"))
	assert.True(t, scene.Exists("a"))
}

func TestSceneEnumerationOrder(t *testing.T) {
	scene := NewScene()
	_, err := scene.AddNode("", "root", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddLane("root", "a", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddNode("root", "group", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddLane("group", "b", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddLane("root", "c", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddLane("", "outside", IdentityFrame())
	require.NoError(t, err)

	ids := []EntityID{}
	for _, lane := range scene.Lanes("root") {
		ids = append(ids, lane.ID)
	}
	assert.Equal(t, []EntityID{"a", "b", "c"}, ids)
	assert.Len(t, scene.Lanes("group"), 1)
	assert.Empty(t, scene.Lanes("unknown"))
	assert.Empty(t, scene.Lines("root"))
}

const testSceneYAML = `
holder:
  root: map
  traffic_lanes: traffic
  intersections: junctions
nodes:
  - id: map
    children:
      - id: traffic
        position: [100, 0, 0]
        children:
          - id: section
            lane_section: true
            children:
              - id: lane_left
                lane:
                  speed: 13.9
                  points: [[0, 0, 0], [0, 0, 10]]
              - id: lane_right
                position: [3, 0, 0]
                lane:
                  points: [[0, 0, 0], [0, 0, 10]]
      - id: stop
        line:
          type: Stop
          points: [[98, 0, 10.2], [105, 0, 10.2]]
      - id: curb
        line:
          type: glitter
          points: [[0, 0, 0], [1, 0, 0]]
      - id: junctions
        children:
          - id: cross
            intersection: true
`

func TestParseSceneYAML(t *testing.T) {
	var messages []string
	defer SetLogger(Logf)
	SetLogger(func(format string, v ...interface{}) {
		messages = append(messages, format)
	})

	scene, holder, err := ParseSceneYAML([]byte(testSceneYAML))
	require.NoError(t, err)
	if diff := cmp.Diff(&MapHolder{Root: "map", TrafficLanes: "traffic", Intersections: "junctions"}, holder); diff != "" {
		t.Errorf("holder mismatch (-want +got):\n%s", diff)
	}

	lanes := scene.Lanes("traffic")
	require.Len(t, lanes, 2)
	assert.Equal(t, EntityID("lane_left"), lanes[0].ID)
	assert.InDelta(t, 13.9, lanes[0].Speed, 1e-9)
	assert.Len(t, scene.LaneSections("traffic"), 1)
	assert.Len(t, scene.Intersections("junctions"), 1)

	lines := scene.Lines("map")
	require.Len(t, lines, 2)
	assert.Equal(t, LINE_STOP, lines[0].LineType)
	assert.Equal(t, LINE_UNKNOWN, lines[1].LineType)
	assert.Len(t, messages, 1)

	world, err := scene.ResolveWorldPoint("lane_right", r3.Vec{Z: 10})
	require.NoError(t, err)
	if diff := cmp.Diff(r3.Vec{X: 103, Z: 10}, world, approxVec); diff != "" {
		t.Errorf("world point mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSceneYAMLBuild(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(testSceneYAML), 0o644))
	scene, holder, err := LoadSceneYAML(fname)
	require.NoError(t, err)

	topology, err := mustBuilder(t, scene, holder).Build()
	require.NoError(t, err)
	require.Len(t, topology.Lanes, 2)

	left, _ := topology.Lane("lane_left")
	right, _ := topology.Lane("lane_right")
	require.NotNil(t, left.Section)
	assert.Equal(t, []*MapLane{left, right}, left.Section.Lanes)
	assert.InDelta(t, 3.0, left.Section.Width, 1e-9)
	assert.Equal(t, right, left.RightLane)
	assert.Equal(t, left, right.LeftLane)
	assert.NotNil(t, left.StopLine)
	assert.NotNil(t, right.StopLine)

	_, _, err = LoadSceneYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSceneYAMLDuplicateID(t *testing.T) {
	_, _, err := ParseSceneYAML([]byte("nodes:\n  - id: a\n  - id: a\n"))
	assert.Error(t, err)
}
