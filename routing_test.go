package lanetopo

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestLanePath(t *testing.T) {
	scene, holder := newTestScene(t)
	mustLane(t, scene, "traffic", "a", [3]float64{0, 0, 0}, [3]float64{10, 0, 0})
	mustLane(t, scene, "traffic", "b", [3]float64{10, 0, 0}, [3]float64{20, 0, 0})
	mustLane(t, scene, "traffic", "c", [3]float64{20, 0, 0}, [3]float64{30, 0, 0})
	// Longer detour from 'a' to 'c'
	mustLane(t, scene, "traffic", "detour", [3]float64{10, 0, 0}, [3]float64{15, 0, 20}, [3]float64{20, 0, 0})
	mustLane(t, scene, "traffic", "isolated", [3]float64{100, 0, 100}, [3]float64{110, 0, 100})
	topology, err := mustBuilder(t, scene, holder).Build()
	require.NoError(t, err)

	graph, err := topology.RoutingGraph()
	require.NoError(t, err)

	cost, path, err := graph.ShortestLanePath("a", "c")
	require.NoError(t, err)
	assert.Equal(t, []EntityID{"a", "b", "c"}, path)
	assert.InDelta(t, 20.0, cost, 1e-9)

	cost, path, err = graph.ShortestLanePath("a", "a")
	require.NoError(t, err)
	assert.Equal(t, []EntityID{"a"}, path)
	assert.Zero(t, cost)

	cost, path, err = graph.ShortestLanePath("a", "isolated")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, -1.0, cost)

	_, _, err = graph.ShortestLanePath("a", "unknown")
	assert.True(t, errors.Is(err, ErrLaneNotFound))

	require.NoError(t, graph.ExportShortcutsToFile(filepath.Join(t.TempDir(), "shortcuts.csv")))
}

func TestLaneLabelStable(t *testing.T) {
	assert.Equal(t, laneLabel("lane"), laneLabel("lane"))
	assert.NotEqual(t, laneLabel("lane_1"), laneLabel("lane_2"))
	assert.GreaterOrEqual(t, laneLabel("lane"), int64(0))
}
