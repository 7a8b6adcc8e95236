package lanetopo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func resolvedLane(id EntityID, pts ...r3.Vec) *MapLane {
	lane := NewMapLane(id)
	lane.LocalPositions = pts
	lane.WorldPositions = append([]r3.Vec{}, pts...)
	return lane
}

func TestSetLaneDataOrdering(t *testing.T) {
	// Travel direction is +X, so left is +Z in the ground plane
	right := resolvedLane("right", r3.Vec{X: 0, Z: -3.5}, r3.Vec{X: 50, Z: -3.5})
	middle := resolvedLane("middle", r3.Vec{X: 0, Z: 0}, r3.Vec{X: 50, Z: 0})
	left := resolvedLane("left", r3.Vec{X: 0, Z: 3.5}, r3.Vec{X: 50, Z: 3.5})

	section := NewMapLaneSection("section")
	section.SetLaneData([]*MapLane{middle, right, left})

	require.Equal(t, []*MapLane{left, middle, right}, section.Lanes)
	assert.InDelta(t, 7.0, section.Width, 1e-9)
	assert.Nil(t, left.LeftLane)
	assert.Equal(t, middle, left.RightLane)
	assert.Equal(t, left, middle.LeftLane)
	assert.Equal(t, right, middle.RightLane)
	assert.Nil(t, right.RightLane)
	for _, lane := range section.Lanes {
		assert.Equal(t, section, lane.Section)
	}
}

func TestSetLaneDataSkipsUnresolved(t *testing.T) {
	resolved := resolvedLane("resolved", r3.Vec{}, r3.Vec{X: 10})
	unresolved := NewMapLane("unresolved", [3]float64{0, 0, 0}, [3]float64{10, 0, 0})

	section := NewMapLaneSection("section")
	section.SetLaneData([]*MapLane{unresolved, resolved})
	assert.Equal(t, []*MapLane{resolved}, section.Lanes)
	assert.Zero(t, section.Width)
	assert.Nil(t, unresolved.Section)
	assert.Nil(t, resolved.LeftLane)
	assert.Nil(t, resolved.RightLane)

	section.SetLaneData(nil)
	assert.Empty(t, section.Lanes)
}

func TestSetLaneDataKeepsConnectivity(t *testing.T) {
	a := resolvedLane("a", r3.Vec{}, r3.Vec{X: 10})
	b := resolvedLane("b", r3.Vec{X: 10}, r3.Vec{X: 20})
	a.NextConnectedLanes = []*MapLane{b}

	section := NewMapLaneSection("section")
	section.SetLaneData([]*MapLane{a})
	assert.Equal(t, []*MapLane{b}, a.NextConnectedLanes)
}
