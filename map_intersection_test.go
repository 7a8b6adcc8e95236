package lanetopo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSetIntersectionData(t *testing.T) {
	scene := NewScene()
	_, err := scene.AddIntersection("", "cross", IdentityFrame())
	require.NoError(t, err)
	// South to north, straight
	ns, err := scene.AddLane("cross", "ns", IdentityFrame(), [3]float64{0, 0, -10}, [3]float64{0, 0, 10})
	require.NoError(t, err)
	// West to east, straight
	we, err := scene.AddLane("cross", "we", IdentityFrame(), [3]float64{-10, 0, 0}, [3]float64{10, 0, 0})
	require.NoError(t, err)
	// South to west, turning left. Shares start point with 'ns'
	sw, err := scene.AddLane("cross", "sw", IdentityFrame(), [3]float64{0, 0, -10}, [3]float64{0, 0, 2}, [3]float64{-10, 0, 2})
	require.NoError(t, err)

	stop := NewMapLine("stop", LINE_STOP, [3]float64{-2, 0, -10}, [3]float64{2, 0, -10})
	other := NewMapLine("other", LINE_STOP)
	feeder := resolvedLane("feeder", r3.Vec{Z: -30}, r3.Vec{Z: -10})
	feeder.StopLine = stop
	feeder.NextConnectedLanes = []*MapLane{ns, sw}
	unrelated := resolvedLane("unrelated", r3.Vec{X: 100}, r3.Vec{X: 200})
	unrelated.StopLine = other
	ns.StopLine = stop

	intersection, _ := scene.Node("cross")
	err = intersection.Intersection.SetIntersectionData(scene, scene.Lanes("cross"), []*MapLane{feeder, unrelated, ns, we, sw})
	require.NoError(t, err)
	data := intersection.Intersection

	assert.Equal(t, []*MapLane{ns, we, sw}, data.Lanes)
	assert.Equal(t, []*MapLine{stop}, data.StopLines)
	assert.Equal(t, TURN_STRAIGHT, ns.TurnType)
	assert.Equal(t, TURN_STRAIGHT, we.TurnType)
	assert.Equal(t, TURN_LEFT, sw.TurnType)

	// Mean of (0,-10), (0,10), (-10,0), (10,0), (0,-10), (-10,2)
	assert.InDelta(t, -10.0/6.0, data.Center.X, 1e-9)
	assert.InDelta(t, -8.0/6.0, data.Center.Z, 1e-9)

	assert.ElementsMatch(t, []*MapLane{we}, data.Conflicts[ns])
	assert.ElementsMatch(t, []*MapLane{ns, sw}, data.Conflicts[we])
	assert.ElementsMatch(t, []*MapLane{we}, data.Conflicts[sw])
}

func TestSetIntersectionDataMalformedLane(t *testing.T) {
	scene := NewScene()
	_, err := scene.AddIntersection("", "cross", IdentityFrame())
	require.NoError(t, err)
	_, err = scene.AddLane("cross", "bad", IdentityFrame(), [3]float64{0, 0, 0})
	require.NoError(t, err)
	intersection := NewMapIntersection("cross")
	err = intersection.SetIntersectionData(scene, scene.Lanes("cross"), nil)
	assert.True(t, errors.Is(err, ErrMalformedLane))
}

func TestSetIntersectionDataEmpty(t *testing.T) {
	intersection := NewMapIntersection("empty")
	err := intersection.SetIntersectionData(NewScene(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, intersection.Lanes)
	assert.Empty(t, intersection.StopLines)
	assert.Empty(t, intersection.Conflicts)
	assert.Equal(t, r3.Vec{}, intersection.Center)
}
