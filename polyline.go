package lanetopo

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// EntityID is identifier of an entity (and its spatial frame) in the scene
type EntityID string

// Polyline is an authored sequence of points attached to a scene entity
type Polyline struct {
	ID EntityID
	// Points in the frame of the owning entity. Never mutated by this package
	LocalPositions []r3.Vec
	// Points in the world frame. Recomputed on every resolve
	WorldPositions []r3.Vec
}

// resolveWorld recomputes world positions from local ones
func (pl *Polyline) resolveWorld(resolver TransformResolver) error {
	world, err := TransformToWorld(resolver, pl.ID, pl.LocalPositions)
	if err != nil {
		return errors.Wrapf(err, "Can't resolve world positions of '%s'", pl.ID)
	}
	pl.WorldPositions = pl.WorldPositions[:0]
	pl.WorldPositions = append(pl.WorldPositions, world...)
	return nil
}

// isResolved reports whether world positions correspond to local ones
func (pl *Polyline) isResolved() bool {
	return len(pl.LocalPositions) > 0 && len(pl.WorldPositions) == len(pl.LocalPositions)
}

// FirstWorld returns first world point. Panics on empty world positions
func (pl *Polyline) FirstWorld() r3.Vec {
	return pl.WorldPositions[0]
}

// LastWorld returns last world point. Panics on empty world positions
func (pl *Polyline) LastWorld() r3.Vec {
	return pl.WorldPositions[len(pl.WorldPositions)-1]
}
