package lanetopo

import (
	"github.com/pkg/errors"
)

var (
	// ErrMissingMapRoot is returned when the scene can't supply the map holder regions
	ErrMissingMapRoot = errors.New("missing map root")
	// ErrMalformedLane is returned when lane has less than two local points
	ErrMalformedLane = errors.New("malformed lane")
	// ErrMalformedLine is returned when line has no local points
	ErrMalformedLine = errors.New("malformed line")
	// ErrInvalidProximity is returned for negative connection proximity
	ErrInvalidProximity = errors.New("connection proximity must be non-negative")
	// ErrUnknownEntity is returned when scene has no entity with given ID
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrLaneNotFound is returned when lane with given ID is not in the topology
	ErrLaneNotFound = errors.New("lane not found")
)
