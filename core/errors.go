package core

import "errors"

// Sentinel errors returned by the core graph façade.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	// spec.md §3: "no self-loops" is an invariant of the data model, not a
	// configurable option, so it is always rejected.
	ErrSelfLoop = errors.New("core: self-loops are not permitted")

	// ErrNotConnected is returned by invariants that require a connected
	// graph (diameter, radius, average shortest path length, connected
	// k-forcing) when the graph has more than one component.
	ErrNotConnected = errors.New("core: graph is not connected")
)
