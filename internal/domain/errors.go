package domain

import "errors"

var (
	// ErrInvalidArgument is returned for malformed nodes, segments, lines and search parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateNode is returned when a node name is already registered in the graph.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrUnknownNode is returned when a segment references a node the graph does not own.
	ErrUnknownNode = errors.New("unknown node")
)
