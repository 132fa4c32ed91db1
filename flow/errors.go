package flow

import "errors"

var (
	// ErrNoSources is raised when a node that needs upstream nodes is built
	// without any.
	ErrNoSources = errors.New("flow: node built without sources")

	// ErrSystemMismatch is raised when a node is built from nodes that belong
	// to different reactive systems.
	ErrSystemMismatch = errors.New("flow: sources belong to different reactive systems")

	// ErrClosed is raised when a closed or consumed node is used to build a new node.
	ErrClosed = errors.New("flow: node is closed")

	ErrMaxDepth       = errors.New("flow: propagation depth exceeded")
	ErrWrongGoroutine = errors.New("flow: reactive system used from another goroutine")
)
