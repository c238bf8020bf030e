package tree

import "errors"

// Structural errors
var (
	// ErrCycleRejected indicates a move would make a node its own ancestor.
	ErrCycleRejected = errors.New("move would create a cycle")

	// ErrInvalidContainment indicates a parent/child pairing the hierarchy forbids,
	// such as a tab under a tab or a line under a tab for a different file.
	ErrInvalidContainment = errors.New("invalid containment")

	// ErrPathNotFound indicates an ancestor path segment does not exist.
	ErrPathNotFound = errors.New("path not found")
)

// Identity errors
var (
	// ErrUnknownNodeKind indicates a kind tag outside tree, group, tab and line.
	ErrUnknownNodeKind = errors.New("unknown node kind")

	// ErrMalformedID indicates an identifier that does not split into kind, token and version.
	ErrMalformedID = errors.New("malformed node id")

	// ErrDuplicateID indicates two nodes in one tree share a logical identity.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrUnknownColor indicates a color outside the fixed palette.
	ErrUnknownColor = errors.New("unknown color")
)
