package service

import "errors"

var (
	// ErrSourceUnavailable indicates a document could not be read while creating a node.
	// No node is created when it is returned.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrEmptyLabel indicates a group label that is blank.
	ErrEmptyLabel = errors.New("label cannot be empty")

	// ErrRootSelected indicates an operation that cannot apply to the tree root.
	ErrRootSelected = errors.New("operation not allowed on the root")

	// ErrNothingToRestore indicates there is no recorded deletion.
	ErrNothingToRestore = errors.New("nothing to restore")

	// ErrRestoreExpired indicates the last deletion is older than the restore window.
	ErrRestoreExpired = errors.New("restore window has expired")
)
