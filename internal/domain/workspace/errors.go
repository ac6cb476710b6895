package workspace

import "errors"

var (
	// ErrWorkspaceNotFound indicates the workspace id doesn't exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrInvalidInput indicates invalid workspace input.
	ErrInvalidInput = errors.New("invalid workspace input")
	// ErrInvalidDocument indicates an unparseable or incomplete backup file.
	ErrInvalidDocument = errors.New("invalid workspace backup document")
)
