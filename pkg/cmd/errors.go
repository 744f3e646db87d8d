package cmd

import "errors"

var (
	// ErrPermissionDenied is returned by Enforce when the actor's role set
	// fails the command's gate. It aborts the current command's handling of
	// the current event only; sibling commands and entries are unaffected.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidArgument is returned when a public operation receives a value
	// it forbids, such as a nil action or an unvalidated strip.
	ErrInvalidArgument = errors.New("invalid argument")
)
