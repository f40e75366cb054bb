package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrInvalidTransition: the target is not reachable from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrTerminalState: the complaint is CLOSED or WITHDRAWN.
	ErrTerminalState = errors.New("complaint is in a terminal state")
	// ErrStatusConflict: another writer committed since the complaint was read.
	ErrStatusConflict = errors.New("complaint changed concurrently")
)
