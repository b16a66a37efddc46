package nav

import "errors"

var (
	// ErrInvalidGeometry reports a vertex set that cannot describe a path,
	// either fewer than two points or a malformed vertex buffer.
	ErrInvalidGeometry = errors.New("nav: invalid geometry")
	// ErrDegeneratePath reports a path whose points all coincide.
	ErrDegeneratePath = errors.New("nav: degenerate path")
	// ErrUnboundFollower reports a follower advanced without a path model.
	ErrUnboundFollower = errors.New("nav: follower has no path")
)
