package internal

import "github.com/pkg/errors"

// Every failure the engine can hit is an invariant violation: either the input
// was degenerate, or the mesh bookkeeping is broken. None of them can be
// recovered from locally, so they are threaded straight up to Compute, which
// discards the whole diagram. The sentinels below identify the kind of
// violation; the wrapped message carries the details and a stack.
var (
	ErrEdgeOverfull = errors.New("edge already has two triangles")
	ErrNotFlippable = errors.New("edge must connect two triangles to flip")
	ErrUnrelated    = errors.New("edge is not part of triangle")
	ErrNotLocated   = errors.New("no triangle contains point")
	ErrIllegalEdge  = errors.New("illegal edge present after legalization")
	ErrCellOrder    = errors.New("cannot order an edge for voronoi cell")
	ErrDegenerate   = errors.New("degenerate input")
	ErrInvalidInput = errors.New("invalid input")
)

// Wrap one of the sentinels with a formatted message. errors.Is and
// errors.Cause both see through the result to the sentinel.
func failf(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}

// Prefix an error with the engine state it happened in.
func withState(err error, s state) error {
	return errors.WithMessage(err, s.String())
}
