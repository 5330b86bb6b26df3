// Package solver runs the whole maze pipeline: compact the grid into a
// graph, search it, encode the route and check the answer on the board.
//
// Every failure is reported under one of three sentinels so callers can
// react without knowing which stage failed:
//
//   - ErrMalformedInput: the board or its endpoints are unusable.
//   - ErrDisconnected: no route exists between start and end.
//   - ErrInvariant: an internal consistency check failed.
//
// The stage error stays in the chain, so errors.Is also matches the
// stage-level sentinels of grid, graph, search and route. Context
// cancellation is returned unwrapped. On any error no directions are
// returned.
package solver
