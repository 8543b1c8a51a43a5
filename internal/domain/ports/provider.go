package ports

import "context"

// Provider is one upstream rate source. Fetch maps every failure mode --
// transport error, bad status, malformed body, unsupported pair -- to
// (0, false); it never surfaces a transport error to the caller. That
// uniform contract is what lets the selector treat providers
// interchangeably.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, from, to string) (float64, bool)
}
