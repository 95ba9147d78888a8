package interfaces

import "context"

// Reporter surfaces failures to the user.
type Reporter interface {
	Report(ctx context.Context, err error)
}
