package cli

import (
	"context"

	"github.com/thenoetrevino/circleback/internal/app"
)

type appContextKey struct{}

// WithApp returns a context carrying a prebuilt app. Commands run with this
// context use it instead of building their own; tests inject fixtures this way.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// GetCLIFromContext returns a CLI over the app stored in ctx, or a fresh one
// built from the user's config when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	return NewCLI(ctx)
}
