package cli

import (
	"context"
	"fmt"

	"github.com/UhCardoso/travel-manager-front/internal/client/router"
)

// goTo navigates to path through the guard and announces where the client
// ended up. It returns the final route path, or "" on failure.
func (a *App) goTo(ctx context.Context, path string) string {
	d, err := a.nav.Navigate(ctx, path)
	if err != nil {
		report(err)
		return ""
	}
	if d.Title != "" {
		printlnFn(fmt.Sprintf("== %s ==", d.Title))
	}
	return d.Route.Path
}

// enter opens the view at path. It reports false when the guard sent the
// client elsewhere, in which case the view must not render.
func (a *App) enter(ctx context.Context, path string) bool {
	if a.nav.Current().Route.Path == path && a.nav.Current().Allow {
		// Re-check: the session may have changed since the last navigation.
		if d := a.guard.Resolve(ctx, path); d.Allow {
			return true
		}
	}
	return a.goTo(ctx, path) == path
}

// Go handles the "go <path>" command.
func (a *App) Go(ctx context.Context, path string) error {
	a.goTo(ctx, path)
	return nil
}

// landing sends a freshly signed-in user to their home route.
func (a *App) landing(ctx context.Context) {
	a.goTo(ctx, router.PathHome)
}
