package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

// maxRedirects bounds redirect chains; the route table never needs more than two hops.
const maxRedirects = 5

var ErrRedirectLoop = errors.New("too many redirects")

// Navigator keeps the current route and moves between routes through the guard.
type Navigator struct {
	guard *Guard
	log   logging.Logger

	mu      sync.Mutex
	current Decision
}

func NewNavigator(g *Guard, log logging.Logger) *Navigator {
	if log == nil {
		log = logging.Nop()
	}
	return &Navigator{guard: g, log: log}
}

// Navigate resolves path, following redirects, and makes the final route
// current. The previous route stays current when an error is returned.
func (n *Navigator) Navigate(ctx context.Context, path string) (Decision, error) {
	target := path
	for hop := 0; hop <= maxRedirects; hop++ {
		d := n.guard.Resolve(ctx, target)
		if d.Allow {
			n.mu.Lock()
			n.current = d
			n.mu.Unlock()
			n.log.Debug(ctx, "navigated", "requested", path, "route", d.Route.Name, "path", d.Route.Path)
			return d, nil
		}
		n.log.Debug(ctx, "redirected", "from", target, "to", d.Redirect)
		target = d.Redirect
	}
	return Decision{}, fmt.Errorf("navigate %s: %w", path, ErrRedirectLoop)
}

// Home sends the client back to the home route, or to the signed-in
// landing route when a session is still present. It is the target of the
// forced navigation after the backend rejects the session.
func (n *Navigator) Home(ctx context.Context) {
	if _, err := n.Navigate(ctx, PathHome); err != nil {
		n.log.Error(ctx, "navigate home failed", "error", err)
	}
}

// Current returns the route last navigated to.
func (n *Navigator) Current() Decision {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
