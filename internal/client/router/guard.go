package router

import (
	"context"
	"strings"
	"time"

	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/session"
)

// DefaultAdminEmail is the legacy administrative address, consulted only for
// stored users that carry no role.
const DefaultAdminEmail = "admin@admin.com"

// SessionView is what the guard needs from the session.
type SessionView interface {
	HasValidSession(now time.Time) bool
	User() *models.User
}

// Decision is the outcome of one guard evaluation. Either Allow is true and
// Title is set, or Redirect names the path to go to instead.
type Decision struct {
	Route    Route
	Allow    bool
	Redirect string
	Title    string
}

// Guard decides navigation from the route category and the session. It is
// routing convenience only; the backend authorizes every privileged call.
type Guard struct {
	session    SessionView
	adminEmail string
	now        func() time.Time
}

type GuardOption func(*Guard)

// WithAdminEmail sets the fallback admin address; empty disables the fallback.
func WithAdminEmail(email string) GuardOption {
	return func(g *Guard) { g.adminEmail = strings.TrimSpace(email) }
}

// WithClock replaces time.Now (tests).
func WithClock(now func() time.Time) GuardOption {
	return func(g *Guard) { g.now = now }
}

// NewGuard builds a guard over s. A store attached to the navigation
// context with session.NewContext takes precedence over s.
func NewGuard(s SessionView, opts ...GuardOption) *Guard {
	g := &Guard{session: s, adminEmail: DefaultAdminEmail, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// IsAdmin reports whether u should be routed as an administrator. The role
// field wins; the email comparison is a fallback for users without a role.
func (g *Guard) IsAdmin(u *models.User) bool {
	if u == nil {
		return false
	}
	if u.Role != "" {
		return u.IsAdmin()
	}
	return g.adminEmail != "" && strings.EqualFold(strings.TrimSpace(u.Email), g.adminEmail)
}

// HomeFor is the landing route of a signed-in user.
func (g *Guard) HomeFor(u *models.User) string {
	if g.IsAdmin(u) {
		return PathAdminTravelRequests
	}
	return PathUserTravelRequests
}

func (g *Guard) view(ctx context.Context) SessionView {
	if s, ok := session.FromContext(ctx); ok {
		return s
	}
	return g.session
}

// Resolve evaluates a navigation to path.
func (g *Guard) Resolve(ctx context.Context, path string) Decision {
	route, ok := Match(path)
	if !ok {
		return Decision{Route: route, Redirect: PathHome}
	}

	var (
		user   *models.User
		signed bool
	)
	if s := g.view(ctx); s != nil {
		signed = s.HasValidSession(g.now())
		if signed {
			user = s.User()
		}
	}

	switch route.Category {
	case Public:
		if signed {
			return Decision{Route: route, Redirect: g.HomeFor(user)}
		}
	case UserProtected:
		if !signed {
			return Decision{Route: route, Redirect: PathHome}
		}
	case AdminProtected:
		if !signed {
			return Decision{Route: route, Redirect: PathAdminLogin}
		}
		if !g.IsAdmin(user) {
			return Decision{Route: route, Redirect: PathUserTravelRequests}
		}
	}

	return Decision{Route: route, Allow: true, Title: route.DisplayTitle()}
}
