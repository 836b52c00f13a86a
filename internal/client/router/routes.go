// Package router holds the client's route table and the guard that decides,
// before every navigation, whether the target may be shown or where to go
// instead.
package router

import (
	"net/url"
	"strings"
)

// Category groups routes by the session they require.
type Category int

const (
	// Public routes are for signed-out visitors (login, register, admin login).
	Public Category = iota
	UserProtected
	AdminProtected
	NotFound
)

func (c Category) String() string {
	switch c {
	case Public:
		return "public"
	case UserProtected:
		return "user"
	case AdminProtected:
		return "admin"
	default:
		return "not-found"
	}
}

const (
	PathHome                = "/"
	PathRegister            = "/register"
	PathAdminLogin          = "/admin"
	PathAdminTravelRequests = "/admin/travel-requests"
	PathUserTravelRequests  = "/users/travel-requests"
	PathCreateTravelRequest = "/users/create-travel-request"
)

// TitleSuffix is appended to every route title.
const TitleSuffix = " - Travel Manager"

type Route struct {
	Path     string
	Name     string
	Title    string
	Category Category
}

// DisplayTitle is the window/screen title for r.
func (r Route) DisplayTitle() string {
	if r.Title == "" {
		return ""
	}
	return r.Title + TitleSuffix
}

var routes = []Route{
	{Path: PathHome, Name: "home", Title: "User Login", Category: Public},
	{Path: PathRegister, Name: "register", Title: "Create Account", Category: Public},
	{Path: PathAdminLogin, Name: "admin-login", Title: "Admin Login", Category: Public},
	{Path: PathAdminTravelRequests, Name: "admin-travel-requests", Title: "Travel Requests", Category: AdminProtected},
	{Path: PathUserTravelRequests, Name: "user-travel-requests", Title: "My Travel Requests", Category: UserProtected},
	{Path: PathCreateTravelRequest, Name: "create-travel-request", Title: "New Travel Request", Category: UserProtected},
}

var notFound = Route{Name: "not-found", Category: NotFound}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Match finds the route for path. Query, fragment, a trailing slash and
// letter case are ignored. Unknown paths return the not-found route and false.
func Match(path string) (Route, bool) {
	p := normalize(path)
	for _, r := range routes {
		if strings.EqualFold(r.Path, p) {
			return r, true
		}
	}
	nf := notFound
	nf.Path = p
	return nf, false
}

func normalize(path string) string {
	if u, err := url.Parse(strings.TrimSpace(path)); err == nil {
		path = u.Path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
