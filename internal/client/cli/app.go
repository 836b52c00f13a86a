package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/UhCardoso/travel-manager-front/internal/client/client"
	"github.com/UhCardoso/travel-manager-front/internal/client/config"
	"github.com/UhCardoso/travel-manager-front/internal/client/geocoding"
	"github.com/UhCardoso/travel-manager-front/internal/client/metrics"
	"github.com/UhCardoso/travel-manager-front/internal/client/router"
	"github.com/UhCardoso/travel-manager-front/internal/client/services"
	"github.com/UhCardoso/travel-manager-front/internal/client/session"
	"github.com/UhCardoso/travel-manager-front/internal/client/storage"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db      *sql.DB
	client  client.Client
	metrics *metrics.Metrics

	session *session.Store
	guard   *router.Guard
	nav     *router.Navigator

	authService        services.AuthService
	travelService      services.TravelService
	adminService       services.AdminService
	destinationService services.DestinationService

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens local storage and wires every component of the client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	st := session.NewSQLiteStorage(db)
	store := session.NewStore(st, log.With("component", "session"))
	guard := router.NewGuard(store, router.WithAdminEmail(c.AdminEmail))
	nav := router.NewNavigator(guard, log.With("component", "router"))
	m := metrics.New()

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		metrics: m,
		session: store,
		guard:   guard,
		nav:     nav,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout,
		client.WithTokenSource(session.NewTokenSource(st)),
		client.WithUnauthorizedHandler(a.onUnauthorized),
		client.WithLogger(log.With("component", "client")),
		client.WithMetrics(m),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.client = apiClient

	geocoder := geocoding.NewNominatim(c.GeocoderURL,
		geocoding.WithLimit(c.GeocoderLimit),
		geocoding.WithLogger(log.With("component", "geocoder")),
		geocoding.WithMetrics(m),
	)

	a.authService = services.NewAuthService(apiClient, store, log.With("component", "auth"))
	a.travelService = services.NewTravelService(apiClient, log.With("component", "travel"))
	a.adminService = services.NewAdminService(apiClient, log.With("component", "admin"))
	a.destinationService = services.NewDestinationService(geocoder)

	return a, nil
}

// onUnauthorized runs when the backend rejects the session: drop it and
// force the client back to the home route.
func (a *App) onUnauthorized(ctx context.Context) {
	if err := a.session.ClearAuth(ctx); err != nil {
		a.log.Error(ctx, "clear rejected session", "error", err)
	}
	a.nav.Home(ctx)
	printlnFn("Your session has ended, please sign in again.")
}

// Run restores the previous session, lands on the matching route and
// serves the REPL until the user exits or input ends. Commands and prompts
// share one reader over in (stdin when nil). Passwords are still read from
// the terminal on stdin, so with piped input a password line may already sit
// in the reader's buffer.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	defer a.Close()

	ctx = session.NewContext(ctx, a.session)

	if err := a.restore(ctx); err != nil {
		return err
	}

	if in != nil {
		a.reader = bufio.NewReader(in)
	}

	printlnFn("Welcome to Travel Manager (type 'help' for commands)")
	a.goTo(ctx, router.PathHome)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) restore(ctx context.Context) error {
	if err := a.authService.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if a.session.IsAuthenticated() && !a.session.HasValidSession(a.now()) {
		a.log.Info(ctx, "persisted session expired")
		return a.session.ClearAuth(ctx)
	}
	return nil
}

func (a *App) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.guard.IsAdmin(a.session.User())
}

func (a *App) getStatus() string {
	s := a.nav.Current().Route.Path
	if u := a.session.User(); u != nil {
		role := "user"
		if a.isAdmin() {
			role = "admin"
		}
		s = fmt.Sprintf("%s %s %s", u.Email, role, s)
	}
	return fmt.Sprintf("(%s)", s)
}
