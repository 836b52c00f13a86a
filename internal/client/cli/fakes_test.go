package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/UhCardoso/travel-manager-front/internal/client/metrics"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/router"
	"github.com/UhCardoso/travel-manager-front/internal/client/session"
	"github.com/UhCardoso/travel-manager-front/internal/client/storage"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

// ---- output capture ----

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	color.NoColor = true

	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func joined(lines *[]string) string { return strings.Join(*lines, "\n") }

// ---- input stubs ----

// stubInputs answers text prompts from texts and password prompts from
// passwords, in order.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(prompt string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			t.Fatalf("unexpected password prompt %q", prompt)
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// ---- fake services ----

type fakeAuth struct {
	store *session.Store

	User      *models.User
	Token     string
	Err       error
	LogoutErr error

	Calls        []string
	LastEmail    string
	LastPassword string
	LastName     string
}

func (f *fakeAuth) signIn(ctx context.Context, u *models.User) (*models.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	token := f.Token
	if token == "" {
		token = "tok"
	}
	if err := f.store.SetAuth(ctx, token, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.Calls = append(f.Calls, "login")
	f.LastEmail, f.LastPassword = email, password
	return f.signIn(ctx, f.User)
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password, confirmation string) (*models.User, error) {
	f.Calls = append(f.Calls, "register")
	f.LastName, f.LastEmail, f.LastPassword = name, email, password
	return f.signIn(ctx, f.User)
}

func (f *fakeAuth) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	f.Calls = append(f.Calls, "admin-login")
	f.LastEmail, f.LastPassword = email, password
	u := *f.User
	u.Role = models.RoleAdmin
	return f.signIn(ctx, &u)
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.Calls = append(f.Calls, "logout")
	if err := f.store.ClearAuth(ctx); err != nil {
		return err
	}
	return f.LogoutErr
}

func (f *fakeAuth) Restore(ctx context.Context) error {
	f.Calls = append(f.Calls, "restore")
	return f.store.Initialize(ctx)
}

type fakeTravel struct {
	Page *models.Page[models.TravelRequest]
	One  *models.TravelRequest
	Err  error

	Calls      []string
	LastPage   int
	LastID     int64
	LastCreate models.CreateTravelRequest
}

func (f *fakeTravel) Create(_ context.Context, req models.CreateTravelRequest) (*models.TravelRequest, error) {
	f.Calls = append(f.Calls, "create")
	f.LastCreate = req
	return f.One, f.Err
}

func (f *fakeTravel) List(_ context.Context, page int) (*models.Page[models.TravelRequest], error) {
	f.Calls = append(f.Calls, "list")
	f.LastPage = page
	return f.Page, f.Err
}

func (f *fakeTravel) Details(_ context.Context, id int64) (*models.TravelRequest, error) {
	f.Calls = append(f.Calls, "details")
	f.LastID = id
	return f.One, f.Err
}

func (f *fakeTravel) Cancel(_ context.Context, id int64) (*models.TravelRequest, error) {
	f.Calls = append(f.Calls, "cancel")
	f.LastID = id
	return f.One, f.Err
}

type fakeAdmin struct {
	Page *models.Page[models.TravelRequest]
	One  *models.TravelRequest
	Err  error

	Calls      []string
	LastID     int64
	LastStatus models.Status
}

func (f *fakeAdmin) List(_ context.Context, page int) (*models.Page[models.TravelRequest], error) {
	f.Calls = append(f.Calls, "list")
	return f.Page, f.Err
}

func (f *fakeAdmin) Approve(ctx context.Context, id int64) (*models.TravelRequest, error) {
	return f.SetStatus(ctx, id, models.StatusApproved)
}

func (f *fakeAdmin) Reject(ctx context.Context, id int64) (*models.TravelRequest, error) {
	return f.SetStatus(ctx, id, models.StatusRejected)
}

func (f *fakeAdmin) SetStatus(_ context.Context, id int64, status models.Status) (*models.TravelRequest, error) {
	f.Calls = append(f.Calls, "status")
	f.LastID, f.LastStatus = id, status
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.TravelRequest{ID: id, Status: status}, nil
}

type fakeDestinations struct {
	Ret       []models.Destination
	Err       error
	LastQuery string
}

func (f *fakeDestinations) Search(_ context.Context, q string) ([]models.Destination, error) {
	f.LastQuery = q
	return f.Ret, f.Err
}

// ---- app ----

type testApp struct {
	*App
	auth   *fakeAuth
	travel *fakeTravel
	admin  *fakeAdmin
	dest   *fakeDestinations
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(session.NewSQLiteStorage(db), nil)
	guard := router.NewGuard(store)

	ta := &testApp{
		auth:   &fakeAuth{store: store, User: &models.User{ID: 1, Name: "Ann", Email: "ann@example.com"}},
		travel: &fakeTravel{},
		admin:  &fakeAdmin{},
		dest:   &fakeDestinations{},
	}
	ta.App = &App{
		log:                logging.Nop(),
		metrics:            metrics.New(),
		session:            store,
		guard:              guard,
		nav:                router.NewNavigator(guard, nil),
		authService:        ta.auth,
		travelService:      ta.travel,
		adminService:       ta.admin,
		destinationService: ta.dest,
		reader:             bufio.NewReader(strings.NewReader("")),
		out:                io.Discard,
		now:                time.Now,
	}
	return ta
}

func (ta *testApp) signInAs(t *testing.T, u *models.User) {
	t.Helper()
	require.NoError(t, ta.session.SetAuth(context.Background(), "tok", u))
}
