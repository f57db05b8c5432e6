package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/calculator"
	"github.com/jay4webdev/Bill-Tracker/internal/middleware"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/internal/storage/sqlite"
	"github.com/jay4webdev/Bill-Tracker/internal/testutil"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

const testPassword = "password123"

// testServer bundles the clients and the state behind them.
type testServer struct {
	auth       apiconnect.AuthServiceClient
	bills      apiconnect.BillServiceClient
	categories apiconnect.CategoryServiceClient
	users      apiconnect.UserServiceClient
	companies  apiconnect.CompanyServiceClient

	state  *state.Controller
	clock  *testutil.FixedClock
	tokens map[models.Role]string
	ids    map[models.Role]string
}

// setupTestServer creates a test server over a temp SQLite database with
// one user per role already logged in. Today is 2024-05-15.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := testutil.NewFixedClock("2024-05-15")
	st := state.New(store, state.WithClock(clock), state.WithLogger(logger))
	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("failed to load state: %v", err)
	}

	authenticator := auth.NewPasswordAuthenticator(st).WithCost(bcrypt.MinCost)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	public := connect.WithInterceptors(middleware.OptionalAuth(jwtManager, st), middleware.LoggingInterceptor(logger))
	private := connect.WithInterceptors(middleware.RequireAuth(jwtManager, st), middleware.LoggingInterceptor(logger))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, logger), public))
	mux.Handle(apiconnect.NewBillServiceHandler(NewBillService(st, calculator.DefaultRates(), logger), private))
	mux.Handle(apiconnect.NewCategoryServiceHandler(NewCategoryService(st, logger), private))
	mux.Handle(apiconnect.NewUserServiceHandler(NewUserService(st, authenticator, logger), private))
	mux.Handle(apiconnect.NewCompanyServiceHandler(NewCompanyService(st, logger), private))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	ts := &testServer{
		auth:       apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		bills:      apiconnect.NewBillServiceClient(http.DefaultClient, server.URL),
		categories: apiconnect.NewCategoryServiceClient(http.DefaultClient, server.URL),
		users:      apiconnect.NewUserServiceClient(http.DefaultClient, server.URL),
		companies:  apiconnect.NewCompanyServiceClient(http.DefaultClient, server.URL),
		state:      st,
		clock:      clock,
		tokens:     make(map[models.Role]string),
		ids:        make(map[models.Role]string),
	}

	ctx := context.Background()
	for _, role := range []models.Role{models.RoleAdmin, models.RoleEditor, models.RoleViewer} {
		username := string(role)
		user, err := authenticator.Register(ctx, username, "Test "+username, testPassword, role)
		if err != nil {
			t.Fatalf("failed to register %s: %v", username, err)
		}
		resp, err := ts.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: username, Password: testPassword}))
		if err != nil {
			t.Fatalf("failed to log in %s: %v", username, err)
		}
		ts.tokens[role] = resp.Msg.Token
		ts.ids[role] = user.ID
	}

	return ts
}

// as builds a request carrying the token of a user with the given role.
func as[T any](ts *testServer, role models.Role, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+ts.tokens[role])
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
