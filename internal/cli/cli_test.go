package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay4webdev/Bill-Tracker/internal/config"
	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "billtracker", cmd.Use)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{{"serve"}, {"import"}, {"template"}, {"summary"}, {"user", "create"}, {"user", "list"}}

	for _, path := range commands {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

// testConfig writes a YAML config using the file store under a temp dir.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "billtracker.yaml")
	content := "storage:\n  driver: file\n  path: " + filepath.Join(dir, "data") + "\n" +
		"server:\n  static_path: " + filepath.Join(dir, "static") + "\n" +
		"auth:\n  jwt_secret: test-secret\n  admin_password: admin-password\n" +
		"log:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTemplateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.xlsx")

	_, err := run(t, "template", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = importer.ReadXLSX(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestImportCommand(t *testing.T) {
	cfgPath := testConfig(t)
	csvPath := filepath.Join(t.TempDir(), "bills.csv")
	content := strings.Join([]string{
		strings.Join(importer.Columns, ","),
		"Acme Corp,John Smith,Licences,1250.00,USD,2024-05-01,2099-05-15,Software Subscription,SaaS",
		"Beta Ltd,Mia Wong,Rent,1000,MVR,2024-05-01,2099-06-01,Rent,",
	}, "\n")
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o600))

	out, err := run(t, "--config", cfgPath, "import", "--dry-run", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 bills are valid")

	out, err = run(t, "--config", cfgPath, "import", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 bills")

	out, err = run(t, "--config", cfgPath, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "Acme Corp")
}

func TestImportCommandRejectsBatch(t *testing.T) {
	cfgPath := testConfig(t)
	csvPath := filepath.Join(t.TempDir(), "bills.csv")
	content := strings.Join([]string{
		strings.Join(importer.Columns, ","),
		"Acme Corp,John Smith,Licences,1250.00,USD,2024-05-01,2099-05-15,,",
		"Beta Ltd,Mia Wong,Rent,lots,MVR,2024-05-01,2099-06-01,,",
	}, "\n")
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o600))

	out, err := run(t, "--config", cfgPath, "import", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 invalid rows")
	assert.Contains(t, out, "row 3")
}

func TestUserCreateCommand(t *testing.T) {
	cfgPath := testConfig(t)

	_, err := run(t, "--config", cfgPath, "user", "create", "-u", "sarah", "-p", "longenough", "-r", "editor")
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "sarah")
	assert.Contains(t, out, "EDITOR")

	_, err = run(t, "--config", cfgPath, "user", "create", "-u", "sarah", "-p", "longenough")
	require.Error(t, err, "usernames are unique")
	assert.Contains(t, err.Error(), "username already exists")
	assert.NotContains(t, err.Error(), "failed to create user: failed to create user")
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg, err := config.Load(testConfig(t))
	require.NoError(t, err)

	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNewAppSeedsEmptyStore(t *testing.T) {
	a := newTestApp(t)

	assert.Len(t, a.state.Users(), 1)
	assert.Len(t, a.state.Categories(), len(state.DefaultCategories()))
	assert.Equal(t, state.DefaultCompanies(), a.state.Companies())
}

func TestSeedGeneratesAdminPassword(t *testing.T) {
	cfg, err := config.Load(testConfig(t))
	require.NoError(t, err)
	cfg.Auth.AdminPassword = ""

	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	users := a.state.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.NotEmpty(t, users[0].PasswordHash)

	_, err = a.authenticator.Authenticate(context.Background(), "admin", "admin1234")
	assert.Error(t, err)
}

func TestHandlerRoutes(t *testing.T) {
	a := newTestApp(t)
	staticDir := a.cfg.Server.StaticPath
	require.NoError(t, os.MkdirAll(staticDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Bills</h1>"), 0o644))

	handler, err := a.handler()
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	get := func(path string) (*http.Response, string) {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	resp, body := get("/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)

	resp, _ = get("/templates/bulk-upload.xlsx")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxMIME, resp.Header.Get("Content-Type"))

	resp, body = get("/bills/some-client-route")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Bills", "unknown paths fall back to index.html")

	resp, _ = get("/billtracker.v1.NoSuchService/Method")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	authClient := apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	login, err := authClient.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Username: "admin",
		Password: "admin-password",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, login.Msg.Token)

	billClient := apiconnect.NewBillServiceClient(http.DefaultClient, server.URL)
	_, err = billClient.ListBills(context.Background(), connect.NewRequest(&api.ListBillsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	resp, body = get("/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "billtracker_rpc_requests_total")
}
