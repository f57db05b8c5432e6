package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
)

func TestLogin(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "EDITOR", Password: testPassword}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.Token == "" {
		t.Error("expected a token")
	}
	if resp.Msg.User.Role != models.RoleEditor {
		t.Errorf("expected EDITOR, got %s", resp.Msg.User.Role)
	}
	if !resp.Msg.Capabilities.CanWrite || resp.Msg.Capabilities.CanAdminister {
		t.Errorf("unexpected capabilities: %+v", resp.Msg.Capabilities)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{Username: "ADMIN", Password: "wrong-password"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{Username: "nobody", Password: testPassword}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGetCurrentUser(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.auth.GetCurrentUser(ctx, as(ts, models.RoleViewer, &api.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Msg.User.Username != "VIEWER" {
		t.Errorf("expected VIEWER, got %s", resp.Msg.User.Username)
	}
	if resp.Msg.Capabilities.CanWrite {
		t.Error("viewer must not be able to write")
	}

	_, err = ts.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestRequireAuth(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	_, err := ts.bills.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	req := connect.NewRequest(&api.ListBillsRequest{})
	req.Header().Set("Authorization", "Bearer not-a-token")
	_, err = ts.bills.ListBills(ctx, req)
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestRoleChangeAppliesImmediately(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	_, err := ts.users.UpdateUser(ctx, as(ts, models.RoleAdmin, &api.UpdateUserRequest{
		ID:       ts.ids[models.RoleEditor],
		Username: "EDITOR",
		FullName: "Demoted",
		Role:     models.RoleViewer,
	}))
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	// The editor's existing token now only grants viewer rights.
	_, err = ts.companies.AddCompany(ctx, as(ts, models.RoleEditor, &api.AddCompanyRequest{Name: "NewCo"}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = ts.users.DeleteUser(ctx, as(ts, models.RoleAdmin, &api.DeleteUserRequest{ID: ts.ids[models.RoleEditor]}))
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	_, err = ts.bills.ListBills(ctx, as(ts, models.RoleEditor, &api.ListBillsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}
