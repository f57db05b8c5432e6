package service

import (
	"context"
	"errors"
	"strconv"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/middleware"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
)

var (
	errNotAuthenticated = errors.New("sign in required")
	errReadOnly         = errors.New("your role does not allow changes")
	errAdminOnly        = errors.New("only administrators can do this")
	errInvalidMonth     = errors.New("month must be between 1 and 12")

	// errSyncFailed is all a client learns about a storage failure.
	errSyncFailed = errors.New("sync failed")
)

// InvalidRowsHeader carries the number of rejected rows on a failed import.
const InvalidRowsHeader = "Invalid-Rows"

// toConnectError classifies domain errors into connect codes. It is the only
// place that decides what a client sees.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var batch *importer.BatchError
	switch {
	case errors.As(err, &batch):
		ce := connect.NewError(connect.CodeInvalidArgument, err)
		ce.Meta().Set(InvalidRowsHeader, strconv.Itoa(batch.Invalid()))
		return ce
	case errors.Is(err, state.ErrInvalid),
		errors.Is(err, importer.ErrNoRows),
		errors.Is(err, importer.ErrUnsupportedFormat),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidRole):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, state.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, state.ErrConflict), errors.Is(err, auth.ErrUsernameTaken):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, state.ErrSelfDelete):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, state.ErrSync):
		return connect.NewError(connect.CodeUnavailable, errSyncFailed)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// requireRead gates an RPC on the caller's capabilities. Unknown roles
// read nothing.
func requireRead(ctx context.Context) error {
	if middleware.GetUser(ctx) == nil {
		return connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	if !middleware.GetCapabilities(ctx).CanRead {
		return connect.NewError(connect.CodePermissionDenied, errReadOnly)
	}
	return nil
}

func requireWrite(ctx context.Context) error {
	if middleware.GetUser(ctx) == nil {
		return connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	if !middleware.GetCapabilities(ctx).CanWrite {
		return connect.NewError(connect.CodePermissionDenied, errReadOnly)
	}
	return nil
}

func requireAdmin(ctx context.Context) error {
	if middleware.GetUser(ctx) == nil {
		return connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	if !middleware.GetCapabilities(ctx).CanAdminister {
		return connect.NewError(connect.CodePermissionDenied, errAdminOnly)
	}
	return nil
}
