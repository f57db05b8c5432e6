package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/middleware"
	"github.com/jay4webdev/Bill-Tracker/internal/service"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

const (
	apiPrefix    = "/billtracker.v1."
	templatePath = "/templates/bulk-upload.xlsx"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long: `Run the Connect API, the metrics endpoint and the static web app.

When storage.sync_interval is set, state is reloaded from the backend on
that interval so several servers can share one store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	handler, err := a.handler()
	if err != nil {
		return err
	}

	if interval := a.cfg.Storage.SyncInterval; interval > 0 {
		a.logger.Info("Periodic sync enabled", "interval", interval)
		go a.state.Run(ctx, interval)
	}

	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handler wires every route: Connect services, health, metrics, the
// upload template and the static web app.
func (a *app) handler() (http.Handler, error) {
	rates, err := a.cfg.CalculatorRates()
	if err != nil {
		return nil, err
	}
	tmpl, err := importer.Template()
	if err != nil {
		return nil, err
	}
	staticDir, err := filepath.Abs(a.cfg.Server.StaticPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static path: %w", err)
	}

	jwtManager := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	// Auth runs before logging so log lines carry the user.
	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(a.metrics),
		middleware.OptionalAuth(jwtManager, a.state),
		middleware.LoggingInterceptor(a.logger),
	)
	private := connect.WithInterceptors(
		middleware.MetricsInterceptor(a.metrics),
		middleware.RequireAuth(jwtManager, a.state),
		middleware.LoggingInterceptor(a.logger),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(service.NewAuthService(a.authenticator, jwtManager, a.logger), public))
	mux.Handle(apiconnect.NewBillServiceHandler(service.NewBillService(a.state, rates, a.logger), private))
	mux.Handle(apiconnect.NewCategoryServiceHandler(service.NewCategoryService(a.state, a.logger), private))
	mux.Handle(apiconnect.NewUserServiceHandler(service.NewUserService(a.state, a.authenticator, a.logger), private))
	mux.Handle(apiconnect.NewCompanyServiceHandler(service.NewCompanyService(a.state, a.logger), private))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	mux.Handle("GET /metrics", a.metrics.Handler())
	mux.HandleFunc("GET "+templatePath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", xlsxMIME)
		w.Header().Set("Content-Disposition", `attachment; filename="bulk-upload.xlsx"`)
		w.Write(tmpl)
	})

	a.logger.Info("Serving static files", "path", staticDir)
	mux.HandleFunc("/", staticHandler(staticDir))

	return h2c.NewHandler(middleware.LogRequests(a.logger, corsMiddleware(mux)), &http2.Server{}), nil
}

// staticHandler serves the web app. Unknown paths fall back to index.html
// so client-side routes survive a reload.
func staticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+service.InvalidRowsHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
