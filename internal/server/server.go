package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/janpfeifer/GoTrick/internal/frontend"
	"github.com/janpfeifer/GoTrick/internal/trick"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Config holds the server settings.
type Config struct {
	// Addr to listen on. If empty, an automatic port on localhost is used.
	Addr string

	// WebDir is the directory served under /web/: css and card images.
	WebDir string
}

// ServerState is sent once the server is listening.
type ServerState struct {
	Address string
}

const shutdownTimeout = 5 * time.Second

// Handler returns the HTTP handler serving the trick page and its assets.
func Handler(cfg Config) http.Handler {
	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Trick{} })

	// The compiled webassembly is served natively by the go-app framework
	h := &app.Handler{
		Name:        "GoTrick",
		Title:       "GoTrick",
		Description: "A 21 card mind reading trick",
		Version:     trick.Version,
		Styles: []string{
			"/web/css/main.css",
		},
	}

	webDir := cfg.WebDir
	if webDir == "" {
		webDir = "web"
	}

	mux := http.NewServeMux()
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	mux.Handle("/", h)
	return mux
}

// Run starts the server and blocks until the context is canceled.
// If started is not nil, the listening address is sent on it.
func Run(ctx context.Context, cfg Config, started chan<- *ServerState) error {
	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}

	srv := &http.Server{
		Handler: Handler(cfg),
	}
	state := &ServerState{Address: listener.Addr().String()}

	errCh := make(chan error, 1)
	go func() {
		klog.Infof("Server started on %s", state.Address)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
			errCh <- err
		}
	}()
	if started != nil {
		started <- state
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
