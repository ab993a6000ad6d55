package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/janpfeifer/TuoLaJi/internal/frontend"
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

var registerRoutes sync.Once

// NewHandler returns the handler serving the static files under /web/ and
// the go-app UI everywhere else.
func NewHandler(cfg Config) http.Handler {
	// Initialize global client state for server-side prerendering without panic
	frontend.InitState()

	// Register go-app routes so the server knows how to prerender them
	registerRoutes.Do(func() {
		app.Route("/", func() app.Composer { return &frontend.Home{} })
	})

	mux := http.NewServeMux()
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(cfg.WebDir))))
	mux.Handle("/", newAppHandler(cfg))
	return mux
}

// newAppHandler configures the go-app handler, which serves the compiled
// webassembly and the go-app runtime files.
func newAppHandler(cfg Config) *app.Handler {
	return &app.Handler{
		Name:        cfg.Name,
		ShortName:   cfg.ShortName,
		Description: cfg.Description,
		Lang:        "zh",
		Version:     game.Version,
		Styles: []string{
			"/web/css/pico.min.css", // Load pico.css
			"/web/css/main.css",     // Scoreboard layout
		},
	}
}

// Run starts the server and blocks until the context is canceled. If started
// is not nil, the address actually listened on is sent to it.
func Run(ctx context.Context, cfg Config, started chan<- string) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: NewHandler(cfg)}

	serveErr := make(chan error, 1)
	go func() {
		klog.Infof("Server started on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- ln.Addr().String()
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return err
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
