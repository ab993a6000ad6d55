package main

import (
	"flag"
	"os"

	"github.com/janpfeifer/TuoLaJi/internal/frontend"
	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

func main() {
	// Initialize klog for WASM, forcing logs to stderr (console)
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "true")
	klog.SetOutput(os.Stderr)
	klog.Infof("Tuo La Ji %s started", game.Version)

	// The scoreboard is a single page.
	app.Route("/", func() app.Composer { return &frontend.Home{} })

	// Initialize the global app state manager
	frontend.InitState()

	// When building for WEB (GOOS=js GOARCH=wasm), app.Run() executes the frontend logic
	app.RunWhenOnBrowser()
}
