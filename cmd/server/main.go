package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/TuoLaJi/internal/game"
	"github.com/janpfeifer/TuoLaJi/internal/server"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newRootCmd() *cobra.Command {
	v := server.NewViper()
	cmd := &cobra.Command{
		Use:     "server",
		Short:   "Serve the Tuo La Ji scoreboard",
		Long:    `Serves the Tuo La Ji scoreboard web app: the go-app page, the compiled WebAssembly and the static files under /web/.`,
		Version: game.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(v)
			if err != nil {
				return err
			}
			klog.V(1).Infof("Config: %+v", cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			started := make(chan string, 1)
			go func() {
				if addr, ok := <-started; ok {
					fmt.Printf("Tuo La Ji server listening on http://%s\n", addr)
				}
			}()
			return server.Run(ctx, cfg, started)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "Address to listen on (default localhost:8080)")
	flags.String("config", "", "Optional config file (yaml, json or toml)")
	flags.String("web-dir", "", "Directory served under /web/ (default web)")
	for key, name := range map[string]string{"addr": "addr", "config": "config", "web_dir": "web-dir"} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			klog.Fatalf("Failed to bind flag --%s: %v", name, err)
		}
	}

	// klog flags, e.g. -v=1
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	return cmd
}

func main() {
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		klog.Errorf("server: %v", err)
		os.Exit(1)
	}
}
