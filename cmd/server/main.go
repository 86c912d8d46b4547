package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/GoTrick/internal/server"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newRootCmd() *cobra.Command {
	var cfg server.Config

	cmd := &cobra.Command{
		Use:   "gotrick",
		Short: "Serve the GoTrick card trick",
		Long: "Serves the GoTrick web page: the WASM frontend, its HTML shell and the card images.\n" +
			"Build the frontend first with: GOOS=js GOARCH=wasm go build -o web/app.wasm ./cmd/wasm",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			started := make(chan *server.ServerState, 1)
			go func() {
				state := <-started
				fmt.Printf("GoTrick server listening on http://%s\n", state.Address)
			}()
			return server.Run(ctx, cfg, started)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", "", "Address to listen on (default: auto-port on localhost)")
	cmd.Flags().StringVar(&cfg.WebDir, "web-dir", "web", "Directory with app.wasm, css and card images, served under /web/")

	// klog flags (-v, -logtostderr, ...) are exposed as regular flags.
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)
	return cmd
}

func main() {
	defer klog.Flush()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
}
