package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wutup-dev/wutup/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port   int
		host   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tables over HTTP and WebSocket",
		Long: `Start the HTTP server.

Routes:
  GET  /events/{id}?names=a,b&rows=n
  GET  /guests/{id}?names=a,b&rows=n
  POST /render
  GET  /live       (WebSocket)
  GET  /metrics
  GET  /healthz

Examples:
  wutup serve
  wutup serve --port=9000
  wutup serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Server.Port = port
			}
			if host != "" {
				a.cfg.Server.Host = host
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprint(a.errOut, banner)
			a.success("Listening on http://%s", a.cfg.Address())

			srv := server.New(a.cfg, server.WithPretty(pretty))
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent HTML responses")

	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
