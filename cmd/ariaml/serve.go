package main

import (
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariaml/ariaml-go"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr, pagesDir, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Address = addr
			}
			if pagesDir != "" {
				cfg.PagesDir = pagesDir
			}
			if staticDir != "" {
				cfg.StaticDir = staticDir
			}

			log := newLogger(cfg, os.Stdout)
			app, store := newApp(cfg, log)

			return app.Run(cfg.Address,
				ariaml.Logger(log),
				ariaml.WithContext(cmd.Context()),
				ariaml.ShutdownTimeout(cfg.ShutdownTimeout),
				ariaml.StartupHook(store.Warm),
				ariaml.ShutdownHook(store.Close),
				ariaml.OnReady(func(a net.Addr) {
					log.Info("serving pages", "addr", a.String(), "pages", cfg.PagesDir)
				}),
			)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default \":8080\")")
	cmd.Flags().StringVar(&pagesDir, "pages", "", "directory holding the markdown pages")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory served under the static prefix")
	return cmd
}
