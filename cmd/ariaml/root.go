package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	getenv     func(string) string
}

func (o *rootOptions) load() (Config, error) {
	return loadConfig(o.configPath, o.getenv)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{getenv: os.Getenv}

	cmd := &cobra.Command{
		Use:   "ariaml",
		Short: "Serve markdown pages as AriaML documents",
		Long: `ariaml serves a directory of markdown pages with YAML frontmatter.
Each response is negotiated: browsers get a full HTML page, AriaML clients
get the native document or a fragment for in-place navigation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	return cmd
}
