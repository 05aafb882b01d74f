package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ariaml/ariaml-go/pkg/logger"
	"github.com/ariaml/ariaml-go/pkg/negotiate"
)

type renderOptions struct {
	pagesDir  string
	accept    string
	navCache  []string
	fragment  bool
	forceHTML bool
	headers   bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <route>",
		Short: "Render one route to stdout",
		Long: `render answers a single request against the pages directory without
starting a server. The negotiation headers are set from the flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if opts.pagesDir != "" {
				cfg.PagesDir = opts.pagesDir
			}

			app, _ := newApp(cfg, logger.NewNope())

			req, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}
			w := httptest.NewRecorder()
			app.ServeHTTP(w, req)

			return writeResponse(cmd.OutOrStdout(), args[0], w, opts.headers)
		},
	}

	cmd.Flags().StringVar(&opts.pagesDir, "pages", "", "directory holding the markdown pages")
	cmd.Flags().StringVar(&opts.accept, "accept", negotiate.TypeHTML, "Accept header")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "send the fragment flag header")
	cmd.Flags().BoolVar(&opts.forceHTML, "force-html", false, "ask for a text/html content type")
	cmd.Flags().StringSliceVar(&opts.navCache, "nav-cache", nil, "view keys the client holds (comma separated)")
	cmd.Flags().BoolVarP(&opts.headers, "include", "i", false, "print the status line and headers")
	return cmd
}

func (o *renderOptions) request(cmd *cobra.Command, route string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, route, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid route %q: %w", route, err)
	}
	req.RemoteAddr = "127.0.0.1:0"

	if o.accept != "" {
		req.Header.Set(negotiate.HeaderAccept, o.accept)
	}
	if o.fragment {
		req.Header.Set(negotiate.HeaderFragment, "true")
	}
	if o.forceHTML {
		req.Header.Set(negotiate.HeaderForceHTML, "true")
	}
	if len(o.navCache) > 0 {
		raw, err := json.Marshal(o.navCache)
		if err != nil {
			return nil, err
		}
		req.Header.Set(negotiate.HeaderNavCache, string(raw))
	}
	return req, nil
}

func writeResponse(out io.Writer, route string, w *httptest.ResponseRecorder, withHeaders bool) error {
	res := w.Result()
	defer res.Body.Close()

	if withHeaders {
		if _, err := fmt.Fprintf(out, "%s %s\n", res.Proto, res.Status); err != nil {
			return err
		}
		keys := make([]string, 0, len(res.Header))
		for k := range res.Header {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			for _, v := range res.Header[k] {
				if _, err := fmt.Fprintf(out, "%s: %s\n", k, v); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}

	if _, err := io.Copy(out, res.Body); err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: %s", route, res.Status)
	}
	return nil
}
