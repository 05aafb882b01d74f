package pages

import (
	"errors"

	"github.com/ariaml/ariaml-go/internal"
	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/document"
)

// DefaultBaseURL is the nav-base-url of the root element.
const DefaultBaseURL = "/"

// Handler serves every route from a Store.
type Handler struct {
	store   *Store
	layout  LayoutConfig
	hooks   []func(internal.Context, *document.Document)
	baseURL string
	pattern string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithBaseURL sets the nav-base-url of the root element.
func WithBaseURL(url string) HandlerOption {
	return func(h *Handler) {
		h.baseURL = url
	}
}

// WithLayout replaces the slot configuration.
func WithLayout(cfg LayoutConfig) HandlerOption {
	return func(h *Handler) {
		h.layout = cfg
	}
}

// WithDocumentHook registers fn to adjust each document before it renders,
// for instance to add a per-request csrfToken.
func WithDocumentHook(fn func(internal.Context, *document.Document)) HandlerOption {
	return func(h *Handler) {
		if fn != nil {
			h.hooks = append(h.hooks, fn)
		}
	}
}

// WithPattern sets the route pattern the handler answers on. Defaults to "/*".
func WithPattern(pattern string) HandlerOption {
	return func(h *Handler) {
		if pattern != "" {
			h.pattern = pattern
		}
	}
}

// NewHandler creates a handler serving pages from store.
func NewHandler(store *Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:   store,
		baseURL: DefaultBaseURL,
		pattern: "/*",
		layout: LayoutConfig{
			DynamicKeys:  DefaultDynamicKeys,
			StaticGroups: DefaultStaticGroups,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements internal.Handler.
func (h *Handler) Routes(r internal.Router) {
	r.Page(h.pattern, h.serve)
}

func (h *Handler) serve(c internal.Context) error {
	page, err := h.store.Get(c, c.Request().URL.Path)
	if errors.Is(err, ErrPageNotFound) {
		return internal.ErrNotFound("", internal.WithError(err))
	}
	if err != nil {
		return internal.ErrInternal("", internal.WithError(err))
	}

	doc := c.NewDocument(page.Definition())
	page.Populate(doc)
	for _, fn := range h.hooks {
		fn(c, doc)
	}

	root := attr.Merge(attr.Attrs{{Key: "nav-base-url", Value: h.baseURL}}, page.Root)
	return c.RenderDocument(doc, root, h.layout.Component(doc, page, c.Signals()))
}
