package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/negotiate"
	"github.com/ariaml/ariaml-go/pkg/respond"
)

// Component is the interface for renderable templates.
// This is compatible with templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the response writer.
	Response() http.ResponseWriter

	// ResponseWriter returns the tracking writer wrapping the response.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Query returns the query parameter value by name.
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect redirects to the given URL with the given status code.
	Redirect(code int, url string) error

	// Error creates an HTTPError for the handler to return.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Render writes component as text/html with the given status code.
	Render(code int, component Component) error

	// Signals returns the negotiation signals of the request.
	Signals() negotiate.Signals

	// Decision returns the negotiated content type, mode and status.
	Decision() negotiate.Decision

	// ClientHasCache reports whether the client announced key in its nav-cache header.
	ClientHasCache(key string) bool

	// NewDocument creates a document for this request. Its mode follows the
	// negotiation. Any response written afterwards varies on the negotiation headers.
	NewDocument(def *definition.Tree, opts ...document.Option) *document.Document

	// RenderDocument writes the negotiated status and headers and renders
	// doc's root element around body. HEAD requests get no body.
	RenderDocument(doc *document.Document, rootAttrs attr.Attrs, body Component) error

	// Written returns true if the response has been written.
	Written() bool

	// Logger returns the request-scoped logger.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key, value any)

	// Get retrieves a value from the request context.
	Get(key any) any
}

// requestContext implements the Context interface.
type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	docOpts        []document.Option
	signals        *negotiate.Signals
	negotiated     *respond.Response
	hooked         bool
}

// newContext creates a new context around the shared response wrapper.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	return &requestContext{
		request:        r,
		responseWriter: NewResponseWriter(w),
		logger:         app.logger,
		docOpts:        app.documentOptions,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.SetHeader("Content-Type", "application/json; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.SetHeader("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := io.WriteString(c.responseWriter, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.responseWriter, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Render(code int, component Component) error {
	c.SetHeader("Content-Type", negotiate.WithCharset(negotiate.TypeHTML))
	c.responseWriter.WriteHeader(code)
	return component.Render(c.request.Context(), c.responseWriter)
}

func (c *requestContext) Signals() negotiate.Signals {
	if c.signals == nil {
		s := negotiate.FromRequest(c.request)
		c.signals = &s
	}
	return *c.signals
}

func (c *requestContext) Decision() negotiate.Decision {
	if c.negotiated != nil {
		return c.negotiated.Decision
	}
	return negotiate.Negotiate(c.Signals())
}

func (c *requestContext) ClientHasCache(key string) bool {
	return c.Signals().ClientHasCache(key)
}

func (c *requestContext) NewDocument(def *definition.Tree, opts ...document.Option) *document.Document {
	all := make([]document.Option, 0, len(c.docOpts)+len(opts)+1)
	all = append(all, document.WithLogger(c.logger))
	all = append(all, c.docOpts...)
	all = append(all, opts...)

	doc := document.New(def, all...)
	c.synchronize(doc)
	return doc
}

func (c *requestContext) RenderDocument(doc *document.Document, rootAttrs attr.Attrs, body Component) error {
	resp := c.synchronize(doc)

	resp.ApplyHeaders(c.responseWriter)
	c.responseWriter.WriteHeader(resp.Status())
	if c.request.Method == http.MethodHead {
		return nil
	}

	return doc.Wrap(rootAttrs, body).Render(c.request.Context(), c.responseWriter)
}

// synchronize negotiates once per request and sets doc's mode. Whatever is
// written afterwards, an error page included, varies on the negotiation headers.
func (c *requestContext) synchronize(doc *document.Document) respond.Response {
	if c.negotiated == nil {
		resp := respond.ApplyTo(c.Signals(), doc)
		c.negotiated = &resp
	} else {
		doc.SetMode(c.negotiated.Mode())
	}

	if !c.hooked {
		c.hooked = true
		c.responseWriter.OnBeforeWrite(func() {
			c.responseWriter.Header().Set(negotiate.HeaderVary, respond.Vary)
		})
	}
	return *c.negotiated
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
