package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ProductHandler struct {
//	    catalog *catalog.Store
//	}
//
//	func (h *ProductHandler) Routes(r ariaml.Router) {
//	    r.GET("/products/{slug}", h.show)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the error to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func NoStore(next ariaml.HandlerFunc) ariaml.HandlerFunc {
//	    return func(c ariaml.Context) error {
//	        c.SetHeader("Cache-Control", "no-store")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
