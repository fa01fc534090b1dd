// Package httpx holds the request pipeline primitives: middleware chaining,
// the authentication gate, the resource-ownership check, JSON response
// helpers and rate limiting. Handlers stay framework-free http.Handlers;
// a route's behaviour is the ordered list of steps wrapped around it, each
// step either passing an enriched context along or short-circuiting with a
// response.
package httpx

import "net/http"

// Middleware wraps an http.Handler with one pipeline step.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares around h so that the first listed middleware is
// the outermost, i.e. runs first on the way in.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
