// Package client contains the transport to the Travel Manager backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface), one
//     method per backend endpoint: user and admin authentication, travel
//     request creation, listing, details, cancellation and the admin status
//     update.
//  2. A concrete REST/JSON implementation (see HTTPClient) that prefixes a
//     base URL, applies a fixed timeout, attaches the bearer token obtained
//     from a TokenSource and reports every 401 to an UnauthorizedHandler.
//
// # Error Handling
//
// Failed calls return *APIError. A structured backend error body is decoded
// into it verbatim; anything else (transport failure, timeout, unreadable
// body) becomes a connectivity error carrying ConnectivityMessage.
// Callers match conditions with errors.Is: ErrUnauthorized, ErrUnavailable,
// ErrLocalDataNotAvailable.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
