// Package cli provides the interactive Travel Manager terminal client.
//
// It wires configuration, local session storage, the backend client, the
// services and the navigation guard, then runs a REPL. Every command is a
// view bound to a route: before a view renders, the client navigates to its
// route and the guard either admits it or redirects elsewhere, exactly as
// the browser front end would.
//
// Key features:
//   - Login / Register / Admin login / Logout
//   - List, show, create and cancel the user's travel requests
//   - Destination search while creating a request
//   - Admin list and status changes (approve / reject / any status)
//   - Request metrics (stats)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
