// Package session is the process-wide authentication state of the client.
//
// A Store keeps the current token and user in memory and mirrors them to
// durable storage under the keys "authToken" and "userData", which are
// always written and removed together. Consumers get the Store injected;
// request-scoped code can also find it on a context (NewContext /
// FromContext) and fall back to the persisted token when none is attached.
package session
