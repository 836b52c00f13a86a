// Package models defines the data exchanged with the travel backend and the
// geocoding service, in the exact JSON shapes the backend uses.
package models
