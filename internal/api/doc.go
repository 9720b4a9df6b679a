// Package api exposes the conversion engine and per-session history over HTTP.
//
// The engine is shared by every request. Each session id owns its own history
// log, so concurrent clients never observe each other's conversions.
package api
