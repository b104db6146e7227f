// Package types defines the wire-level response shapes shared by the proxy
// handlers and middleware.
package types
