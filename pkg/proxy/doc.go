// Package proxy contains the HTTP request and response plumbing shared by
// the guidance handlers: body parsing, response writing, and the mapping
// from provider errors to wire error responses.
package proxy
