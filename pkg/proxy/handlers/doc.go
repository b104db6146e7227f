// Package handlers contains the HTTP handlers for the guidance service:
// the guidance completion endpoint and the liveness and readiness probes.
package handlers
