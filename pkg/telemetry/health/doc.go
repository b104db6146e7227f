// Package health runs scheduled reachability probes against the upstream
// provider and feeds the results into the provider health gauge and the
// readiness endpoint.
package health
