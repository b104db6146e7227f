// Package guidance defines the domain model for the guidance endpoint: the
// inbound request payload with its defaulting rules, the fixed prompt pair
// sent upstream, and the schema of the JSON guidance object the upstream
// model is instructed to return.
//
// The gateway treats the upstream content as an opaque string and relays it
// verbatim. ValidateContent exists for deployments that opt into schema
// checking before relay.
package guidance
