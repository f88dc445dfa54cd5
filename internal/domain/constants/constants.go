// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selectors
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
