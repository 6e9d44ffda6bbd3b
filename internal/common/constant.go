// Package common contains shared constants and sentinel errors used across
// roster components.
package common

// APIKeyHeaderName is the gRPC metadata key used to carry the API key on
// outbound requests to the remote students table.
const APIKeyHeaderName = "apikey"
