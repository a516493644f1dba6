// Package constants holds shared provider names selected through config.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity resolver provider names.
const (
	IdentityProviderJWT    = "jwt"
	IdentityProviderGoogle = "google"
)

// Attachment store driver names.
const (
	UploadDriverMemory = "mem"
	UploadDriverFile   = "file"
)
