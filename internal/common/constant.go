package common

// Durable storage keys for the persisted credential pair. The two entries
// are always written and cleared together.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// HTTP header names used on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-Id"
	RetryAfterHeaderName    = "Retry-After"
)
