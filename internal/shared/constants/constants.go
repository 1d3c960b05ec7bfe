package constants

import "time"

const (
	// DefaultHTTPTimeout bounds each individual request; there is no
	// separate run-level deadline.
	DefaultHTTPTimeout = 10 * time.Second
	// DefaultUserAgent identifies the scanner to target sites.
	DefaultUserAgent = "DJCheckupBot/1.0 (+https://djcheckup.com/bot-info)"
	// DefaultRateLimit is the polite requests-per-second ceiling applied
	// when the caller does not override it.
	DefaultRateLimit = 4
	// MaxBodyBytes caps how much of a response body is read into the
	// check context.
	MaxBodyBytes = 2 << 20
)
