package middleware

// Error messages returned to clients
const (
	// ErrMsgInvalidAccountID is returned when the accountId route
	// parameter fails shape validation
	ErrMsgInvalidAccountID = "invalid account id"
)

// Log messages
const (
	// LogMsgMalformedAccountID indicates a request carried a malformed
	// account id
	LogMsgMalformedAccountID = "Rejected malformed account id"
)
