package types

// ErrorResponse is the body of every non-2xx response.
// Internal error causes are never included.
type ErrorResponse struct {
	Error string `json:"error"`
}

// User-facing error messages
const (
	MsgQueryRequired = "Search query is required"
	MsgQueryTooShort = "Search query must be at least 2 characters"
	MsgInvalidType   = "Invalid type"
	MsgInternalError = "Internal server error"
)
