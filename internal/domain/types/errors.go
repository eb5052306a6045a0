package types

import "fmt"

// Server error codes reported in the API error envelope.
const (
	CodeTFARequired       = "tfa_required"
	CodeTFAFailed         = "tfa_failed"
	CodeInvalidXAuthLogin = "invalid_xauth_login"
)

// APIError is a structured error returned by the credential-exchange API
// after the request reached the server.
type APIError struct {
	Code     string   `json:"ksr_code"`
	HTTPCode int      `json:"http_code"`
	Messages []string `json:"error_messages,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("api error %s (%d): %s", e.Code, e.HTTPCode, e.Messages[0])
	}
	return fmt.Sprintf("api error %s (%d)", e.Code, e.HTTPCode)
}

// TransportKind tells apart the ways a request can fail before a
// structured API error is available.
type TransportKind int

const (
	// KindNetwork means the server could not be reached.
	KindNetwork TransportKind = iota + 1
	// KindHTTP means the server answered with a non-2xx status and no
	// decodable error envelope.
	KindHTTP
	// KindConversion means a response body could not be decoded.
	KindConversion
	// KindUnexpected covers anything else raised while executing the call.
	KindUnexpected
)

func (k TransportKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindConversion:
		return "conversion"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// TransportError wraps a failure of the transport layer.
type TransportError struct {
	Kind   TransportKind
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s transport error (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s transport error: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
