package types

// SuccessEnvelope wraps every successful API payload, so product lists, cart
// views and checkout results all share the same `{"data": …}` shape.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Message carries the storefront
// copy (for example the checkout and discount messages) when the error code
// allows it to be surfaced.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError the same way SuccessEnvelope wraps data.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
