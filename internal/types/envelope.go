package types

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope wraps every error response body.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
