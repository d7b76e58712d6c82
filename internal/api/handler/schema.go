package handler

// errorResponse mirrors the envelope rendered by the central error handler.
// Declared here so swagger annotations can reference it.
type errorResponse struct {
	Error string `json:"error"`
}
