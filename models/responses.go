package models

// ValidationErrorsResponse is the body of a 400 reply to a rejected create
// or update.
type ValidationErrorsResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is the body of any other error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the root route.
type StatusResponse struct {
	Message string `json:"message"`
}
