package services

// ValidationError marks a missing or malformed request field. Handlers map
// it to a 400 response; anything else from the service layer is a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
