package app

type ValidationErrorCode string

const (
	ErrInvalidClassType ValidationErrorCode = "INVALID_CLASS_TYPE"
	ErrInvalidTime      ValidationErrorCode = "INVALID_TIME"
	ErrInvalidWeekday   ValidationErrorCode = "INVALID_WEEKDAY"
	ErrInvalidTarget    ValidationErrorCode = "INVALID_TARGET"
	ErrEmptyIntention   ValidationErrorCode = "EMPTY_INTENTION"
)

// ValidationError reports rejected user input. The engine downstream
// assumes structurally valid data; this layer is where that is enforced.
type ValidationError struct {
	Code    ValidationErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Code) + ": " + e.Message
}
