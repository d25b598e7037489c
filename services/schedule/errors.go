package schedule

import "fmt"

// Engine error codes. Overlap conflicts are never errors; they come back
// as data so the caller can decide.
const (
	CodeInvalidInterval    = "invalidInterval"
	CodeInvalidDate        = "invalidDate"
	CodeMissingScope       = "missingScope"
	CodePersistenceFailure = "persistenceFailure"
	CodeUnknownAction      = "unknownAction"
)

type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrInvalidInterval(start, end int) error {
	return &EngineError{
		Code:    CodeInvalidInterval,
		Message: fmt.Sprintf("interval end (%d) must be after start (%d)", end, start),
	}
}

func ErrInvalidDate(date string) error {
	return &EngineError{
		Code:    CodeInvalidDate,
		Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date),
	}
}

func ErrMissingScope() error {
	return &EngineError{
		Code:    CodeMissingScope,
		Message: "request needs at least one weekday or date scope",
	}
}

func ErrUnknownAction(action string) error {
	return &EngineError{
		Code:    CodeUnknownAction,
		Message: fmt.Sprintf("unknown resolution action %q, want replace, merge or cancel", action),
	}
}

func persistenceFailure(op string, err error) error {
	return &EngineError{
		Code:    CodePersistenceFailure,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}

// ErrorCode extracts the engine error code, or "" for foreign errors.
func ErrorCode(err error) string {
	if ee, ok := err.(*EngineError); ok {
		return ee.Code
	}
	return ""
}
