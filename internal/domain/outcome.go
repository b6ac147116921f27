package domain

// Execution codes returned in the response envelope and carried by faults
const (
	CodeSuccess          = 200  // Operation succeeded
	CodeBusinessError    = 4000 // Operation not permitted given current state
	CodeInvalidParameter = 4001 // Malformed or missing input
	CodeUnauthorized     = 4003 // Reserved, unused by current logic
	CodeNotFound         = 4004 // Referenced record absent
	CodeSystemError      = 5000 // Unexpected failure
)

// codeMessages maps execution codes to their default messages
var codeMessages = map[int]string{
	CodeSuccess:          "Success",
	CodeBusinessError:    "Business error",
	CodeInvalidParameter: "Invalid parameter",
	CodeUnauthorized:     "Unauthorized operation",
	CodeNotFound:         "Resource not found",
	CodeSystemError:      "System error",
}

// CodeMessage returns the default message for an execution code
func CodeMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return codeMessages[CodeSystemError]
}

// Outcome is the result of validating an operation: success, or a tagged
// failure carrying an execution code and optionally the offending field.
type Outcome struct {
	Code  int    // Execution code
	Field string // Offending field name, empty when not field-specific
}

// Success is the outcome of a validation that passed every rule
var Success = Outcome{Code: CodeSuccess}

// OK reports whether the outcome is a success
func (o Outcome) OK() bool {
	return o.Code == CodeSuccess
}

// Message returns the human-readable reason, suffixed with the field name when present
func (o Outcome) Message() string {
	msg := CodeMessage(o.Code)
	if o.Field != "" {
		msg = msg + " - " + o.Field
	}
	return msg
}

// Err converts a failed outcome into the fault raised to the boundary
func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}
	return &BusinessError{Code: o.Code, Message: o.Message()}
}

// InvalidParameter builds an invalid-parameter outcome naming the offending field
func InvalidParameter(field string) Outcome {
	return Outcome{Code: CodeInvalidParameter, Field: field}
}

// BusinessError is the single fault type raised for validation and policy
// failures. The API boundary maps it to the response envelope.
type BusinessError struct {
	Code    int    // Execution code
	Message string // Human-readable reason
}

// Error implements the error interface
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError builds a fault from an execution code with its default message
func NewBusinessError(code int) *BusinessError {
	return &BusinessError{Code: code, Message: CodeMessage(code)}
}
