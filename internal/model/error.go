package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeMissingCustomerInfo  = "MISSING_CUSTOMER_INFO"
	ErrCodeSubmissionInProgress = "SUBMISSION_IN_PROGRESS"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeTableUnavailable     = "TABLE_UNAVAILABLE"
	ErrCodeOrderWriteFailed     = "ORDER_WRITE_FAILED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrMissingCustomerInfo  = NewDomainError(ErrCodeMissingCustomerInfo, "Name and phone number are required")
	ErrSubmissionInProgress = NewDomainError(ErrCodeSubmissionInProgress, "A submission is already in progress")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrTableUnavailable     = NewDomainError(ErrCodeTableUnavailable, "Table is not available")
	ErrOrderWriteFailed     = NewDomainError(ErrCodeOrderWriteFailed, "Une erreur est survenue. Veuillez réessayer.")
)
