package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrCompanyNotFound = errors.New("company not found")
	ErrRiskNotFound    = errors.New("risk not found")
	ErrControlNotFound = errors.New("control not found")

	// Input errors
	ErrRequiredField = errors.New("required field is missing")
	ErrInvalidOption = errors.New("value is not one of the allowed options")
	ErrInvalidAction = errors.New("action is not allowed in the current view")
)

// Context keys for error values
const (
	CompanyIDKey = "company_id"
	RiskIDKey    = "risk_id"
	ControlIDKey = "control_id"
	SessionIDKey = "session_id"
	FieldKey     = "field"
	OptionKey    = "option"
)
