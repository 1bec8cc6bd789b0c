package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidOptionID = goerr.New("invalid option ID")
	ErrMissingRequired = goerr.New("required field is missing")
)

// Context keys for error values
const (
	FieldIDKey  = "field_id"
	OptionIDKey = "option_id"
)
