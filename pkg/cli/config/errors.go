package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration and seed validation
var (
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrMissingName      = goerr.New("name is required")
	ErrMissingDesc      = goerr.New("description is required")
	ErrInvalidLevel     = goerr.New("invalid risk level")
	ErrInvalidFrequency = goerr.New("invalid control frequency")
	ErrDuplicateCompany = goerr.New("duplicate company name")
)

// Context keys for error values
const (
	SeedPathKey     = "seed_path"
	CompanyIndexKey = "company_index"
	RiskIndexKey    = "risk_index"
	ControlIndexKey = "control_index"
)
