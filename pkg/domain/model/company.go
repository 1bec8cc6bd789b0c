package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// CompanyID is an opaque, time-ordered identifier for a Company
type CompanyID string

// NewCompanyID generates a new UUID v7 CompanyID
func NewCompanyID() CompanyID {
	return CompanyID(uuid.Must(uuid.NewV7()).String())
}

func (id CompanyID) String() string {
	return string(id)
}

// Company is the root entity: an organization being assessed.
// It owns zero or more risks through Risk.CompanyID.
type Company struct {
	ID          CompanyID
	Name        string
	Description string
	CreatedAt   time.Time
}

// Validate checks required fields
func (c *Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return goerr.Wrap(ErrMissingRequired, "company name is required", goerr.V(FieldIDKey, "name"))
	}
	if strings.TrimSpace(c.Description) == "" {
		return goerr.Wrap(ErrMissingRequired, "company description is required", goerr.V(FieldIDKey, "description"))
	}
	return nil
}

// Copy returns a detached copy of the company
func (c *Company) Copy() *Company {
	copied := *c
	return &copied
}
