package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
)

// RiskID is an opaque, time-ordered identifier for a Risk
type RiskID string

// NewRiskID generates a new UUID v7 RiskID
func NewRiskID() RiskID {
	return RiskID(uuid.Must(uuid.NewV7()).String())
}

func (id RiskID) String() string {
	return string(id)
}

// Risk is a named hazard with a severity level, scoped to a Company
type Risk struct {
	ID          RiskID
	Name        string
	Description string
	Level       types.RiskLevel
	CompanyID   CompanyID
}

// Validate checks required fields and the level option
func (r *Risk) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return goerr.Wrap(ErrMissingRequired, "risk name is required", goerr.V(FieldIDKey, "name"))
	}
	if strings.TrimSpace(r.Description) == "" {
		return goerr.Wrap(ErrMissingRequired, "risk description is required", goerr.V(FieldIDKey, "description"))
	}
	if !r.Level.IsValid() {
		return goerr.Wrap(ErrInvalidOptionID, "invalid risk level", goerr.V(OptionIDKey, r.Level))
	}
	if r.CompanyID == "" {
		return goerr.Wrap(ErrMissingRequired, "risk must belong to a company", goerr.V(FieldIDKey, "company_id"))
	}
	return nil
}

// Copy returns a detached copy of the risk
func (r *Risk) Copy() *Risk {
	copied := *r
	return &copied
}

// CloneFor returns a new risk with the same name, description and level,
// scoped to another company. The returned risk has no ID yet.
func (r *Risk) CloneFor(companyID CompanyID) *Risk {
	return &Risk{
		Name:        r.Name,
		Description: r.Description,
		Level:       r.Level,
		CompanyID:   companyID,
	}
}
