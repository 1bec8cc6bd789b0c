package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
)

// ControlID is an opaque, time-ordered identifier for a Control
type ControlID string

// NewControlID generates a new UUID v7 ControlID
func NewControlID() ControlID {
	return ControlID(uuid.Must(uuid.NewV7()).String())
}

func (id ControlID) String() string {
	return string(id)
}

// Control is a mitigating procedure with a review frequency, scoped to a Risk
type Control struct {
	ID          ControlID
	Name        string
	Description string
	Frequency   types.Frequency
	RiskID      RiskID
}

// Validate checks required fields and the frequency option
func (c *Control) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return goerr.Wrap(ErrMissingRequired, "control name is required", goerr.V(FieldIDKey, "name"))
	}
	if strings.TrimSpace(c.Description) == "" {
		return goerr.Wrap(ErrMissingRequired, "control description is required", goerr.V(FieldIDKey, "description"))
	}
	if !c.Frequency.IsValid() {
		return goerr.Wrap(ErrInvalidOptionID, "invalid control frequency", goerr.V(OptionIDKey, c.Frequency))
	}
	if c.RiskID == "" {
		return goerr.Wrap(ErrMissingRequired, "control must belong to a risk", goerr.V(FieldIDKey, "risk_id"))
	}
	return nil
}

// Copy returns a detached copy of the control
func (c *Control) Copy() *Control {
	copied := *c
	return &copied
}

// CloneFor returns a new control with the same name, description and
// frequency, scoped to another risk. The returned control has no ID yet.
func (c *Control) CloneFor(riskID RiskID) *Control {
	return &Control{
		Name:        c.Name,
		Description: c.Description,
		Frequency:   c.Frequency,
		RiskID:      riskID,
	}
}
