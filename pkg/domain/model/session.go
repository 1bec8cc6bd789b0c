package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
)

// SessionID identifies a browser session
type SessionID string

// NewSessionID generates a new random SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

func (id SessionID) String() string {
	return string(id)
}

// ViewState is the explicit application state of one browser session: the
// active locale, the navigation shell section, the company drill-down and
// the currently open form or selector.
type ViewState struct {
	Language types.Language
	Section  types.Section

	// SelectedCompanyID is the company whose detail view is shown. Only
	// meaningful in the company section.
	SelectedCompanyID CompanyID

	Panel types.Panel
	// EditingID is the id of the record edited by the open form, empty when
	// the form creates a new record.
	EditingID string
	// TargetRiskID is the risk new or copied controls are attached to while
	// the control selector is open.
	TargetRiskID RiskID
}

// NewViewState returns the initial state: company section, no drill-down,
// no open panel.
func NewViewState(lang types.Language) ViewState {
	if !lang.IsValid() {
		lang = types.DefaultLanguage
	}
	return ViewState{
		Language: lang,
		Section:  types.InitialSection,
	}
}

// ClosePanel discards any open form draft
func (s *ViewState) ClosePanel() {
	s.Panel = types.PanelNone
	s.EditingID = ""
	s.TargetRiskID = ""
}

// InDetail reports whether a company detail view is shown
func (s ViewState) InDetail() bool {
	return s.Section == types.SectionCompany && s.SelectedCompanyID != ""
}

// Session binds a ViewState to a browser session
type Session struct {
	ID        SessionID
	State     ViewState
	CreatedAt time.Time
	UpdatedAt time.Time
}
