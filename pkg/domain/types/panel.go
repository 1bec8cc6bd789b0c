package types

import "github.com/m-mizutani/goerr/v2"

// Panel identifies the form or selector currently open in a section.
// PanelNone means only the list (or the company detail) is shown.
type Panel string

const (
	PanelNone Panel = ""

	// Company section
	PanelCompanyForm     Panel = "company-form"
	PanelRiskSelector    Panel = "risk-selector"
	PanelNewRiskForm     Panel = "new-risk-form"
	PanelControlSelector Panel = "control-selector"
	PanelNewControlForm  Panel = "new-control-form"

	// Risk and control sections
	PanelRiskForm    Panel = "risk-form"
	PanelControlForm Panel = "control-form"
)

// Section returns the section the panel belongs to
func (p Panel) Section() Section {
	switch p {
	case PanelRiskForm:
		return SectionRisk
	case PanelControlForm:
		return SectionControl
	default:
		return SectionCompany
	}
}

// RequiresDetail reports whether the panel is only meaningful inside a company detail view
func (p Panel) RequiresDetail() bool {
	switch p {
	case PanelRiskSelector, PanelNewRiskForm, PanelControlSelector, PanelNewControlForm:
		return true
	default:
		return false
	}
}

// IsValid checks if the panel is a known, openable panel
func (p Panel) IsValid() bool {
	switch p {
	case PanelCompanyForm,
		PanelRiskSelector,
		PanelNewRiskForm,
		PanelControlSelector,
		PanelNewControlForm,
		PanelRiskForm,
		PanelControlForm:
		return true
	default:
		return false
	}
}

func (p Panel) String() string {
	return string(p)
}

// ParsePanel parses a string into an openable Panel
func ParsePanel(s string) (Panel, error) {
	p := Panel(s)
	if !p.IsValid() {
		return "", goerr.New("invalid panel", goerr.V("panel", s))
	}
	return p, nil
}
