package types

import "github.com/m-mizutani/goerr/v2"

// Section is a top-level area of the navigation shell
type Section string

const (
	SectionCompany Section = "company"
	SectionRisk    Section = "risk"
	SectionControl Section = "control"

	InitialSection = SectionCompany
)

// AllSections returns the sections in menu order
func AllSections() []Section {
	return []Section{SectionCompany, SectionRisk, SectionControl}
}

// IsValid checks if the section is valid
func (s Section) IsValid() bool {
	switch s {
	case SectionCompany, SectionRisk, SectionControl:
		return true
	default:
		return false
	}
}

func (s Section) String() string {
	return string(s)
}

// ParseSection parses a string into a Section
func ParseSection(s string) (Section, error) {
	section := Section(s)
	if !section.IsValid() {
		return "", goerr.New("invalid section", goerr.V("section", s))
	}
	return section, nil
}
