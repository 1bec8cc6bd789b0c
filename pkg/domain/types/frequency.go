package types

import "github.com/m-mizutani/goerr/v2"

// Frequency represents how often a control is performed
type Frequency string

const (
	FrequencyDaily     Frequency = "Daily"
	FrequencyWeekly    Frequency = "Weekly"
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyQuarterly Frequency = "Quarterly"
	FrequencyYearly    Frequency = "Yearly"
)

// AllFrequencies returns all valid frequencies in display order
func AllFrequencies() []Frequency {
	return []Frequency{
		FrequencyDaily,
		FrequencyWeekly,
		FrequencyMonthly,
		FrequencyQuarterly,
		FrequencyYearly,
	}
}

// IsValid checks if the frequency is valid
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily,
		FrequencyWeekly,
		FrequencyMonthly,
		FrequencyQuarterly,
		FrequencyYearly:
		return true
	default:
		return false
	}
}

// Normalize returns the frequency, treating empty as FrequencyMonthly which is the form default.
func (f Frequency) Normalize() Frequency {
	if f == "" {
		return FrequencyMonthly
	}
	return f
}

// String returns the string representation of the frequency
func (f Frequency) String() string {
	return string(f)
}

// ParseFrequency parses a string into a Frequency
func ParseFrequency(s string) (Frequency, error) {
	freq := Frequency(s)
	if !freq.IsValid() {
		return "", goerr.New("invalid frequency", goerr.V("frequency", s))
	}
	return freq, nil
}
