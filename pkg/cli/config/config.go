package config

import (
	"context"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Seed is the initial data loaded into the record stores at startup
type Seed struct {
	Companies []SeedCompany `toml:"company"`
}

type SeedCompany struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	Risks       []SeedRisk `toml:"risk"`
}

type SeedRisk struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Level       string        `toml:"level"`
	Controls    []SeedControl `toml:"control"`
}

type SeedControl struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Frequency   string `toml:"frequency"`
}

// SeedSummary counts the records of a seed
type SeedSummary struct {
	Companies int
	Risks     int
	Controls  int
}

// Validate checks if the SeedControl is valid
func (c *SeedControl) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return goerr.Wrap(ErrMissingName, "control name is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		return goerr.Wrap(ErrMissingDesc, "control description is required", goerr.V("name", c.Name))
	}
	if c.Frequency != "" {
		if _, err := types.ParseFrequency(c.Frequency); err != nil {
			return goerr.Wrap(ErrInvalidFrequency, "invalid control frequency",
				goerr.V("name", c.Name), goerr.V("frequency", c.Frequency))
		}
	}
	return nil
}

// Validate checks if the SeedRisk and its controls are valid
func (r *SeedRisk) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return goerr.Wrap(ErrMissingName, "risk name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return goerr.Wrap(ErrMissingDesc, "risk description is required", goerr.V("name", r.Name))
	}
	if r.Level != "" {
		if _, err := types.ParseRiskLevel(r.Level); err != nil {
			return goerr.Wrap(ErrInvalidLevel, "invalid risk level",
				goerr.V("name", r.Name), goerr.V("level", r.Level))
		}
	}

	for i, c := range r.Controls {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid control", goerr.V(ControlIndexKey, i), goerr.V("risk", r.Name))
		}
	}
	return nil
}

// Validate checks if the SeedCompany and its risks are valid
func (c *SeedCompany) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return goerr.Wrap(ErrMissingName, "company name is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		return goerr.Wrap(ErrMissingDesc, "company description is required", goerr.V("name", c.Name))
	}

	for i, r := range c.Risks {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid risk", goerr.V(RiskIndexKey, i), goerr.V("company", c.Name))
		}
	}
	return nil
}

// Validate checks if the Seed is valid. Company names must be unique so the
// matrix command can select companies by name.
func (s *Seed) Validate() error {
	names := make(map[string]bool)
	for i, c := range s.Companies {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid company", goerr.V(CompanyIndexKey, i))
		}
		if names[c.Name] {
			return goerr.Wrap(ErrDuplicateCompany, "duplicate company name", goerr.V("name", c.Name))
		}
		names[c.Name] = true
	}
	return nil
}

// Summary counts the records the seed creates
func (s *Seed) Summary() SeedSummary {
	var sum SeedSummary
	for _, c := range s.Companies {
		sum.Companies++
		for _, r := range c.Risks {
			sum.Risks++
			sum.Controls += len(r.Controls)
		}
	}
	return sum
}

// Apply creates every seed record through the regular use cases so that
// IDs and timestamps are generated exactly as for interactive creation.
func (s *Seed) Apply(ctx context.Context, uc *usecase.UseCases) (*SeedSummary, error) {
	var sum SeedSummary

	for _, sc := range s.Companies {
		company, err := uc.Company.CreateCompany(ctx, sc.Name, sc.Description)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to seed company", goerr.V("name", sc.Name))
		}
		sum.Companies++

		for _, sr := range sc.Risks {
			risk, err := uc.Risk.CreateRisk(ctx, company.ID, sr.Name, sr.Description, types.RiskLevel(sr.Level))
			if err != nil {
				return nil, goerr.Wrap(err, "failed to seed risk", goerr.V("name", sr.Name))
			}
			sum.Risks++

			for _, sk := range sr.Controls {
				if _, err := uc.Control.CreateControl(ctx, risk.ID, sk.Name, sk.Description, types.Frequency(sk.Frequency)); err != nil {
					return nil, goerr.Wrap(err, "failed to seed control", goerr.V("name", sk.Name))
				}
				sum.Controls++
			}
		}
	}

	return &sum, nil
}

// LoadSeed loads and validates a seed from a TOML file
func LoadSeed(path string) (*Seed, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V(SeedPathKey, path))
	}

	var seed Seed
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML seed", goerr.V(SeedPathKey, path))
	}

	if err := seed.Validate(); err != nil {
		return nil, goerr.Wrap(err, "seed validation failed", goerr.V(SeedPathKey, path))
	}

	return &seed, nil
}

// SeedFile is the --seed flag shared by the commands reading a seed
type SeedFile struct {
	path     string
	required bool
}

// NewSeedFile returns the flag holder. A required seed makes the flag
// mandatory.
func NewSeedFile(required bool) *SeedFile {
	return &SeedFile{required: required}
}

func (x *SeedFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Aliases:     []string{"s"},
			Usage:       "TOML file with initial companies, risks and controls",
			Required:    x.required,
			Destination: &x.path,
			Sources:     cli.EnvVars("RISKMATRIX_SEED"),
		},
	}
}

// Path returns the configured seed path, empty when not set
func (x *SeedFile) Path() string {
	return x.path
}

// Load reads the seed. Without a path it returns an empty seed.
func (x *SeedFile) Load() (*Seed, error) {
	if x.path == "" {
		return &Seed{}, nil
	}
	return LoadSeed(x.path)
}
