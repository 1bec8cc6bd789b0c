package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/cli/config"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/i18n"
	"github.com/secmon-lab/riskmatrix/pkg/repository/memory"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdMatrix() *cli.Command {
	var companyName string
	var langName string
	seedCfg := config.NewSeedFile(true)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "company",
			Aliases:     []string{"c"},
			Usage:       "Only print the company with this name",
			Destination: &companyName,
		},
		&cli.StringFlag{
			Name:        "lang",
			Usage:       "Language of the labels [en|es]",
			Value:       string(types.DefaultLanguage),
			Sources:     cli.EnvVars("RISKMATRIX_LANG"),
			Destination: &langName,
		},
	}
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:    "matrix",
		Aliases: []string{"m"},
		Usage:   "Print the risk/control matrix of each company of a seed file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			lang, err := types.ParseLanguage(langName)
			if err != nil {
				return goerr.Wrap(err, "invalid --lang")
			}

			seed, err := seedCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load seed")
			}

			uc := usecase.New(memory.New())
			if _, err := seed.Apply(ctx, uc); err != nil {
				return goerr.Wrap(err, "failed to apply seed")
			}

			matrices, err := uc.Matrix.ListMatrices(ctx)
			if err != nil {
				return err
			}

			if companyName != "" {
				matrices = filterMatrices(matrices, companyName)
				if len(matrices) == 0 {
					return goerr.Wrap(usecase.ErrCompanyNotFound, "company not found in seed", goerr.V("company", companyName))
				}
			}

			return printMatrices(c.Root().Writer, lang, matrices)
		},
	}
}

func filterMatrices(matrices []*model.Matrix, name string) []*model.Matrix {
	var filtered []*model.Matrix
	for _, m := range matrices {
		if m.Company.Name == name {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

var (
	companyColor = color.New(color.FgCyan, color.Bold)
	mutedColor   = color.New(color.Faint)
	levelColors  = map[types.RiskLevel]*color.Color{
		types.RiskLevelHigh:   color.New(color.FgRed, color.Bold),
		types.RiskLevelMedium: color.New(color.FgYellow),
		types.RiskLevelLow:    color.New(color.FgGreen),
	}
)

// printMatrices writes one block per company: its risks with the level badge
// and the controls below each risk
func printMatrices(w io.Writer, lang types.Language, matrices []*model.Matrix) error {
	t := i18n.For(lang)

	for i, m := range matrices {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return goerr.Wrap(err, "failed to write matrix")
			}
		}

		if _, err := companyColor.Fprintf(w, "%s\n", m.Company.Name); err != nil {
			return goerr.Wrap(err, "failed to write matrix")
		}
		if _, err := mutedColor.Fprintf(w, "%s · %s: %s\n",
			m.Company.Description, t(i18n.KeyCreated), i18n.FormatDate(lang, m.Company.CreatedAt)); err != nil {
			return goerr.Wrap(err, "failed to write matrix")
		}

		if len(m.Rows) == 0 {
			if _, err := mutedColor.Fprintf(w, "  %s\n", t(i18n.KeyNoRisks)); err != nil {
				return goerr.Wrap(err, "failed to write matrix")
			}
			continue
		}

		for _, row := range m.Rows {
			if row.IsFirst() {
				badge := levelColors[row.Risk.Level].Sprintf("[%s]", t(i18n.LevelKey(row.Risk.Level)))
				if _, err := fmt.Fprintf(w, "  %s %s: %s\n", badge, row.Risk.Name, row.Risk.Description); err != nil {
					return goerr.Wrap(err, "failed to write matrix")
				}
			}

			var err error
			if row.HasControl() {
				_, err = fmt.Fprintf(w, "      - %s (%s): %s\n",
					row.Control.Name, t(i18n.FrequencyKey(row.Control.Frequency)), row.Control.Description)
			} else {
				_, err = mutedColor.Fprintf(w, "      (%s)\n", t(i18n.KeyNoControlsAssigned))
			}
			if err != nil {
				return goerr.Wrap(err, "failed to write matrix")
			}
		}
	}

	return nil
}
