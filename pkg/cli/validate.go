package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/cli/config"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	seedCfg := config.NewSeedFile(true)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a seed file",
		Flags:   seedCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			seed, err := seedCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "seed validation failed")
			}

			summary := seed.Summary()
			logger.Info("Seed validation passed",
				"path", seedCfg.Path(),
				"companies", summary.Companies,
				"risks", summary.Risks,
				"controls", summary.Controls,
			)
			for _, company := range seed.Companies {
				logger.Info("Company validated",
					"name", company.Name,
					"risk_count", len(company.Risks),
				)
			}
			return nil
		},
	}
}
