package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/repository/memory"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
)

func newUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(), opts...)
}

func TestCompanyUseCase_CreateCompany(t *testing.T) {
	t.Run("assigns id and creation time", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		before := time.Now().UTC()
		created, err := uc.Company.CreateCompany(ctx, "Acme", "Manufacturer")
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.Name).Equal("Acme")
		gt.Value(t, created.Description).Equal("Manufacturer")
		gt.Bool(t, created.CreatedAt.Before(before.Add(-time.Second))).False()

		companies, err := uc.Company.ListCompanies(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, companies).Length(1)
		gt.Value(t, companies[0].ID).Equal(created.ID)
	})

	t.Run("ids are unique", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		c1, err := uc.Company.CreateCompany(ctx, "A", "a")
		gt.NoError(t, err).Required()
		c2, err := uc.Company.CreateCompany(ctx, "B", "b")
		gt.NoError(t, err).Required()
		gt.Value(t, c1.ID).NotEqual(c2.ID)
	})

	testCases := []struct {
		name        string
		companyName string
		description string
	}{
		{name: "missing name", companyName: "", description: "desc"},
		{name: "blank name", companyName: "   ", description: "desc"},
		{name: "missing description", companyName: "Acme", description: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newUseCases(t)
			ctx := context.Background()

			_, err := uc.Company.CreateCompany(ctx, tc.companyName, tc.description)
			gt.Error(t, err).Is(usecase.ErrRequiredField)

			companies, err := uc.Company.ListCompanies(ctx)
			gt.NoError(t, err).Required()
			gt.Array(t, companies).Length(0)
		})
	}
}

func TestCompanyUseCase_UpdateCompany(t *testing.T) {
	t.Run("preserves id and creation time", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		created, err := uc.Company.CreateCompany(ctx, "Acme", "old")
		gt.NoError(t, err).Required()

		updated, err := uc.Company.UpdateCompany(ctx, created.ID, "Acme Corp", "new")
		gt.NoError(t, err).Required()

		gt.Value(t, updated.ID).Equal(created.ID)
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
		gt.Value(t, updated.Name).Equal("Acme Corp")
		gt.Value(t, updated.Description).Equal("new")

		got, err := uc.Company.GetCompany(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Acme Corp")
	})

	t.Run("unknown company", func(t *testing.T) {
		uc := newUseCases(t)
		_, err := uc.Company.UpdateCompany(context.Background(), model.NewCompanyID(), "n", "d")
		gt.Error(t, err).Is(usecase.ErrCompanyNotFound)
	})
}

func TestCompanyUseCase_DeleteCompany(t *testing.T) {
	t.Run("cascades to risks and their controls", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		c1, err := uc.Company.CreateCompany(ctx, "C1", "first")
		gt.NoError(t, err).Required()
		r1, err := uc.Risk.CreateRisk(ctx, c1.ID, "R1", "risk one", types.RiskLevelHigh)
		gt.NoError(t, err).Required()
		_, err = uc.Risk.CreateRisk(ctx, c1.ID, "R2", "risk two", types.RiskLevelLow)
		gt.NoError(t, err).Required()
		_, err = uc.Control.CreateControl(ctx, r1.ID, "K1", "control one", types.FrequencyDaily)
		gt.NoError(t, err).Required()

		result, err := uc.Company.DeleteCompany(ctx, c1.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, result.Risks).Equal(2)
		gt.Value(t, result.Controls).Equal(1)

		companies, err := uc.Company.ListCompanies(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, companies).Length(0)

		risks, err := uc.Risk.ListRisks(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(0)

		controls, err := uc.Control.ListControls(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, controls).Length(0)
	})

	t.Run("leaves other companies untouched", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		c1, err := uc.Company.CreateCompany(ctx, "C1", "first")
		gt.NoError(t, err).Required()
		c2, err := uc.Company.CreateCompany(ctx, "C2", "second")
		gt.NoError(t, err).Required()
		_, err = uc.Risk.CreateRisk(ctx, c1.ID, "R1", "risk one", types.RiskLevelHigh)
		gt.NoError(t, err).Required()
		r2, err := uc.Risk.CreateRisk(ctx, c2.ID, "R2", "risk two", types.RiskLevelMedium)
		gt.NoError(t, err).Required()
		k2, err := uc.Control.CreateControl(ctx, r2.ID, "K2", "control two", types.FrequencyWeekly)
		gt.NoError(t, err).Required()

		_, err = uc.Company.DeleteCompany(ctx, c1.ID)
		gt.NoError(t, err).Required()

		risks, err := uc.Risk.ListRisks(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].ID).Equal(r2.ID)

		controls, err := uc.Control.ListControls(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, controls).Length(1)
		gt.Value(t, controls[0].ID).Equal(k2.ID)
	})

	t.Run("unknown company", func(t *testing.T) {
		uc := newUseCases(t)
		_, err := uc.Company.DeleteCompany(context.Background(), model.NewCompanyID())
		gt.Error(t, err).Is(usecase.ErrCompanyNotFound)
	})
}

func TestUseCases_Metrics(t *testing.T) {
	m := metrics.New()
	uc := newUseCases(t, usecase.WithMetrics(m))
	ctx := context.Background()

	c, err := uc.Company.CreateCompany(ctx, "Acme", "desc")
	gt.NoError(t, err).Required()
	_, err = uc.Risk.CreateRisk(ctx, c.ID, "R", "risk", types.RiskLevelLow)
	gt.NoError(t, err).Required()

	families, err := m.Registry().Gather()
	gt.NoError(t, err).Required()

	var found bool
	for _, f := range families {
		if f.GetName() == "riskmatrix_records" {
			found = true
			for _, metric := range f.GetMetric() {
				for _, label := range metric.GetLabel() {
					if label.GetValue() == metrics.EntityRisk {
						gt.Value(t, metric.GetGauge().GetValue()).Equal(float64(1))
					}
				}
			}
		}
	}
	gt.Bool(t, found).True()
}
