package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
)

func TestControlUseCase(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	c, err := uc.Company.CreateCompany(ctx, "C", "desc")
	gt.NoError(t, err).Required()
	r1, err := uc.Risk.CreateRisk(ctx, c.ID, "R1", "d", types.RiskLevelHigh)
	gt.NoError(t, err).Required()
	r2, err := uc.Risk.CreateRisk(ctx, c.ID, "R2", "d", types.RiskLevelLow)
	gt.NoError(t, err).Required()

	k1, err := uc.Control.CreateControl(ctx, r1.ID, "Access review", "Quarterly review", types.FrequencyQuarterly)
	gt.NoError(t, err).Required()
	gt.Value(t, k1.RiskID).Equal(r1.ID)

	t.Run("empty frequency defaults to monthly", func(t *testing.T) {
		k, err := uc.Control.CreateControl(ctx, r2.ID, "Backup", "d", "")
		gt.NoError(t, err).Required()
		gt.Value(t, k.Frequency).Equal(types.FrequencyMonthly)
		gt.NoError(t, uc.Control.DeleteControl(ctx, k.ID))
	})

	t.Run("invalid frequency", func(t *testing.T) {
		_, err := uc.Control.CreateControl(ctx, r1.ID, "K", "d", types.Frequency("Hourly"))
		gt.Error(t, err).Is(usecase.ErrInvalidOption)
	})

	t.Run("unknown risk", func(t *testing.T) {
		_, err := uc.Control.CreateControl(ctx, model.NewRiskID(), "K", "d", types.FrequencyDaily)
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})

	t.Run("assign existing control copies it", func(t *testing.T) {
		candidates, err := uc.Control.ListAssignableControls(ctx, r2.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, candidates).Length(1)

		copied, err := uc.Control.AssignExistingControl(ctx, r2.ID, k1.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, copied.ID).NotEqual(k1.ID)
		gt.Value(t, copied.RiskID).Equal(r2.ID)
		gt.Value(t, copied.Name).Equal(k1.Name)
		gt.Value(t, copied.Frequency).Equal(k1.Frequency)

		original, err := uc.Control.GetControl(ctx, k1.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, original.RiskID).Equal(r1.ID)

		candidates, err = uc.Control.ListAssignableControls(ctx, r2.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, candidates).Length(1)
		gt.Value(t, candidates[0].ID).Equal(k1.ID)
	})

	t.Run("update preserves id", func(t *testing.T) {
		updated, err := uc.Control.UpdateControl(ctx, k1.ID, "", "Access recert", "Yearly recert", types.FrequencyYearly)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.ID).Equal(k1.ID)
		gt.Value(t, updated.RiskID).Equal(r1.ID)
		gt.Value(t, updated.Name).Equal("Access recert")
		gt.Value(t, updated.Frequency).Equal(types.FrequencyYearly)
	})

	t.Run("delete control", func(t *testing.T) {
		gt.NoError(t, uc.Control.DeleteControl(ctx, k1.ID))
		_, err := uc.Control.GetControl(ctx, k1.ID)
		gt.Error(t, err).Is(usecase.ErrControlNotFound)

		err = uc.Control.DeleteControl(ctx, k1.ID)
		gt.Error(t, err).Is(usecase.ErrControlNotFound)
	})
}
