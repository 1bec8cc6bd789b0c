package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
)

func TestBuildMatrix(t *testing.T) {
	acme := &model.Company{ID: "c1", Name: "Acme", Description: "Widgets"}
	risks := []*model.Risk{
		{ID: "r1", Name: "Data breach", Description: "Leak", Level: types.RiskLevelHigh, CompanyID: "c1"},
		{ID: "r2", Name: "Outage", Description: "Downtime", Level: types.RiskLevelMedium, CompanyID: "c1"},
		{ID: "r3", Name: "Fraud", Description: "Other company", Level: types.RiskLevelLow, CompanyID: "c2"},
	}
	controls := []*model.Control{
		{ID: "k1", Name: "Access review", Description: "Review", Frequency: types.FrequencyQuarterly, RiskID: "r1"},
		{ID: "k2", Name: "DLP", Description: "Scan", Frequency: types.FrequencyDaily, RiskID: "r1"},
		{ID: "k3", Name: "Audit", Description: "Audit", Frequency: types.FrequencyYearly, RiskID: "r3"},
	}

	m := model.BuildMatrix(acme, risks, controls)

	t.Run("risk with two controls spans two rows", func(t *testing.T) {
		gt.A(t, m.Rows).Length(3)

		gt.Value(t, m.Rows[0].Risk.ID).Equal(model.RiskID("r1"))
		gt.Value(t, m.Rows[0].Control.ID).Equal(model.ControlID("k1"))
		gt.Value(t, m.Rows[0].RiskSpan).Equal(2)
		gt.B(t, m.Rows[0].IsFirst()).True()

		gt.Value(t, m.Rows[1].Risk.ID).Equal(model.RiskID("r1"))
		gt.Value(t, m.Rows[1].Control.ID).Equal(model.ControlID("k2"))
		gt.Value(t, m.Rows[1].RiskSpan).Equal(0)
		gt.B(t, m.Rows[1].IsFirst()).False()
	})

	t.Run("risk without controls renders a single placeholder row", func(t *testing.T) {
		row := m.Rows[2]
		gt.Value(t, row.Risk.ID).Equal(model.RiskID("r2"))
		gt.B(t, row.HasControl()).False()
		gt.Value(t, row.RiskSpan).Equal(1)
	})

	t.Run("other companies are filtered out", func(t *testing.T) {
		for _, row := range m.Rows {
			gt.Value(t, row.Risk.CompanyID).Equal(acme.ID)
		}
		gt.A(t, m.Risks()).Length(2)
		gt.A(t, m.Controls()).Length(2)
	})
}

func TestBuildMatrix_Empty(t *testing.T) {
	m := model.BuildMatrix(&model.Company{ID: "c1"}, nil, nil)
	gt.B(t, m.Rows != nil).True()
	gt.A(t, m.Rows).Length(0)
	gt.A(t, m.Risks()).Length(0)
}
