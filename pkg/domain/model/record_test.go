package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
)

func TestCompany_Validate(t *testing.T) {
	tests := []struct {
		name    string
		company model.Company
		wantErr bool
	}{
		{name: "valid", company: model.Company{Name: "Acme", Description: "Widgets"}},
		{name: "missing name", company: model.Company{Description: "Widgets"}, wantErr: true},
		{name: "blank name", company: model.Company{Name: "  ", Description: "Widgets"}, wantErr: true},
		{name: "missing description", company: model.Company{Name: "Acme"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.company.Validate()
			if tt.wantErr {
				gt.Error(t, err).Is(model.ErrMissingRequired)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestRisk_Validate(t *testing.T) {
	valid := model.Risk{Name: "Outage", Description: "Downtime", Level: types.RiskLevelLow, CompanyID: "c1"}
	gt.NoError(t, valid.Validate())

	badLevel := valid
	badLevel.Level = "Bajo"
	gt.Error(t, badLevel.Validate()).Is(model.ErrInvalidOptionID)

	orphan := valid
	orphan.CompanyID = ""
	gt.Error(t, orphan.Validate()).Is(model.ErrMissingRequired)
}

func TestControl_Validate(t *testing.T) {
	valid := model.Control{Name: "Backup", Description: "Nightly", Frequency: types.FrequencyDaily, RiskID: "r1"}
	gt.NoError(t, valid.Validate())

	badFreq := valid
	badFreq.Frequency = "Hourly"
	err := badFreq.Validate()
	gt.B(t, errors.Is(err, model.ErrInvalidOptionID)).True()

	orphan := valid
	orphan.RiskID = ""
	gt.Error(t, orphan.Validate()).Is(model.ErrMissingRequired)
}

func TestRisk_CloneFor(t *testing.T) {
	src := &model.Risk{ID: "r1", Name: "Outage", Description: "Downtime", Level: types.RiskLevelHigh, CompanyID: "c1"}
	clone := src.CloneFor("c2")

	gt.Value(t, clone.ID).Equal(model.RiskID(""))
	gt.Value(t, clone.Name).Equal(src.Name)
	gt.Value(t, clone.Description).Equal(src.Description)
	gt.Value(t, clone.Level).Equal(src.Level)
	gt.Value(t, clone.CompanyID).Equal(model.CompanyID("c2"))
	gt.Value(t, src.CompanyID).Equal(model.CompanyID("c1"))
}

func TestControl_CloneFor(t *testing.T) {
	src := &model.Control{ID: "k1", Name: "Backup", Description: "Nightly", Frequency: types.FrequencyDaily, RiskID: "r1"}
	clone := src.CloneFor("r2")

	gt.Value(t, clone.ID).Equal(model.ControlID(""))
	gt.Value(t, clone.Frequency).Equal(types.FrequencyDaily)
	gt.Value(t, clone.RiskID).Equal(model.RiskID("r2"))
}

func TestNewIDs(t *testing.T) {
	a := model.NewCompanyID()
	b := model.NewCompanyID()
	gt.Value(t, a).NotEqual(b)
	gt.Value(t, model.NewRiskID()).NotEqual(model.NewRiskID())
	gt.Value(t, model.NewControlID()).NotEqual(model.NewControlID())
}

func TestNewViewState(t *testing.T) {
	s := model.NewViewState("fr")
	gt.Value(t, s.Language).Equal(types.DefaultLanguage)
	gt.Value(t, s.Section).Equal(types.SectionCompany)
	gt.B(t, s.InDetail()).False()

	s.SelectedCompanyID = "c1"
	s.Panel = types.PanelRiskSelector
	s.TargetRiskID = "r1"
	gt.B(t, s.InDetail()).True()

	s.ClosePanel()
	gt.Value(t, s.Panel).Equal(types.PanelNone)
	gt.Value(t, s.TargetRiskID).Equal(model.RiskID(""))
	gt.Value(t, s.SelectedCompanyID).Equal(model.CompanyID("c1"))
}
