package http

import (
	"context"
	"net/http"

	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/utils/errutil"
)

// pageData is everything the page template renders for one session
type pageData struct {
	State       model.ViewState
	NextLang    types.Language
	Sections    []types.Section
	Levels      []types.RiskLevel
	Frequency   []types.Frequency
	Companies   []*model.Company
	Risks       []riskItem
	Controls    []controlItem
	AllRisks    []*model.Risk
	Detail      *detailView
	EditCompany *model.Company
	EditRisk    *model.Risk
	EditControl *model.Control
}

// detailView is the company detail: its matrix and the attachment panels
type detailView struct {
	Matrix             *model.Matrix
	Risks              []*model.Risk
	TargetRiskID       model.RiskID
	AssignableRisks    []*model.Risk
	AssignableControls []*model.Control
}

type riskItem struct {
	Risk        *model.Risk
	CompanyName string
}

type controlItem struct {
	Control  *model.Control
	RiskName string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFrom(ctx)

	data, err := s.buildPage(ctx, session.State)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	if err := s.renderer.render(ctx, w, session.State.Language, data); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func (s *Server) buildPage(ctx context.Context, state model.ViewState) (*pageData, error) {
	data := &pageData{
		State:     state,
		NextLang:  state.Language.Toggle(),
		Sections:  types.AllSections(),
		Levels:    types.AllRiskLevels(),
		Frequency: types.AllFrequencies(),
	}

	companies, err := s.uc.Company.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	data.Companies = companies

	risks, err := s.uc.Risk.ListRisks(ctx)
	if err != nil {
		return nil, err
	}
	data.AllRisks = risks

	switch state.Section {
	case types.SectionCompany:
		if state.InDetail() {
			detail, err := s.buildDetail(ctx, state)
			if err != nil {
				return nil, err
			}
			data.Detail = detail
		}
		if state.Panel == types.PanelCompanyForm && state.EditingID != "" {
			c, err := s.uc.Company.GetCompany(ctx, model.CompanyID(state.EditingID))
			if err != nil {
				return nil, err
			}
			data.EditCompany = c
		}

	case types.SectionRisk:
		names := make(map[model.CompanyID]string, len(companies))
		for _, c := range companies {
			names[c.ID] = c.Name
		}
		for _, r := range risks {
			data.Risks = append(data.Risks, riskItem{Risk: r, CompanyName: names[r.CompanyID]})
		}
		if state.Panel == types.PanelRiskForm && state.EditingID != "" {
			r, err := s.uc.Risk.GetRisk(ctx, model.RiskID(state.EditingID))
			if err != nil {
				return nil, err
			}
			data.EditRisk = r
		}

	case types.SectionControl:
		names := make(map[model.RiskID]string, len(risks))
		for _, r := range risks {
			names[r.ID] = r.Name
		}
		controls, err := s.uc.Control.ListControls(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range controls {
			data.Controls = append(data.Controls, controlItem{Control: c, RiskName: names[c.RiskID]})
		}
		if state.Panel == types.PanelControlForm && state.EditingID != "" {
			c, err := s.uc.Control.GetControl(ctx, model.ControlID(state.EditingID))
			if err != nil {
				return nil, err
			}
			data.EditControl = c
		}
	}

	return data, nil
}

func (s *Server) buildDetail(ctx context.Context, state model.ViewState) (*detailView, error) {
	matrix, err := s.uc.Matrix.GetMatrix(ctx, state.SelectedCompanyID)
	if err != nil {
		return nil, err
	}

	detail := &detailView{
		Matrix:       matrix,
		Risks:        matrix.Risks(),
		TargetRiskID: state.TargetRiskID,
	}

	switch state.Panel {
	case types.PanelRiskSelector:
		detail.AssignableRisks, err = s.uc.Risk.ListAssignableRisks(ctx, state.SelectedCompanyID)
		if err != nil {
			return nil, err
		}
	case types.PanelControlSelector:
		detail.AssignableControls, err = s.uc.Control.ListAssignableControls(ctx, state.TargetRiskID)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}
