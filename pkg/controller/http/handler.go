package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/secmon-lab/riskmatrix/pkg/utils/errutil"
)

// statusOf maps use case errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrRequiredField),
		errors.Is(err, usecase.ErrInvalidOption),
		errors.Is(err, usecase.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrCompanyNotFound),
		errors.Is(err, usecase.ErrRiskNotFound),
		errors.Is(err, usecase.ErrControlNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// action wraps a form POST handler: it parses the form, runs fn and
// redirects back to the page
func action(fn func(r *http.Request, session *model.Session) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to parse form"), http.StatusBadRequest)
			return
		}

		if err := fn(r, sessionFrom(r.Context())); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// submitted closes the form the session was editing once its record is saved
func (s *Server) submitted(r *http.Request, session *model.Session) error {
	_, err := s.uc.Session.ClosePanel(r.Context(), session.ID)
	return err
}

func (s *Server) toggleLanguage(r *http.Request, session *model.Session) error {
	_, err := s.uc.Session.ToggleLanguage(r.Context(), session.ID)
	return err
}

func (s *Server) navigate(r *http.Request, session *model.Session) error {
	section := types.Section(chi.URLParam(r, "section"))
	_, err := s.uc.Session.Navigate(r.Context(), session.ID, section)
	return err
}

func (s *Server) openPanel(r *http.Request, session *model.Session) error {
	panel := types.Panel(chi.URLParam(r, "panel"))
	_, err := s.uc.Session.OpenPanel(r.Context(), session.ID, panel, r.PostFormValue("target"))
	return err
}

func (s *Server) closePanel(r *http.Request, session *model.Session) error {
	_, err := s.uc.Session.ClosePanel(r.Context(), session.ID)
	return err
}

func (s *Server) back(r *http.Request, session *model.Session) error {
	_, err := s.uc.Session.Back(r.Context(), session.ID)
	return err
}

func (s *Server) selectCompany(r *http.Request, session *model.Session) error {
	id := model.CompanyID(chi.URLParam(r, "id"))
	_, err := s.uc.Session.SelectCompany(r.Context(), session.ID, id)
	return err
}

func (s *Server) createCompany(r *http.Request, session *model.Session) error {
	if _, err := s.uc.Company.CreateCompany(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("description"),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) updateCompany(r *http.Request, session *model.Session) error {
	id := model.CompanyID(chi.URLParam(r, "id"))
	if _, err := s.uc.Company.UpdateCompany(r.Context(), id,
		r.PostFormValue("name"),
		r.PostFormValue("description"),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) deleteCompany(r *http.Request, session *model.Session) error {
	id := model.CompanyID(chi.URLParam(r, "id"))
	_, err := s.uc.Company.DeleteCompany(r.Context(), id)
	return err
}

func (s *Server) createCompanyRisk(r *http.Request, session *model.Session) error {
	companyID := model.CompanyID(chi.URLParam(r, "id"))
	if _, err := s.uc.Risk.CreateRisk(r.Context(), companyID,
		r.PostFormValue("name"),
		r.PostFormValue("description"),
		types.RiskLevel(r.PostFormValue("level")),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) assignRisk(r *http.Request, session *model.Session) error {
	companyID := model.CompanyID(chi.URLParam(r, "id"))
	sourceID := model.RiskID(r.PostFormValue("risk_id"))
	if sourceID == "" {
		return goerr.Wrap(usecase.ErrRequiredField, "risk to assign is required", goerr.V(usecase.FieldKey, "risk_id"))
	}
	if _, err := s.uc.Risk.AssignExistingRisk(r.Context(), companyID, sourceID); err != nil {
		return err
	}
	return s.submitted(r, session)
}

// companyRisk resolves the target risk of a control action and checks it
// belongs to the company of the URL
func (s *Server) companyRisk(r *http.Request) (*model.Risk, error) {
	companyID := model.CompanyID(chi.URLParam(r, "id"))
	riskID := model.RiskID(r.PostFormValue("risk_id"))
	if riskID == "" {
		return nil, goerr.Wrap(usecase.ErrRequiredField, "target risk is required", goerr.V(usecase.FieldKey, "risk_id"))
	}

	risk, err := s.uc.Risk.GetRisk(r.Context(), riskID)
	if err != nil {
		return nil, err
	}
	if risk.CompanyID != companyID {
		return nil, goerr.Wrap(usecase.ErrRiskNotFound, "risk does not belong to company",
			goerr.V(usecase.RiskIDKey, riskID), goerr.V(usecase.CompanyIDKey, companyID))
	}
	return risk, nil
}

func (s *Server) createCompanyControl(r *http.Request, session *model.Session) error {
	risk, err := s.companyRisk(r)
	if err != nil {
		return err
	}
	if _, err := s.uc.Control.CreateControl(r.Context(), risk.ID,
		r.PostFormValue("name"),
		r.PostFormValue("description"),
		types.Frequency(r.PostFormValue("frequency")),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) assignControl(r *http.Request, session *model.Session) error {
	risk, err := s.companyRisk(r)
	if err != nil {
		return err
	}
	sourceID := model.ControlID(r.PostFormValue("control_id"))
	if sourceID == "" {
		return goerr.Wrap(usecase.ErrRequiredField, "control to assign is required", goerr.V(usecase.FieldKey, "control_id"))
	}
	if _, err := s.uc.Control.AssignExistingControl(r.Context(), risk.ID, sourceID); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) createRisk(r *http.Request, session *model.Session) error {
	companyID := model.CompanyID(r.PostFormValue("company_id"))
	if companyID == "" {
		return goerr.Wrap(usecase.ErrRequiredField, "company is required", goerr.V(usecase.FieldKey, "company_id"))
	}
	if _, err := s.uc.Risk.CreateRisk(r.Context(), companyID,
		r.PostFormValue("name"),
		r.PostFormValue("description"),
		types.RiskLevel(r.PostFormValue("level")),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) updateRisk(r *http.Request, session *model.Session) error {
	id := model.RiskID(chi.URLParam(r, "id"))
	if _, err := s.uc.Risk.UpdateRisk(r.Context(), id,
		model.CompanyID(r.PostFormValue("company_id")),
		r.PostFormValue("name"),
		r.PostFormValue("description"),
		types.RiskLevel(r.PostFormValue("level")),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) deleteRisk(r *http.Request, session *model.Session) error {
	id := model.RiskID(chi.URLParam(r, "id"))
	_, err := s.uc.Risk.DeleteRisk(r.Context(), id)
	return err
}

func (s *Server) createControl(r *http.Request, session *model.Session) error {
	riskID := model.RiskID(r.PostFormValue("risk_id"))
	if riskID == "" {
		return goerr.Wrap(usecase.ErrRequiredField, "risk is required", goerr.V(usecase.FieldKey, "risk_id"))
	}
	if _, err := s.uc.Control.CreateControl(r.Context(), riskID,
		r.PostFormValue("name"),
		r.PostFormValue("description"),
		types.Frequency(r.PostFormValue("frequency")),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) updateControl(r *http.Request, session *model.Session) error {
	id := model.ControlID(chi.URLParam(r, "id"))
	if _, err := s.uc.Control.UpdateControl(r.Context(), id,
		model.RiskID(r.PostFormValue("risk_id")),
		r.PostFormValue("name"),
		r.PostFormValue("description"),
		types.Frequency(r.PostFormValue("frequency")),
	); err != nil {
		return err
	}
	return s.submitted(r, session)
}

func (s *Server) deleteControl(r *http.Request, session *model.Session) error {
	id := model.ControlID(chi.URLParam(r, "id"))
	return s.uc.Control.DeleteControl(r.Context(), id)
}
