package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/i18n"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
)

// sessionSweepInterval bounds how often idle sessions are swept
const sessionSweepInterval = time.Minute

// SessionUseCase owns the ViewState of every browser session. Each action
// is a read-modify-write of one session performed under mu. Sessions idle
// for longer than ttl are evicted.
type SessionUseCase struct {
	d          *dispatcher
	detectLang bool
	ttl        time.Duration
	now        func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

// Start returns the session identified by id, or a new session when id is
// empty, unknown or expired. A new session never reuses a client supplied id.
func (uc *SessionUseCase) Start(ctx context.Context, id model.SessionID, acceptLanguage string) (*model.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	uc.sweep(ctx, now)

	if id != "" {
		session, err := uc.d.repo.Session().Get(ctx, id)
		switch {
		case err != nil:
			logging.From(ctx).Debug("unknown session, starting a new one", "session_id", id)

		case uc.expired(session, now):
			if err := uc.d.repo.Session().Delete(ctx, id); err != nil {
				return nil, goerr.Wrap(err, "failed to delete expired session", goerr.V(SessionIDKey, id))
			}
			logging.From(ctx).Debug("session expired, starting a new one", "session_id", id)

		default:
			_ = uc.d.read(func() error {
				uc.reconcile(ctx, &session.State)
				return nil
			})
			session.UpdatedAt = now
			if err := uc.d.repo.Session().Put(ctx, session); err != nil {
				return nil, goerr.Wrap(err, "failed to save session", goerr.V(SessionIDKey, id))
			}
			return session, nil
		}
	}

	lang := types.DefaultLanguage
	if uc.detectLang {
		lang = i18n.Negotiate(acceptLanguage)
	}

	session := &model.Session{
		ID:        model.NewSessionID(),
		State:     model.NewViewState(lang),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.d.repo.Session().Put(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session")
	}

	logging.From(ctx).Debug("session started", "session_id", session.ID, "language", lang)
	return session, nil
}

func (uc *SessionUseCase) expired(session *model.Session, now time.Time) bool {
	return uc.ttl > 0 && session.UpdatedAt.Before(now.Add(-uc.ttl))
}

// sweep evicts idle sessions at most once per sessionSweepInterval. Failures
// are logged and retried on the next sweep.
func (uc *SessionUseCase) sweep(ctx context.Context, now time.Time) {
	if uc.ttl <= 0 || now.Sub(uc.lastSweep) < sessionSweepInterval {
		return
	}
	uc.lastSweep = now

	removed, err := uc.d.repo.Session().DeleteIdle(ctx, now.Add(-uc.ttl))
	if err != nil {
		logging.From(ctx).Warn("failed to evict idle sessions", "error", err)
		return
	}
	if removed > 0 {
		logging.From(ctx).Debug("idle sessions evicted", "count", removed)
	}
}

// ToggleLanguage switches the session between the supported languages.
// Entity data is not touched.
func (uc *SessionUseCase) ToggleLanguage(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return uc.update(ctx, id, func(s *model.ViewState) error {
		s.Language = s.Language.Toggle()
		return nil
	})
}

// Navigate moves to another section. Any transition leaves the company
// detail view and discards the open panel.
func (uc *SessionUseCase) Navigate(ctx context.Context, id model.SessionID, section types.Section) (*model.Session, error) {
	if !section.IsValid() {
		return nil, goerr.Wrap(ErrInvalidAction, "unknown section", goerr.V("section", section))
	}

	return uc.update(ctx, id, func(s *model.ViewState) error {
		s.Section = section
		s.SelectedCompanyID = ""
		s.ClosePanel()
		return nil
	})
}

// SelectCompany opens the detail view of a company
func (uc *SessionUseCase) SelectCompany(ctx context.Context, id model.SessionID, companyID model.CompanyID) (*model.Session, error) {
	return uc.update(ctx, id, func(s *model.ViewState) error {
		if s.Section != types.SectionCompany {
			return goerr.Wrap(ErrInvalidAction, "company detail is only available in the company section",
				goerr.V("section", s.Section))
		}
		if _, err := uc.d.repo.Company().Get(ctx, companyID); err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, companyID))
		}

		s.SelectedCompanyID = companyID
		s.ClosePanel()
		return nil
	})
}

// Back leaves the company detail view
func (uc *SessionUseCase) Back(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return uc.update(ctx, id, func(s *model.ViewState) error {
		s.SelectedCompanyID = ""
		s.ClosePanel()
		return nil
	})
}

// OpenPanel opens a form or selector. target is the record edited by a form
// (empty to create a new one) or, for the control panels, the risk new
// controls are attached to.
func (uc *SessionUseCase) OpenPanel(ctx context.Context, id model.SessionID, panel types.Panel, target string) (*model.Session, error) {
	if !panel.IsValid() {
		return nil, goerr.Wrap(ErrInvalidAction, "unknown panel", goerr.V("panel", panel))
	}

	return uc.update(ctx, id, func(s *model.ViewState) error {
		if panel.Section() != s.Section {
			return goerr.Wrap(ErrInvalidAction, "panel does not belong to the current section",
				goerr.V("panel", panel), goerr.V("section", s.Section))
		}
		if panel.RequiresDetail() != s.InDetail() {
			return goerr.Wrap(ErrInvalidAction, "panel is not available in the current view",
				goerr.V("panel", panel), goerr.V("company_id", s.SelectedCompanyID))
		}

		next := *s
		next.ClosePanel()
		next.Panel = panel

		switch panel {
		case types.PanelCompanyForm:
			if target != "" {
				if _, err := uc.d.repo.Company().Get(ctx, model.CompanyID(target)); err != nil {
					return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, target))
				}
				next.EditingID = target
			}

		case types.PanelRiskForm:
			if target != "" {
				if _, err := uc.d.repo.Risk().Get(ctx, model.RiskID(target)); err != nil {
					return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, target))
				}
				next.EditingID = target
			}

		case types.PanelControlForm:
			if target != "" {
				if _, err := uc.d.repo.Control().Get(ctx, model.ControlID(target)); err != nil {
					return goerr.Wrap(ErrControlNotFound, "control not found", goerr.V(ControlIDKey, target))
				}
				next.EditingID = target
			}

		case types.PanelControlSelector, types.PanelNewControlForm:
			riskID, err := uc.controlTarget(ctx, s.SelectedCompanyID, model.RiskID(target))
			if err != nil {
				return err
			}
			next.TargetRiskID = riskID
		}

		*s = next
		return nil
	})
}

// ClosePanel discards the open form or selector
func (uc *SessionUseCase) ClosePanel(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return uc.update(ctx, id, func(s *model.ViewState) error {
		s.ClosePanel()
		return nil
	})
}

// controlTarget resolves the risk a control panel works on. Without an
// explicit risk the first risk of the company is used; a company without
// risks cannot receive controls.
func (uc *SessionUseCase) controlTarget(ctx context.Context, companyID model.CompanyID, riskID model.RiskID) (model.RiskID, error) {
	risks, err := uc.d.repo.Risk().ListByCompany(ctx, companyID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list risks of company", goerr.V(CompanyIDKey, companyID))
	}
	if len(risks) == 0 {
		return "", goerr.Wrap(ErrInvalidAction, "company has no risk to attach controls to",
			goerr.V(CompanyIDKey, companyID))
	}

	if riskID == "" {
		return risks[0].ID, nil
	}
	for _, r := range risks {
		if r.ID == riskID {
			return riskID, nil
		}
	}
	return "", goerr.Wrap(ErrRiskNotFound, "risk not found in company",
		goerr.V(RiskIDKey, riskID), goerr.V(CompanyIDKey, companyID))
}

func (uc *SessionUseCase) update(ctx context.Context, id model.SessionID, fn func(s *model.ViewState) error) (*model.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.d.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session", goerr.V(SessionIDKey, id))
	}

	err = uc.d.read(func() error {
		uc.reconcile(ctx, &session.State)
		return fn(&session.State)
	})
	if err != nil {
		return nil, err
	}

	session.UpdatedAt = uc.now()
	if err := uc.d.repo.Session().Put(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session", goerr.V(SessionIDKey, id))
	}

	return session, nil
}

// reconcile drops references to records deleted since the state was last
// saved.
func (uc *SessionUseCase) reconcile(ctx context.Context, s *model.ViewState) {
	if !s.Language.IsValid() {
		s.Language = types.DefaultLanguage
	}
	if !s.Section.IsValid() {
		*s = model.NewViewState(s.Language)
	}

	if s.SelectedCompanyID != "" {
		if _, err := uc.d.repo.Company().Get(ctx, s.SelectedCompanyID); err != nil {
			s.SelectedCompanyID = ""
			if s.Panel.RequiresDetail() {
				s.ClosePanel()
			}
		}
	}

	if s.EditingID != "" && !uc.exists(ctx, s.Panel, s.EditingID) {
		s.ClosePanel()
	}

	if s.TargetRiskID != "" {
		r, err := uc.d.repo.Risk().Get(ctx, s.TargetRiskID)
		if err != nil || r.CompanyID != s.SelectedCompanyID {
			s.ClosePanel()
		}
	}
}

func (uc *SessionUseCase) exists(ctx context.Context, panel types.Panel, id string) bool {
	var err error
	switch panel {
	case types.PanelCompanyForm:
		_, err = uc.d.repo.Company().Get(ctx, model.CompanyID(id))
	case types.PanelRiskForm:
		_, err = uc.d.repo.Risk().Get(ctx, model.RiskID(id))
	case types.PanelControlForm:
		_, err = uc.d.repo.Control().Get(ctx, model.ControlID(id))
	default:
		return false
	}
	return err == nil
}
