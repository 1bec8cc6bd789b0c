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
)

func TestSessionUseCase_Start(t *testing.T) {
	t.Run("new session starts in company section", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		s, err := uc.Session.Start(ctx, "", "es-ES,es;q=0.9")
		gt.NoError(t, err).Required()
		gt.String(t, s.ID.String()).NotEqual("")
		gt.Value(t, s.State.Language).Equal(types.LanguageEnglish)
		gt.Value(t, s.State.Section).Equal(types.SectionCompany)
		gt.Value(t, s.State.Panel).Equal(types.PanelNone)
	})

	t.Run("language detection", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithLanguageDetection(true))
		ctx := context.Background()

		s, err := uc.Session.Start(ctx, "", "es-MX,es;q=0.9,en;q=0.5")
		gt.NoError(t, err).Required()
		gt.Value(t, s.State.Language).Equal(types.LanguageSpanish)
	})

	t.Run("existing session is resumed", func(t *testing.T) {
		uc := newUseCases(t)
		ctx := context.Background()

		s, err := uc.Session.Start(ctx, "", "")
		gt.NoError(t, err).Required()
		_, err = uc.Session.ToggleLanguage(ctx, s.ID)
		gt.NoError(t, err).Required()

		resumed, err := uc.Session.Start(ctx, s.ID, "")
		gt.NoError(t, err).Required()
		gt.Value(t, resumed.ID).Equal(s.ID)
		gt.Value(t, resumed.State.Language).Equal(types.LanguageSpanish)
	})

	t.Run("unknown session id is not reused", func(t *testing.T) {
		uc := newUseCases(t)
		s, err := uc.Session.Start(context.Background(), model.SessionID("forged"), "")
		gt.NoError(t, err).Required()
		gt.Value(t, s.ID).NotEqual(model.SessionID("forged"))
	})
}

func TestSessionUseCase_ToggleLanguage(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	c, err := uc.Company.CreateCompany(ctx, "Acme", "desc")
	gt.NoError(t, err).Required()

	s, err := uc.Session.Start(ctx, "", "")
	gt.NoError(t, err).Required()

	s, err = uc.Session.ToggleLanguage(ctx, s.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, s.State.Language).Equal(types.LanguageSpanish)

	s, err = uc.Session.ToggleLanguage(ctx, s.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, s.State.Language).Equal(types.LanguageEnglish)

	got, err := uc.Company.GetCompany(ctx, c.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("Acme")
	gt.Value(t, got.Description).Equal("desc")
}

func TestSessionUseCase_Navigate(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	c, err := uc.Company.CreateCompany(ctx, "Acme", "desc")
	gt.NoError(t, err).Required()

	s, err := uc.Session.Start(ctx, "", "")
	gt.NoError(t, err).Required()

	s, err = uc.Session.SelectCompany(ctx, s.ID, c.ID)
	gt.NoError(t, err).Required()
	s, err = uc.Session.OpenPanel(ctx, s.ID, types.PanelNewRiskForm, "")
	gt.NoError(t, err).Required()
	gt.Bool(t, s.State.InDetail()).True()

	s, err = uc.Session.Navigate(ctx, s.ID, types.SectionRisk)
	gt.NoError(t, err).Required()
	gt.Value(t, s.State.Section).Equal(types.SectionRisk)
	gt.Value(t, s.State.SelectedCompanyID).Equal(model.CompanyID(""))
	gt.Value(t, s.State.Panel).Equal(types.PanelNone)

	s, err = uc.Session.Navigate(ctx, s.ID, types.SectionCompany)
	gt.NoError(t, err).Required()
	gt.Bool(t, s.State.InDetail()).False()

	_, err = uc.Session.Navigate(ctx, s.ID, types.Section("reports"))
	gt.Error(t, err).Is(usecase.ErrInvalidAction)
}

func TestSessionUseCase_Panels(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	c, err := uc.Company.CreateCompany(ctx, "Acme", "desc")
	gt.NoError(t, err).Required()

	s, err := uc.Session.Start(ctx, "", "")
	gt.NoError(t, err).Required()
	id := s.ID

	t.Run("company form edits an existing company", func(t *testing.T) {
		s, err := uc.Session.OpenPanel(ctx, id, types.PanelCompanyForm, string(c.ID))
		gt.NoError(t, err).Required()
		gt.Value(t, s.State.Panel).Equal(types.PanelCompanyForm)
		gt.Value(t, s.State.EditingID).Equal(string(c.ID))

		s, err = uc.Session.ClosePanel(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, s.State.Panel).Equal(types.PanelNone)
		gt.Value(t, s.State.EditingID).Equal("")
	})

	t.Run("detail panels need a selected company", func(t *testing.T) {
		_, err := uc.Session.OpenPanel(ctx, id, types.PanelRiskSelector, "")
		gt.Error(t, err).Is(usecase.ErrInvalidAction)
	})

	t.Run("panel of another section", func(t *testing.T) {
		_, err := uc.Session.OpenPanel(ctx, id, types.PanelRiskForm, "")
		gt.Error(t, err).Is(usecase.ErrInvalidAction)
	})

	t.Run("unknown panel", func(t *testing.T) {
		_, err := uc.Session.OpenPanel(ctx, id, types.Panel("wizard"), "")
		gt.Error(t, err).Is(usecase.ErrInvalidAction)
	})

	t.Run("control panels need a risk", func(t *testing.T) {
		_, err := uc.Session.SelectCompany(ctx, id, c.ID)
		gt.NoError(t, err).Required()

		_, err = uc.Session.OpenPanel(ctx, id, types.PanelNewControlForm, "")
		gt.Error(t, err).Is(usecase.ErrInvalidAction)
	})

	t.Run("control target defaults to first risk", func(t *testing.T) {
		r1, err := uc.Risk.CreateRisk(ctx, c.ID, "R1", "d", types.RiskLevelLow)
		gt.NoError(t, err).Required()
		r2, err := uc.Risk.CreateRisk(ctx, c.ID, "R2", "d", types.RiskLevelLow)
		gt.NoError(t, err).Required()

		s, err := uc.Session.OpenPanel(ctx, id, types.PanelControlSelector, "")
		gt.NoError(t, err).Required()
		gt.Value(t, s.State.TargetRiskID).Equal(r1.ID)

		s, err = uc.Session.OpenPanel(ctx, id, types.PanelNewControlForm, string(r2.ID))
		gt.NoError(t, err).Required()
		gt.Value(t, s.State.Panel).Equal(types.PanelNewControlForm)
		gt.Value(t, s.State.TargetRiskID).Equal(r2.ID)

		_, err = uc.Session.OpenPanel(ctx, id, types.PanelNewControlForm, string(model.NewRiskID()))
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})

	t.Run("company panel is not offered in detail view", func(t *testing.T) {
		_, err := uc.Session.OpenPanel(ctx, id, types.PanelCompanyForm, "")
		gt.Error(t, err).Is(usecase.ErrInvalidAction)
	})

	t.Run("back leaves detail view", func(t *testing.T) {
		s, err := uc.Session.Back(ctx, id)
		gt.NoError(t, err).Required()
		gt.Bool(t, s.State.InDetail()).False()
		gt.Value(t, s.State.Panel).Equal(types.PanelNone)
	})
}

func TestSessionUseCase_DeletedSelection(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	c, err := uc.Company.CreateCompany(ctx, "Acme", "desc")
	gt.NoError(t, err).Required()

	s, err := uc.Session.Start(ctx, "", "")
	gt.NoError(t, err).Required()
	_, err = uc.Session.SelectCompany(ctx, s.ID, c.ID)
	gt.NoError(t, err).Required()
	_, err = uc.Session.OpenPanel(ctx, s.ID, types.PanelRiskSelector, "")
	gt.NoError(t, err).Required()

	_, err = uc.Company.DeleteCompany(ctx, c.ID)
	gt.NoError(t, err).Required()

	resumed, err := uc.Session.Start(ctx, s.ID, "")
	gt.NoError(t, err).Required()
	gt.Value(t, resumed.ID).Equal(s.ID)
	gt.Bool(t, resumed.State.InDetail()).False()
	gt.Value(t, resumed.State.Panel).Equal(types.PanelNone)

	_, err = uc.Session.SelectCompany(ctx, s.ID, c.ID)
	gt.Error(t, err).Is(usecase.ErrCompanyNotFound)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSessionUseCase_Eviction(t *testing.T) {
	setup := func(t *testing.T) (*usecase.UseCases, *memory.Memory, *fakeClock) {
		t.Helper()
		repo := memory.New()
		clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		uc := usecase.New(repo,
			usecase.WithSessionTTL(time.Hour),
			usecase.WithClock(clock.Now),
		)
		return uc, repo, clock
	}

	t.Run("cookieless requests do not accumulate sessions", func(t *testing.T) {
		uc, repo, clock := setup(t)
		ctx := context.Background()

		var ids []model.SessionID
		for range 100 {
			s, err := uc.Session.Start(ctx, "", "")
			gt.NoError(t, err).Required()
			ids = append(ids, s.ID)
		}

		clock.Advance(2 * time.Hour)
		latest, err := uc.Session.Start(ctx, "", "")
		gt.NoError(t, err).Required()

		for _, id := range ids {
			_, err := repo.Session().Get(ctx, id)
			gt.Error(t, err).Is(memory.ErrNotFound)
		}
		_, err = repo.Session().Get(ctx, latest.ID)
		gt.NoError(t, err)
	})

	t.Run("activity keeps a session alive", func(t *testing.T) {
		uc, repo, clock := setup(t)
		ctx := context.Background()

		s, err := uc.Session.Start(ctx, "", "")
		gt.NoError(t, err).Required()

		clock.Advance(50 * time.Minute)
		resumed, err := uc.Session.Start(ctx, s.ID, "")
		gt.NoError(t, err).Required()
		gt.Value(t, resumed.ID).Equal(s.ID)

		clock.Advance(50 * time.Minute)
		_, err = uc.Session.Start(ctx, "", "")
		gt.NoError(t, err).Required()

		_, err = repo.Session().Get(ctx, s.ID)
		gt.NoError(t, err)
	})

	t.Run("expired session is replaced", func(t *testing.T) {
		uc, repo, clock := setup(t)
		ctx := context.Background()

		s, err := uc.Session.Start(ctx, "", "")
		gt.NoError(t, err).Required()
		_, err = uc.Session.ToggleLanguage(ctx, s.ID)
		gt.NoError(t, err).Required()

		clock.Advance(2 * time.Hour)
		renewed, err := uc.Session.Start(ctx, s.ID, "")
		gt.NoError(t, err).Required()
		gt.Value(t, renewed.ID).NotEqual(s.ID)
		gt.Value(t, renewed.State.Language).Equal(types.LanguageEnglish)

		_, err = repo.Session().Get(ctx, s.ID)
		gt.Error(t, err).Is(memory.ErrNotFound)
	})
}
