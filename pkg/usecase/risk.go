package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
)

type RiskUseCase struct {
	d *dispatcher
}

// CreateRisk creates a new risk bound to an existing company
func (uc *RiskUseCase) CreateRisk(ctx context.Context, companyID model.CompanyID, name, description string, level types.RiskLevel) (*model.Risk, error) {
	risk := &model.Risk{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Level:       level.Normalize(),
		CompanyID:   companyID,
	}
	if err := validateRecord(risk); err != nil {
		return nil, err
	}

	var created *model.Risk
	err := uc.d.write(ctx, func() error {
		if _, err := uc.d.repo.Company().Get(ctx, companyID); err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, companyID))
		}

		r, err := uc.d.repo.Risk().Create(ctx, risk)
		if err != nil {
			return goerr.Wrap(err, "failed to create risk")
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityRisk, metrics.OpCreate, 1)
	logging.From(ctx).Info("risk created", "risk_id", created.ID, "company_id", companyID)
	return created, nil
}

// AssignExistingRisk attaches a copy of another risk to a company. The copy
// gets a new ID; the source risk is left unchanged.
func (uc *RiskUseCase) AssignExistingRisk(ctx context.Context, companyID model.CompanyID, sourceID model.RiskID) (*model.Risk, error) {
	var created *model.Risk
	err := uc.d.write(ctx, func() error {
		if _, err := uc.d.repo.Company().Get(ctx, companyID); err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, companyID))
		}

		source, err := uc.d.repo.Risk().Get(ctx, sourceID)
		if err != nil {
			return goerr.Wrap(ErrRiskNotFound, "source risk not found", goerr.V(RiskIDKey, sourceID))
		}

		r, err := uc.d.repo.Risk().Create(ctx, source.CloneFor(companyID))
		if err != nil {
			return goerr.Wrap(err, "failed to copy risk", goerr.V(RiskIDKey, sourceID))
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityRisk, metrics.OpAssign, 1)
	logging.From(ctx).Info("risk assigned",
		"risk_id", created.ID,
		"source_risk_id", sourceID,
		"company_id", companyID,
	)
	return created, nil
}

// UpdateRisk replaces the fields of a risk, including its owning company
func (uc *RiskUseCase) UpdateRisk(ctx context.Context, id model.RiskID, companyID model.CompanyID, name, description string, level types.RiskLevel) (*model.Risk, error) {
	var updated *model.Risk
	err := uc.d.write(ctx, func() error {
		existing, err := uc.d.repo.Risk().Get(ctx, id)
		if err != nil {
			return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
		}

		if companyID == "" {
			companyID = existing.CompanyID
		}
		risk := &model.Risk{
			ID:          existing.ID,
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
			Level:       level.Normalize(),
			CompanyID:   companyID,
		}
		if err := validateRecord(risk); err != nil {
			return err
		}
		if _, err := uc.d.repo.Company().Get(ctx, companyID); err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, companyID))
		}

		r, err := uc.d.repo.Risk().Update(ctx, risk)
		if err != nil {
			return goerr.Wrap(err, "failed to update risk", goerr.V(RiskIDKey, id))
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityRisk, metrics.OpUpdate, 1)
	return updated, nil
}

// DeleteRisk removes the risk and every control it owns
func (uc *RiskUseCase) DeleteRisk(ctx context.Context, id model.RiskID) (*CascadeResult, error) {
	result := &CascadeResult{}

	err := uc.d.write(ctx, func() error {
		if err := uc.d.repo.Risk().Delete(ctx, id); err != nil {
			return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
		}
		result.Risks = 1

		n, err := uc.d.repo.Control().DeleteByRisks(ctx, []model.RiskID{id})
		if err != nil {
			return goerr.Wrap(err, "failed to delete controls of risk", goerr.V(RiskIDKey, id))
		}
		result.Controls = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityRisk, metrics.OpDelete, 1)
	uc.d.metrics.Mutation(metrics.EntityControl, metrics.OpDelete, result.Controls)
	logging.From(ctx).Info("risk deleted", "risk_id", id, "controls", result.Controls)
	return result, nil
}

func (uc *RiskUseCase) GetRisk(ctx context.Context, id model.RiskID) (*model.Risk, error) {
	var risk *model.Risk
	err := uc.d.read(func() error {
		r, err := uc.d.repo.Risk().Get(ctx, id)
		if err != nil {
			return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
		}
		risk = r
		return nil
	})
	return risk, err
}

func (uc *RiskUseCase) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	var risks []*model.Risk
	err := uc.d.read(func() error {
		list, err := uc.d.repo.Risk().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list risks")
		}
		risks = list
		return nil
	})
	return risks, err
}

// ListAssignableRisks returns the risks that can be copied into a company:
// every risk not already owned by it
func (uc *RiskUseCase) ListAssignableRisks(ctx context.Context, companyID model.CompanyID) ([]*model.Risk, error) {
	risks, err := uc.ListRisks(ctx)
	if err != nil {
		return nil, err
	}

	assignable := make([]*model.Risk, 0, len(risks))
	for _, r := range risks {
		if r.CompanyID != companyID {
			assignable = append(assignable, r)
		}
	}
	return assignable, nil
}
