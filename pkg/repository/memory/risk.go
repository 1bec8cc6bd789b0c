package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type riskRepository struct {
	mu    sync.RWMutex
	risks []*model.Risk
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks: make([]*model.Risk, 0),
	}
}

func (r *riskRepository) indexOf(id model.RiskID) int {
	for i, risk := range r.risks {
		if risk.ID == id {
			return i
		}
	}
	return -1
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := risk.Copy()
	created.ID = model.NewRiskID()

	r.risks = append(r.risks, created)
	return created.Copy(), nil
}

func (r *riskRepository) Get(ctx context.Context, id model.RiskID) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	return r.risks[idx].Copy(), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.Risk, 0, len(r.risks))
	for _, risk := range r.risks {
		risks = append(risks, risk.Copy())
	}

	return risks, nil
}

func (r *riskRepository) ListByCompany(ctx context.Context, companyID model.CompanyID) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.Risk, 0)
	for _, risk := range r.risks {
		if risk.CompanyID == companyID {
			risks = append(risks, risk.Copy())
		}
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(risk.ID)
	if idx < 0 {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", risk.ID))
	}

	updated := risk.Copy()
	r.risks[idx] = updated
	return updated.Copy(), nil
}

func (r *riskRepository) Delete(ctx context.Context, id model.RiskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	r.risks = append(r.risks[:idx], r.risks[idx+1:]...)
	return nil
}

func (r *riskRepository) DeleteByCompany(ctx context.Context, companyID model.CompanyID) ([]model.RiskID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := make([]model.RiskID, 0)
	remaining := make([]*model.Risk, 0, len(r.risks))
	for _, risk := range r.risks {
		if risk.CompanyID == companyID {
			deleted = append(deleted, risk.ID)
			continue
		}
		remaining = append(remaining, risk)
	}

	r.risks = remaining
	return deleted, nil
}
