package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type controlRepository struct {
	mu       sync.RWMutex
	controls []*model.Control
}

func newControlRepository() *controlRepository {
	return &controlRepository{
		controls: make([]*model.Control, 0),
	}
}

func (r *controlRepository) indexOf(id model.ControlID) int {
	for i, c := range r.controls {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func riskSet(riskIDs []model.RiskID) map[model.RiskID]struct{} {
	set := make(map[model.RiskID]struct{}, len(riskIDs))
	for _, id := range riskIDs {
		set[id] = struct{}{}
	}
	return set
}

func (r *controlRepository) Create(ctx context.Context, control *model.Control) (*model.Control, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := control.Copy()
	created.ID = model.NewControlID()

	r.controls = append(r.controls, created)
	return created.Copy(), nil
}

func (r *controlRepository) Get(ctx context.Context, id model.ControlID) (*model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", id))
	}

	return r.controls[idx].Copy(), nil
}

func (r *controlRepository) List(ctx context.Context) ([]*model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controls := make([]*model.Control, 0, len(r.controls))
	for _, c := range r.controls {
		controls = append(controls, c.Copy())
	}

	return controls, nil
}

func (r *controlRepository) ListByRisks(ctx context.Context, riskIDs []model.RiskID) ([]*model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := riskSet(riskIDs)
	controls := make([]*model.Control, 0)
	for _, c := range r.controls {
		if _, ok := set[c.RiskID]; ok {
			controls = append(controls, c.Copy())
		}
	}

	return controls, nil
}

func (r *controlRepository) Update(ctx context.Context, control *model.Control) (*model.Control, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(control.ID)
	if idx < 0 {
		return nil, goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", control.ID))
	}

	updated := control.Copy()
	r.controls[idx] = updated
	return updated.Copy(), nil
}

func (r *controlRepository) Delete(ctx context.Context, id model.ControlID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", id))
	}

	r.controls = append(r.controls[:idx], r.controls[idx+1:]...)
	return nil
}

func (r *controlRepository) DeleteByRisks(ctx context.Context, riskIDs []model.RiskID) (int, error) {
	if len(riskIDs) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	set := riskSet(riskIDs)
	remaining := make([]*model.Control, 0, len(r.controls))
	for _, c := range r.controls {
		if _, ok := set[c.RiskID]; ok {
			continue
		}
		remaining = append(remaining, c)
	}

	deleted := len(r.controls) - len(remaining)
	r.controls = remaining
	return deleted, nil
}
