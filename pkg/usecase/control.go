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

type ControlUseCase struct {
	d *dispatcher
}

// CreateControl creates a new control bound to an existing risk
func (uc *ControlUseCase) CreateControl(ctx context.Context, riskID model.RiskID, name, description string, freq types.Frequency) (*model.Control, error) {
	control := &model.Control{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Frequency:   freq.Normalize(),
		RiskID:      riskID,
	}
	if err := validateRecord(control); err != nil {
		return nil, err
	}

	var created *model.Control
	err := uc.d.write(ctx, func() error {
		if _, err := uc.d.repo.Risk().Get(ctx, riskID); err != nil {
			return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, riskID))
		}

		c, err := uc.d.repo.Control().Create(ctx, control)
		if err != nil {
			return goerr.Wrap(err, "failed to create control")
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityControl, metrics.OpCreate, 1)
	logging.From(ctx).Info("control created", "control_id", created.ID, "risk_id", riskID)
	return created, nil
}

// AssignExistingControl attaches a copy of another control to a risk. The
// copy gets a new ID; the source control is left unchanged.
func (uc *ControlUseCase) AssignExistingControl(ctx context.Context, riskID model.RiskID, sourceID model.ControlID) (*model.Control, error) {
	var created *model.Control
	err := uc.d.write(ctx, func() error {
		if _, err := uc.d.repo.Risk().Get(ctx, riskID); err != nil {
			return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, riskID))
		}

		source, err := uc.d.repo.Control().Get(ctx, sourceID)
		if err != nil {
			return goerr.Wrap(ErrControlNotFound, "source control not found", goerr.V(ControlIDKey, sourceID))
		}

		c, err := uc.d.repo.Control().Create(ctx, source.CloneFor(riskID))
		if err != nil {
			return goerr.Wrap(err, "failed to copy control", goerr.V(ControlIDKey, sourceID))
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityControl, metrics.OpAssign, 1)
	logging.From(ctx).Info("control assigned",
		"control_id", created.ID,
		"source_control_id", sourceID,
		"risk_id", riskID,
	)
	return created, nil
}

// UpdateControl replaces the fields of a control, including its owning risk
func (uc *ControlUseCase) UpdateControl(ctx context.Context, id model.ControlID, riskID model.RiskID, name, description string, freq types.Frequency) (*model.Control, error) {
	var updated *model.Control
	err := uc.d.write(ctx, func() error {
		existing, err := uc.d.repo.Control().Get(ctx, id)
		if err != nil {
			return goerr.Wrap(ErrControlNotFound, "control not found", goerr.V(ControlIDKey, id))
		}

		if riskID == "" {
			riskID = existing.RiskID
		}
		control := &model.Control{
			ID:          existing.ID,
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
			Frequency:   freq.Normalize(),
			RiskID:      riskID,
		}
		if err := validateRecord(control); err != nil {
			return err
		}
		if _, err := uc.d.repo.Risk().Get(ctx, riskID); err != nil {
			return goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, riskID))
		}

		c, err := uc.d.repo.Control().Update(ctx, control)
		if err != nil {
			return goerr.Wrap(err, "failed to update control", goerr.V(ControlIDKey, id))
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityControl, metrics.OpUpdate, 1)
	return updated, nil
}

func (uc *ControlUseCase) DeleteControl(ctx context.Context, id model.ControlID) error {
	err := uc.d.write(ctx, func() error {
		if err := uc.d.repo.Control().Delete(ctx, id); err != nil {
			return goerr.Wrap(ErrControlNotFound, "control not found", goerr.V(ControlIDKey, id))
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.d.metrics.Mutation(metrics.EntityControl, metrics.OpDelete, 1)
	return nil
}

func (uc *ControlUseCase) GetControl(ctx context.Context, id model.ControlID) (*model.Control, error) {
	var control *model.Control
	err := uc.d.read(func() error {
		c, err := uc.d.repo.Control().Get(ctx, id)
		if err != nil {
			return goerr.Wrap(ErrControlNotFound, "control not found", goerr.V(ControlIDKey, id))
		}
		control = c
		return nil
	})
	return control, err
}

func (uc *ControlUseCase) ListControls(ctx context.Context) ([]*model.Control, error) {
	var controls []*model.Control
	err := uc.d.read(func() error {
		list, err := uc.d.repo.Control().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list controls")
		}
		controls = list
		return nil
	})
	return controls, err
}

// ListAssignableControls returns the controls that can be copied onto a
// risk: every control not already scoped to it
func (uc *ControlUseCase) ListAssignableControls(ctx context.Context, riskID model.RiskID) ([]*model.Control, error) {
	controls, err := uc.ListControls(ctx)
	if err != nil {
		return nil, err
	}

	assignable := make([]*model.Control, 0, len(controls))
	for _, c := range controls {
		if c.RiskID != riskID {
			assignable = append(assignable, c)
		}
	}
	return assignable, nil
}
