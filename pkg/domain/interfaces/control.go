package interfaces

import (
	"context"

	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type ControlRepository interface {
	// Create appends a new control with a generated ID
	Create(ctx context.Context, control *model.Control) (*model.Control, error)

	// Get retrieves a control by ID
	Get(ctx context.Context, id model.ControlID) (*model.Control, error)

	// List retrieves all controls in creation order
	List(ctx context.Context) ([]*model.Control, error)

	// ListByRisks retrieves the controls owned by any of the given risks in creation order
	ListByRisks(ctx context.Context, riskIDs []model.RiskID) ([]*model.Control, error)

	// Update replaces every field except ID
	Update(ctx context.Context, control *model.Control) (*model.Control, error)

	// Delete deletes a control by ID
	Delete(ctx context.Context, id model.ControlID) error

	// DeleteByRisks deletes every control owned by any of the given risks and
	// returns the number of deleted controls
	DeleteByRisks(ctx context.Context, riskIDs []model.RiskID) (int, error)
}
