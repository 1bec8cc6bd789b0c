package interfaces

import (
	"context"

	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type RiskRepository interface {
	// Create appends a new risk with a generated ID
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID
	Get(ctx context.Context, id model.RiskID) (*model.Risk, error)

	// List retrieves all risks in creation order
	List(ctx context.Context) ([]*model.Risk, error)

	// ListByCompany retrieves the risks owned by a company in creation order
	ListByCompany(ctx context.Context, companyID model.CompanyID) ([]*model.Risk, error)

	// Update replaces every field except ID
	Update(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Delete deletes a risk by ID. Controls are not touched.
	Delete(ctx context.Context, id model.RiskID) error

	// DeleteByCompany deletes every risk owned by a company and returns the
	// IDs of the deleted risks
	DeleteByCompany(ctx context.Context, companyID model.CompanyID) ([]model.RiskID, error)
}
