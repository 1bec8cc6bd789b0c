package interfaces

import (
	"context"

	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type CompanyRepository interface {
	// Create appends a new company with a generated ID and CreatedAt
	Create(ctx context.Context, company *model.Company) (*model.Company, error)

	// Get retrieves a company by ID
	Get(ctx context.Context, id model.CompanyID) (*model.Company, error)

	// List retrieves all companies in creation order
	List(ctx context.Context) ([]*model.Company, error)

	// Update replaces name and description, preserving ID and CreatedAt
	Update(ctx context.Context, company *model.Company) (*model.Company, error)

	// Delete deletes a company by ID. Dependents are not touched.
	Delete(ctx context.Context, id model.CompanyID) error
}
