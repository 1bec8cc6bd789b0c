package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type companyRepository struct {
	mu        sync.RWMutex
	companies []*model.Company
}

func newCompanyRepository() *companyRepository {
	return &companyRepository{
		companies: make([]*model.Company, 0),
	}
}

func (r *companyRepository) indexOf(id model.CompanyID) int {
	for i, c := range r.companies {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := &model.Company{
		ID:          model.NewCompanyID(),
		Name:        company.Name,
		Description: company.Description,
		CreatedAt:   time.Now().UTC(),
	}

	r.companies = append(r.companies, created)
	return created.Copy(), nil
}

func (r *companyRepository) Get(ctx context.Context, id model.CompanyID) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return r.companies[idx].Copy(), nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]*model.Company, 0, len(r.companies))
	for _, c := range r.companies {
		companies = append(companies, c.Copy())
	}

	return companies, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(company.ID)
	if idx < 0 {
		return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", company.ID))
	}

	existing := r.companies[idx]
	updated := &model.Company{
		ID:          existing.ID,
		Name:        company.Name,
		Description: company.Description,
		CreatedAt:   existing.CreatedAt,
	}

	r.companies[idx] = updated
	return updated.Copy(), nil
}

func (r *companyRepository) Delete(ctx context.Context, id model.CompanyID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
	}

	r.companies = append(r.companies[:idx], r.companies[idx+1:]...)
	return nil
}
