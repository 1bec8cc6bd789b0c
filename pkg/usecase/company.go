package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
)

type CompanyUseCase struct {
	d *dispatcher
}

// CascadeResult reports the dependents removed together with a record
type CascadeResult struct {
	Risks    int
	Controls int
}

func (uc *CompanyUseCase) CreateCompany(ctx context.Context, name, description string) (*model.Company, error) {
	company := &model.Company{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := validateRecord(company); err != nil {
		return nil, err
	}

	var created *model.Company
	err := uc.d.write(ctx, func() error {
		c, err := uc.d.repo.Company().Create(ctx, company)
		if err != nil {
			return goerr.Wrap(err, "failed to create company")
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityCompany, metrics.OpCreate, 1)
	logging.From(ctx).Info("company created", "company_id", created.ID, "name", created.Name)
	return created, nil
}

func (uc *CompanyUseCase) UpdateCompany(ctx context.Context, id model.CompanyID, name, description string) (*model.Company, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := validateRecord(&model.Company{ID: id, Name: name, Description: description}); err != nil {
		return nil, err
	}

	var updated *model.Company
	err := uc.d.write(ctx, func() error {
		existing, err := uc.d.repo.Company().Get(ctx, id)
		if err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, id))
		}

		existing.Name = name
		existing.Description = description

		c, err := uc.d.repo.Company().Update(ctx, existing)
		if err != nil {
			return goerr.Wrap(err, "failed to update company", goerr.V(CompanyIDKey, id))
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityCompany, metrics.OpUpdate, 1)
	return updated, nil
}

// DeleteCompany removes the company, every risk it owns, and every control
// owned by those risks, as one operation.
func (uc *CompanyUseCase) DeleteCompany(ctx context.Context, id model.CompanyID) (*CascadeResult, error) {
	result := &CascadeResult{}

	err := uc.d.write(ctx, func() error {
		if _, err := uc.d.repo.Company().Get(ctx, id); err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, id))
		}

		riskIDs, err := uc.d.repo.Risk().DeleteByCompany(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to delete risks of company", goerr.V(CompanyIDKey, id))
		}
		result.Risks = len(riskIDs)

		n, err := uc.d.repo.Control().DeleteByRisks(ctx, riskIDs)
		if err != nil {
			return goerr.Wrap(err, "failed to delete controls of company", goerr.V(CompanyIDKey, id))
		}
		result.Controls = n

		if err := uc.d.repo.Company().Delete(ctx, id); err != nil {
			return goerr.Wrap(err, "failed to delete company", goerr.V(CompanyIDKey, id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.d.metrics.Mutation(metrics.EntityCompany, metrics.OpDelete, 1)
	uc.d.metrics.Mutation(metrics.EntityRisk, metrics.OpDelete, result.Risks)
	uc.d.metrics.Mutation(metrics.EntityControl, metrics.OpDelete, result.Controls)
	logging.From(ctx).Info("company deleted",
		"company_id", id,
		"risks", result.Risks,
		"controls", result.Controls,
	)
	return result, nil
}

func (uc *CompanyUseCase) GetCompany(ctx context.Context, id model.CompanyID) (*model.Company, error) {
	var company *model.Company
	err := uc.d.read(func() error {
		c, err := uc.d.repo.Company().Get(ctx, id)
		if err != nil {
			return goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, id))
		}
		company = c
		return nil
	})
	return company, err
}

func (uc *CompanyUseCase) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	err := uc.d.read(func() error {
		list, err := uc.d.repo.Company().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list companies")
		}
		companies = list
		return nil
	})
	return companies, err
}
