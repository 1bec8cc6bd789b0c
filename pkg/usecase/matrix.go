package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type MatrixUseCase struct {
	d *dispatcher
}

// GetMatrix builds the risk/control matrix of one company
func (uc *MatrixUseCase) GetMatrix(ctx context.Context, companyID model.CompanyID) (*model.Matrix, error) {
	var matrix *model.Matrix
	err := uc.d.read(func() error {
		m, err := uc.buildMatrix(ctx, companyID)
		if err != nil {
			return err
		}
		matrix = m
		return nil
	})
	return matrix, err
}

// ListMatrices builds the matrix of every company in creation order
func (uc *MatrixUseCase) ListMatrices(ctx context.Context) ([]*model.Matrix, error) {
	var matrices []*model.Matrix
	err := uc.d.read(func() error {
		companies, err := uc.d.repo.Company().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list companies")
		}

		for _, company := range companies {
			m, err := uc.buildMatrix(ctx, company.ID)
			if err != nil {
				return err
			}
			matrices = append(matrices, m)
		}
		return nil
	})
	return matrices, err
}

// buildMatrix must be called with the dispatcher lock held
func (uc *MatrixUseCase) buildMatrix(ctx context.Context, companyID model.CompanyID) (*model.Matrix, error) {
	company, err := uc.d.repo.Company().Get(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(ErrCompanyNotFound, "company not found", goerr.V(CompanyIDKey, companyID))
	}

	risks, err := uc.d.repo.Risk().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks of company", goerr.V(CompanyIDKey, companyID))
	}

	riskIDs := make([]model.RiskID, len(risks))
	for i, r := range risks {
		riskIDs[i] = r.ID
	}

	controls, err := uc.d.repo.Control().ListByRisks(ctx, riskIDs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list controls of company", goerr.V(CompanyIDKey, companyID))
	}

	return model.BuildMatrix(company, risks, controls), nil
}
