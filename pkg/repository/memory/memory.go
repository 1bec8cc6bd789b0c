package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/interfaces"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = goerr.New("not found")

type Memory struct {
	company *companyRepository
	risk    *riskRepository
	control *controlRepository
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		company: newCompanyRepository(),
		risk:    newRiskRepository(),
		control: newControlRepository(),
		session: newSessionRepository(),
	}
}

func (m *Memory) Company() interfaces.CompanyRepository {
	return m.company
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Control() interfaces.ControlRepository {
	return m.control
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

// Close is a no-op; records live until the process exits.
func (m *Memory) Close() error {
	return nil
}
