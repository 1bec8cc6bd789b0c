package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Company() CompanyRepository
	Risk() RiskRepository
	Control() ControlRepository
	Session() SessionRepository
}
