package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/interfaces"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
)

type UseCases struct {
	repo       interfaces.Repository
	metrics    *metrics.Metrics
	detectLang bool
	sessionTTL time.Duration
	now        func() time.Time

	Company *CompanyUseCase
	Risk    *RiskUseCase
	Control *ControlUseCase
	Matrix  *MatrixUseCase
	Session *SessionUseCase
}

type Option func(*UseCases)

// WithMetrics records mutations and record counts into m
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *UseCases) {
		uc.metrics = m
	}
}

// WithLanguageDetection makes new sessions start in the language negotiated
// from the Accept-Language header instead of the default language
func WithLanguageDetection(enabled bool) Option {
	return func(uc *UseCases) {
		uc.detectLang = enabled
	}
}

// DefaultSessionTTL is how long a session may stay idle before it is evicted
const DefaultSessionTTL = 24 * time.Hour

// WithSessionTTL sets the idle time after which a session is evicted
func WithSessionTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.sessionTTL = ttl
	}
}

// WithClock replaces the time source used for session timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		sessionTTL: DefaultSessionTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(uc)
	}

	d := newDispatcher(repo, uc.metrics)
	uc.Company = &CompanyUseCase{d: d}
	uc.Risk = &RiskUseCase{d: d}
	uc.Control = &ControlUseCase{d: d}
	uc.Matrix = &MatrixUseCase{d: d}
	uc.Session = &SessionUseCase{
		d:          d,
		detectLang: uc.detectLang,
		ttl:        uc.sessionTTL,
		now:        uc.now,
	}

	return uc
}

// dispatcher funnels every mutation of the record stores through one write
// lock so that cascades complete before any reader observes the stores.
type dispatcher struct {
	mu      sync.RWMutex
	repo    interfaces.Repository
	metrics *metrics.Metrics
}

func newDispatcher(repo interfaces.Repository, m *metrics.Metrics) *dispatcher {
	return &dispatcher{
		repo:    repo,
		metrics: m,
	}
}

func (d *dispatcher) write(ctx context.Context, fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := fn(); err != nil {
		return err
	}

	d.refreshGauges(ctx)
	return nil
}

func (d *dispatcher) read(fn func() error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fn()
}

func (d *dispatcher) refreshGauges(ctx context.Context) {
	if d.metrics == nil {
		return
	}

	companies, err := d.repo.Company().List(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to count companies", "error", err)
		return
	}
	risks, err := d.repo.Risk().List(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to count risks", "error", err)
		return
	}
	controls, err := d.repo.Control().List(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to count controls", "error", err)
		return
	}

	d.metrics.Records(len(companies), len(risks), len(controls))
}

type validatable interface {
	Validate() error
}

// validateRecord runs the record's own checks and maps model validation
// failures onto ErrRequiredField and ErrInvalidOption.
func validateRecord(record validatable) error {
	err := record.Validate()
	if err == nil {
		return nil
	}

	var values map[string]any
	var ge *goerr.Error
	if errors.As(err, &ge) {
		values = ge.Values()
	}

	switch {
	case errors.Is(err, model.ErrMissingRequired):
		return goerr.Wrap(ErrRequiredField, err.Error(), goerr.V(FieldKey, values[model.FieldIDKey]))
	case errors.Is(err, model.ErrInvalidOptionID):
		return goerr.Wrap(ErrInvalidOption, err.Error(), goerr.V(OptionKey, values[model.OptionIDKey]))
	default:
		return goerr.Wrap(err, "invalid record")
	}
}
