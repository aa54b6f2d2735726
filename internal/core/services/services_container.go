package services

import (
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/platform/config"
	"github.com/SscSPs/temple_admin_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.TaxPolicy = NewTaxPolicyService(
		repos.TaxPolicyRepo,
		WithYearRange(cfg.TaxYearRange),
		WithTaxPolicyMetrics(m),
	)

	container.TaxCalculation = NewTaxCalculationService(
		repos.TaxPolicyRepo,
		repos.RegistrantRecordRepo,
		WithCalculationYearRange(cfg.TaxYearRange),
		WithTaxCalculationMetrics(m),
	)

	// Registration depends on calculation for assessment
	container.TaxRegistration = NewTaxRegistrationService(
		repos.RegistrantRecordRepo,
		container.TaxCalculation,
		WithTaxRegistrationMetrics(m),
	)

	return container
}
