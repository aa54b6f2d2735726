package services

import (
	"context"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/SscSPs/temple_admin_app/internal/dto"
)

// TaxRegistrationWriterSvc defines write operations for tax registrations
type TaxRegistrationWriterSvc interface {
	// SubmitRegistration assesses the registrant and persists a frozen snapshot.
	// The calculation the snapshot was assessed from is returned alongside it.
	SubmitRegistration(ctx context.Context, templeID string, req dto.CreateTaxRegistrationRequest, userID string) (*domain.RegistrantYearRecord, *domain.CumulativeLiabilityResult, error)
}

// TaxRegistrationReaderSvc defines read operations for tax registrations
type TaxRegistrationReaderSvc interface {
	// ListRegistrations pages through saved snapshots, newest year first.
	ListRegistrations(ctx context.Context, templeID string, params dto.ListTaxRegistrationsParams) (*dto.ListTaxRegistrationsResponse, error)
}

// TaxRegistrationSvcFacade combines all tax registration service interfaces
type TaxRegistrationSvcFacade interface {
	TaxRegistrationReaderSvc
	TaxRegistrationWriterSvc
}
