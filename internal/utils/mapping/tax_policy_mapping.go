package mapping

import (
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/SscSPs/temple_admin_app/internal/models"
)

// ToModelTaxYearPolicy converts a domain TaxYearPolicy to a model TaxYearPolicy
func ToModelTaxYearPolicy(d domain.TaxYearPolicy) models.TaxYearPolicy {
	return models.TaxYearPolicy{
		PolicyID:             d.PolicyID,
		TempleID:             d.TempleID,
		Year:                 d.Year,
		TaxAmount:            d.TaxAmount,
		IsActive:             d.IsActive,
		IncludePreviousYears: d.IncludePreviousYears,
		Description:          d.Description,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxYearPolicy converts a model TaxYearPolicy to a domain TaxYearPolicy
func ToDomainTaxYearPolicy(m models.TaxYearPolicy) domain.TaxYearPolicy {
	return domain.TaxYearPolicy{
		PolicyID:             m.PolicyID,
		TempleID:             m.TempleID,
		Year:                 m.Year,
		TaxAmount:            m.TaxAmount,
		IsActive:             m.IsActive,
		IncludePreviousYears: m.IncludePreviousYears,
		Description:          m.Description,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaxYearPolicySlice converts a slice of model policies to domain policies
func ToDomainTaxYearPolicySlice(ms []models.TaxYearPolicy) []domain.TaxYearPolicy {
	ds := make([]domain.TaxYearPolicy, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTaxYearPolicy(m)
	}
	return ds
}
