package mapping

import (
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/SscSPs/temple_admin_app/internal/models"
)

// ToModelRegistrantYearRecord converts a domain record to its table model
func ToModelRegistrantYearRecord(d domain.RegistrantYearRecord) models.RegistrantYearRecord {
	return models.RegistrantYearRecord{
		RecordID:          d.RecordID,
		TempleID:          d.TempleID,
		Mobile:            d.Mobile,
		RegistrantName:    d.RegistrantName,
		Year:              d.Year,
		TaxAmount:         d.TaxAmount,
		AmountPaid:        d.AmountPaid,
		OutstandingAmount: d.OutstandingAmount,
		SupersededBy:      d.SupersededBy,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRegistrantYearRecord converts a table model to a domain record
func ToDomainRegistrantYearRecord(m models.RegistrantYearRecord) domain.RegistrantYearRecord {
	return domain.RegistrantYearRecord{
		RecordID:          m.RecordID,
		TempleID:          m.TempleID,
		Mobile:            m.Mobile,
		RegistrantName:    m.RegistrantName,
		Year:              m.Year,
		TaxAmount:         m.TaxAmount,
		AmountPaid:        m.AmountPaid,
		OutstandingAmount: m.OutstandingAmount,
		SupersededBy:      m.SupersededBy,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRegistrantYearRecordSlice converts a slice of table models to domain records
func ToDomainRegistrantYearRecordSlice(ms []models.RegistrantYearRecord) []domain.RegistrantYearRecord {
	ds := make([]domain.RegistrantYearRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRegistrantYearRecord(m)
	}
	return ds
}
