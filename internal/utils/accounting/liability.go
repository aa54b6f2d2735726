package accounting

import (
	"sort"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateCumulativeLiability works out what a registrant owes for currentYear
// and every earlier backfill year, from one policy snapshot and one history
// snapshot. It reads no clock and no shared state, so equal inputs always give
// equal results.
//
// A new registrant (no records at all) is charged the full policy amount for
// every active past year flagged includePreviousYears. An existing registrant
// is charged only the unpaid remainder of past records they actually have.
func CalculateCumulativeLiability(policies []domain.TaxYearPolicy, history []domain.RegistrantYearRecord, currentYear int) domain.CumulativeLiabilityResult {
	active := activePoliciesByYear(policies)
	isNew := !domain.HasAnyRecord(history)
	records := latestRecordPerYear(history)

	breakdown := make([]domain.LiabilityBreakdownEntry, 0, len(active)+1)
	cumulative := decimal.Zero

	for _, year := range sortedYears(active) {
		if year >= currentYear {
			break
		}
		policy := active[year]
		if !policy.IncludePreviousYears {
			continue
		}

		var (
			due      decimal.Decimal
			recordID string
		)
		if isNew {
			due = policy.TaxAmount
		} else {
			rec, ok := records[year]
			if !ok || rec.IsSettled() || rec.IsSuperseded() {
				// existing registrants are never backfilled for years they were not registered in
				continue
			}
			due = rec.OutstandingAmount
			recordID = rec.RecordID
		}

		breakdown = append(breakdown, domain.LiabilityBreakdownEntry{
			Year:      year,
			AmountDue: due,
			Status:    domain.StatusOwedPreviousYear,
			RecordID:  recordID,
		})
		cumulative = cumulative.Add(due)
	}

	currentTax := currentYearTax(active, currentYear)
	status := domain.StatusCurrentYearRegistered
	if isNew {
		status = domain.StatusCurrentYearNew
	}
	breakdown = append(breakdown, domain.LiabilityBreakdownEntry{
		Year:      currentYear,
		AmountDue: currentTax,
		Status:    status,
	})

	return domain.CumulativeLiabilityResult{
		CumulativeOutstanding:   cumulative,
		CurrentYearTax:          currentTax,
		TotalTaxDue:             cumulative.Add(currentTax),
		YearBreakdown:           breakdown,
		HasExistingRegistration: !isNew,
		CumulativeLookup:        true,
	}
}

// CalculateSingleYearLiability is the fallback used when the registrant cannot
// be identified: only the current year's configured tax is assessed.
func CalculateSingleYearLiability(policies []domain.TaxYearPolicy, currentYear int) domain.CumulativeLiabilityResult {
	currentTax := currentYearTax(activePoliciesByYear(policies), currentYear)
	return domain.CumulativeLiabilityResult{
		CumulativeOutstanding: decimal.Zero,
		CurrentYearTax:        currentTax,
		TotalTaxDue:           currentTax,
		YearBreakdown: []domain.LiabilityBreakdownEntry{{
			Year:      currentYear,
			AmountDue: currentTax,
			Status:    domain.StatusCurrentYearNew,
		}},
		HasExistingRegistration: false,
		CumulativeLookup:        false,
	}
}

func currentYearTax(active map[int]domain.TaxYearPolicy, currentYear int) decimal.Decimal {
	if policy, ok := active[currentYear]; ok {
		return policy.TaxAmount
	}
	return decimal.Zero
}

// activePoliciesByYear keeps one active policy per year. Should the snapshot
// ever hold two rows for a year, the lowest PolicyID wins so the pick is stable.
func activePoliciesByYear(policies []domain.TaxYearPolicy) map[int]domain.TaxYearPolicy {
	byYear := make(map[int]domain.TaxYearPolicy, len(policies))
	for _, p := range policies {
		if !p.IsActive {
			continue
		}
		if existing, ok := byYear[p.Year]; ok && existing.PolicyID <= p.PolicyID {
			continue
		}
		byYear[p.Year] = p
	}
	return byYear
}

// latestRecordPerYear keeps the most recently updated record per year, with
// RecordID as tie breaker, so a year is never counted twice.
func latestRecordPerYear(history []domain.RegistrantYearRecord) map[int]domain.RegistrantYearRecord {
	byYear := make(map[int]domain.RegistrantYearRecord, len(history))
	for _, rec := range history {
		existing, ok := byYear[rec.Year]
		if !ok || newerRecord(rec, existing) {
			byYear[rec.Year] = rec
		}
	}
	return byYear
}

func newerRecord(a, b domain.RegistrantYearRecord) bool {
	if !a.LastUpdatedAt.Equal(b.LastUpdatedAt) {
		return a.LastUpdatedAt.After(b.LastUpdatedAt)
	}
	return a.RecordID > b.RecordID
}

func sortedYears(byYear map[int]domain.TaxYearPolicy) []int {
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
