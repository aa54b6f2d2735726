package services_test

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const (
	testTempleID = "temple-1"
	testMobile   = "9876543210"
)

// --- Mock TaxPolicyRepository ---
type MockTaxPolicyRepository struct {
	mock.Mock
}

func (m *MockTaxPolicyRepository) FindPolicyByYear(ctx context.Context, templeID string, year int) (*domain.TaxYearPolicy, error) {
	args := m.Called(ctx, templeID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyRepository) ListPolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error) {
	args := m.Called(ctx, templeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyRepository) ListActivePolicies(ctx context.Context, templeID string) ([]domain.TaxYearPolicy, error) {
	args := m.Called(ctx, templeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyRepository) UpsertPolicy(ctx context.Context, policy domain.TaxYearPolicy) (*domain.TaxYearPolicy, error) {
	args := m.Called(ctx, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxYearPolicy), args.Error(1)
}

func (m *MockTaxPolicyRepository) SetIncludePreviousYears(ctx context.Context, templeID string, value bool, updatedBy string) (int64, error) {
	args := m.Called(ctx, templeID, value, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.TaxPolicyRepositoryFacade = (*MockTaxPolicyRepository)(nil)

// --- Mock RegistrantRecordRepository ---
type MockRegistrantRecordRepository struct {
	mock.Mock
}

func (m *MockRegistrantRecordRepository) FindRecordsByMobile(ctx context.Context, templeID string, mobile string) ([]domain.RegistrantYearRecord, error) {
	args := m.Called(ctx, templeID, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistrantYearRecord), args.Error(1)
}

func (m *MockRegistrantRecordRepository) ListRecords(ctx context.Context, templeID string, filter portsrepo.RecordListFilter) ([]domain.RegistrantYearRecord, error) {
	args := m.Called(ctx, templeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistrantYearRecord), args.Error(1)
}

func (m *MockRegistrantRecordRepository) SaveRecord(ctx context.Context, record domain.RegistrantYearRecord, supersedes []string) error {
	args := m.Called(ctx, record, supersedes)
	return args.Error(0)
}

var _ portsrepo.RegistrantRecordRepositoryFacade = (*MockRegistrantRecordRepository)(nil)

// --- In-memory store ---

// memoryStore keeps policies and records in memory for flows that span
// several services and need writes to be visible to later reads.
type memoryStore struct {
	mu       sync.Mutex
	policies map[int]domain.TaxYearPolicy
	records  []domain.RegistrantYearRecord
}

func newMemoryStore(policies ...domain.TaxYearPolicy) *memoryStore {
	s := &memoryStore{policies: map[int]domain.TaxYearPolicy{}}
	for _, p := range policies {
		s.policies[p.Year] = p
	}
	return s
}

func (s *memoryStore) FindPolicyByYear(_ context.Context, _ string, year int) (*domain.TaxYearPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[year]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *memoryStore) ListPolicies(_ context.Context, _ string) ([]domain.TaxYearPolicy, error) {
	return s.sortedPolicies(false), nil
}

func (s *memoryStore) ListActivePolicies(_ context.Context, _ string) ([]domain.TaxYearPolicy, error) {
	return s.sortedPolicies(true), nil
}

func (s *memoryStore) sortedPolicies(activeOnly bool) []domain.TaxYearPolicy {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TaxYearPolicy, 0, len(s.policies))
	for _, p := range s.policies {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func (s *memoryStore) UpsertPolicy(_ context.Context, policy domain.TaxYearPolicy) (*domain.TaxYearPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[policy.Year] = policy
	return &policy, nil
}

func (s *memoryStore) SetIncludePreviousYears(_ context.Context, _ string, value bool, updatedBy string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for year, p := range s.policies {
		p.IncludePreviousYears = value
		p.LastUpdatedBy = updatedBy
		s.policies[year] = p
	}
	return int64(len(s.policies)), nil
}

func (s *memoryStore) FindRecordsByMobile(_ context.Context, _ string, mobile string) ([]domain.RegistrantYearRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RegistrantYearRecord
	for _, r := range s.records {
		if r.Mobile != nil && *r.Mobile == mobile {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memoryStore) ListRecords(_ context.Context, _ string, _ portsrepo.RecordListFilter) ([]domain.RegistrantYearRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RegistrantYearRecord(nil), s.records...), nil
}

func (s *memoryStore) SaveRecord(_ context.Context, record domain.RegistrantYearRecord, supersedes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Mobile != nil && record.Mobile != nil && *r.Mobile == *record.Mobile && r.Year == record.Year {
			return apperrors.NewConflictError("tax registration already exists")
		}
	}

	positions := make([]int, 0, len(supersedes))
	for _, id := range supersedes {
		found := false
		for i, r := range s.records {
			if r.RecordID == id && r.SupersededBy == nil {
				positions = append(positions, i)
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConflictError("earlier tax registration already carried")
		}
	}
	for _, i := range positions {
		carriedBy := record.RecordID
		s.records[i].SupersededBy = &carriedBy
	}
	s.records = append(s.records, record)
	return nil
}

// seed stores records as if they had been filed earlier.
func (s *memoryStore) seed(records ...domain.RegistrantYearRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

var (
	_ portsrepo.TaxPolicyRepositoryFacade        = (*memoryStore)(nil)
	_ portsrepo.RegistrantRecordRepositoryFacade = (*memoryStore)(nil)
)

// --- Fixtures ---

func policy(year int, amount int64, active, includePrev bool) domain.TaxYearPolicy {
	return domain.TaxYearPolicy{
		PolicyID:             "policy-" + decimal.NewFromInt(int64(year)).String(),
		TempleID:             testTempleID,
		Year:                 year,
		TaxAmount:            decimal.NewFromInt(amount),
		IsActive:             active,
		IncludePreviousYears: includePrev,
	}
}

// standardPolicies is 2023 and 2024 backfilled, 2025 current.
func standardPolicies() []domain.TaxYearPolicy {
	return []domain.TaxYearPolicy{
		policy(2023, 100, true, true),
		policy(2024, 120, true, true),
		policy(2025, 150, true, false),
	}
}

func record(year int, tax, paid int64) domain.RegistrantYearRecord {
	mobile := testMobile
	outstanding := decimal.NewFromInt(tax - paid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return domain.RegistrantYearRecord{
		RecordID:          "record-" + decimal.NewFromInt(int64(year)).String(),
		TempleID:          testTempleID,
		Mobile:            &mobile,
		Year:              year,
		TaxAmount:         decimal.NewFromInt(tax),
		AmountPaid:        decimal.NewFromInt(paid),
		OutstandingAmount: outstanding,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
