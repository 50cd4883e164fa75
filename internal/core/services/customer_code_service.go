package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samprox/erp_backend/internal/apperrors"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/samprox/erp_backend/internal/core/ports/services"
	"github.com/samprox/erp_backend/internal/utils/customercode"
)

// defaultMaxAllocationAttempts bounds the retry loop around lost sequence
// races. Exhausting it means persistent contention, which must surface to the
// caller rather than being swallowed.
const defaultMaxAllocationAttempts = 3

// customerCodeService issues customer codes of the form {prefix}{YY}{NNNN},
// scoped per company and business-calendar year.
type customerCodeService struct {
	companyRepo  portsrepo.CompanyReader
	sequenceRepo portsrepo.SequenceRepositoryFacade
	location     *time.Location
	now          func() time.Time
	maxAttempts  int
}

// CodeServiceOption is a functional option for configuring the code allocator
type CodeServiceOption func(*customerCodeService)

// WithClock overrides the time source, used by tests to pin the year.
func WithClock(now func() time.Time) CodeServiceOption {
	return func(s *customerCodeService) {
		s.now = now
	}
}

// WithMaxAllocationAttempts overrides the retry bound.
func WithMaxAllocationAttempts(n int) CodeServiceOption {
	return func(s *customerCodeService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewCustomerCodeService creates the allocator. location is the business time
// zone the 2-digit year is derived in.
func NewCustomerCodeService(
	companyRepo portsrepo.CompanyReader,
	sequenceRepo portsrepo.SequenceRepositoryFacade,
	location *time.Location,
	options ...CodeServiceOption,
) portssvc.CustomerCodeAllocatorSvc {
	if location == nil {
		location = time.UTC
	}
	svc := &customerCodeService{
		companyRepo:  companyRepo,
		sequenceRepo: sequenceRepo,
		location:     location,
		now:          time.Now,
		maxAttempts:  defaultMaxAllocationAttempts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerCodeAllocatorSvc = (*customerCodeService)(nil)

// AllocateCustomerCode issues the next code for the company in the current
// business year. Sequence conflicts are absorbed by retrying; each retry
// re-reads state, so a lost race simply picks up the next value. Gaps in the
// numeric sequence are tolerated, duplicates are not.
func (s *customerCodeService) AllocateCustomerCode(ctx context.Context, companyID string) (string, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve company %s for code allocation: %w", companyID, err)
	}

	yearYY := s.currentYearYY()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		sequence, err := s.sequenceRepo.AllocateNextNumber(ctx, companyID, yearYY)
		if err != nil {
			if errors.Is(err, apperrors.ErrSequenceConflict) {
				continue
			}
			return "", fmt.Errorf("failed to allocate sequence for company %s year %s: %w", companyID, yearYY, err)
		}

		code, err := customercode.FormatCode(company.CodePrefix, yearYY, sequence)
		if err != nil {
			return "", fmt.Errorf("failed to format customer code for company %s: %w", companyID, err)
		}
		return code, nil
	}

	return "", fmt.Errorf("allocating code for company %s year %s failed after %d attempts: %w",
		companyID, yearYY, s.maxAttempts, apperrors.ErrAllocationExhausted)
}

// PreviewNextCode formats the value the next allocation would produce without
// reserving it. Callers must re-derive the real code at creation time; the
// preview goes stale as soon as someone else allocates.
func (s *customerCodeService) PreviewNextCode(ctx context.Context, companyID string) (string, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve company %s for code preview: %w", companyID, err)
	}

	yearYY := s.currentYearYY()

	sequence, err := s.sequenceRepo.PeekNextNumber(ctx, companyID, yearYY)
	if err != nil {
		return "", fmt.Errorf("failed to peek sequence for company %s year %s: %w", companyID, yearYY, err)
	}

	code, err := customercode.FormatCode(company.CodePrefix, yearYY, sequence)
	if err != nil {
		return "", fmt.Errorf("failed to format customer code preview for company %s: %w", companyID, err)
	}
	return code, nil
}

func (s *customerCodeService) currentYearYY() string {
	return fmt.Sprintf("%02d", s.now().In(s.location).Year()%100)
}
