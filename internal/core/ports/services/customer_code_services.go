package services

import "context"

// CustomerCodeAllocatorSvc issues and previews per-company customer codes.
type CustomerCodeAllocatorSvc interface {
	// AllocateCustomerCode issues a new unique customer code for the company
	// in the current business year. It absorbs transient sequence conflicts by
	// retrying and returns apperrors.ErrAllocationExhausted once the retry
	// bound is spent.
	AllocateCustomerCode(ctx context.Context, companyID string) (string, error)

	// PreviewNextCode returns the code the next allocation would produce
	// without reserving it. The value is a hint only; concurrent allocations
	// can make it stale.
	PreviewNextCode(ctx context.Context, companyID string) (string, error)
}
