package repositories

import (
	"context"
)

// SequenceReader defines read operations on customer code sequences
type SequenceReader interface {
	// PeekNextNumber returns the value the next allocation for the
	// (company, year) pair would produce, without mutating state. Returns 1
	// when no sequence row exists yet.
	PeekNextNumber(ctx context.Context, companyID string, yearYY string) (int64, error)
}

// SequenceWriter defines the allocation operation on customer code sequences
type SequenceWriter interface {
	// AllocateNextNumber atomically increments and returns the counter for the
	// (company, year) pair, creating the row seeded at zero on first use. A
	// lost creation race surfaces as apperrors.ErrSequenceConflict; callers
	// retry rather than treating it as fatal.
	AllocateNextNumber(ctx context.Context, companyID string, yearYY string) (int64, error)
}

// SequenceRepositoryFacade combines the sequence store interfaces
type SequenceRepositoryFacade interface {
	SequenceReader
	SequenceWriter
}

// SequenceRepositoryWithTx extends SequenceRepositoryFacade with transaction capabilities
type SequenceRepositoryWithTx interface {
	SequenceRepositoryFacade
	TransactionManager
}
