package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.OwnerLookup = (*OwnerLookup)(nil)

// OwnerLookup is a mock implementation of leadharvest.OwnerLookup.
type OwnerLookup struct {
	LookupOwnerFn func(ctx context.Context, address string) (*leadharvest.OwnerRecord, error)
}

func (l *OwnerLookup) LookupOwner(ctx context.Context, address string) (*leadharvest.OwnerRecord, error) {
	return l.LookupOwnerFn(ctx, address)
}
