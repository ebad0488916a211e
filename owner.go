package leadharvest

import "context"

// OwnerRecord is a property-owner entry matched against a lead's address.
type OwnerRecord struct {
	Address string
	Owner   string
	Phone   string
}

// OwnerLookup resolves property owners for business addresses.
// The reference implementation is a CSV-backed directory; a property-data
// API client can satisfy the same interface.
type OwnerLookup interface {
	// LookupOwner returns the owner record for an address.
	// Returns ENOTFOUND if no record matches.
	LookupOwner(ctx context.Context, address string) (*OwnerRecord, error)
}
