package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pmilosz/leadharvest"
)

// Compile-time interface verification.
var _ leadharvest.OwnerLookup = (*OwnerDirectory)(nil)

// OwnerDirectory resolves property owners from a CSV file with address,
// owner and phone columns. The whole file is loaded up front; county
// owner exports are small enough that an index in memory beats re-reading
// the file per lookup.
type OwnerDirectory struct {
	byAddress map[string]*leadharvest.OwnerRecord
}

// NewOwnerDirectory loads an owner directory from the CSV file at path.
func NewOwnerDirectory(path string) (*OwnerDirectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading owner directory: %w", err)
	}
	if len(records) == 0 {
		return nil, leadharvest.Errorf(leadharvest.EINVALID, "owner directory has no header row")
	}

	col := make(map[string]int)
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	addrCol, ok := col["address"]
	if !ok {
		return nil, leadharvest.Errorf(leadharvest.EINVALID, "owner directory is missing an address column")
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	dir := &OwnerDirectory{byAddress: make(map[string]*leadharvest.OwnerRecord)}
	for _, record := range records[1:] {
		if addrCol >= len(record) {
			continue
		}
		address := strings.TrimSpace(record[addrCol])
		if address == "" {
			continue
		}
		dir.byAddress[normalizeAddress(address)] = &leadharvest.OwnerRecord{
			Address: address,
			Owner:   field(record, "owner"),
			Phone:   field(record, "phone"),
		}
	}

	return dir, nil
}

// LookupOwner returns the owner record matching an address, ignoring
// case and punctuation differences.
func (d *OwnerDirectory) LookupOwner(_ context.Context, address string) (*leadharvest.OwnerRecord, error) {
	record, ok := d.byAddress[normalizeAddress(address)]
	if !ok {
		return nil, leadharvest.Errorf(leadharvest.ENOTFOUND, "no owner record for %s", address)
	}
	return record, nil
}

// Len returns the number of loaded owner records.
func (d *OwnerDirectory) Len() int {
	return len(d.byAddress)
}

// normalizeAddress lowercases an address and strips punctuation and
// repeated whitespace, so "1 Main St., Austin" matches "1 main st austin".
func normalizeAddress(address string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(address) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
