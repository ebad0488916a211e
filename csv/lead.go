// Package csv implements lead import/export and a CSV-backed owner
// directory.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmilosz/leadharvest"
)

// leadHeader is the column layout for lead files, import and export alike.
var leadHeader = []string{
	"name", "address", "phone", "website", "place_id", "owner", "keyword",
	"emails_found", "harvest_status",
}

// emailSeparator joins multiple addresses into one spreadsheet cell.
const emailSeparator = ", "

// WriteLeads exports leads to a CSV file at path. The file is written to
// a temporary sibling and renamed into place, so readers never observe a
// half-written export.
func WriteLeads(path string, leads []*leadharvest.Lead) error {
	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(leadHeader); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	for _, lead := range leads {
		record := []string{
			lead.Name,
			lead.Address,
			lead.Phone,
			lead.Website,
			lead.PlaceID,
			lead.Owner,
			lead.Keyword,
			strings.Join(lead.Emails, emailSeparator),
			lead.HarvestStatus,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// ReadLeads imports leads from a CSV file. Columns are matched by header
// name, so partial files (say, just name and website) import cleanly.
// Unknown columns are ignored.
func ReadLeads(path string) ([]*leadharvest.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, leadharvest.Errorf(leadharvest.EINVALID, "%s has no header row", filepath.Base(path))
	}

	col := make(map[string]int)
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, leadharvest.Errorf(leadharvest.EINVALID, "%s is missing a name column", filepath.Base(path))
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var leads []*leadharvest.Lead
	for _, record := range records[1:] {
		lead := &leadharvest.Lead{
			Name:          field(record, "name"),
			Address:       field(record, "address"),
			Phone:         field(record, "phone"),
			Website:       field(record, "website"),
			PlaceID:       field(record, "place_id"),
			Owner:         field(record, "owner"),
			Keyword:       field(record, "keyword"),
			HarvestStatus: field(record, "harvest_status"),
		}
		if emails := field(record, "emails_found"); emails != "" {
			for _, email := range strings.Split(emails, ",") {
				if email = strings.TrimSpace(email); email != "" {
					lead.Emails = append(lead.Emails, email)
				}
			}
		}
		if lead.Name == "" {
			continue
		}
		leads = append(leads, lead)
	}

	return leads, nil
}
