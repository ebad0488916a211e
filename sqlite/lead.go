package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pmilosz/leadharvest"
)

// Compile-time interface verification.
var _ leadharvest.LeadService = (*LeadService)(nil)

// leadColumns is the column list shared by every SELECT against leads.
const leadColumns = "id, name, address, phone, website, place_id, owner, keyword, emails, harvest_status, snapshot_hash, created_at, harvested_at"

// LeadService implements leadharvest.LeadService using SQLite.
type LeadService struct {
	db *DB
}

// NewLeadService creates a new LeadService.
func NewLeadService(db *DB) *LeadService {
	return &LeadService{db: db}
}

// CreateLead creates a new lead. A lead with a Place ID that already
// exists in the store is rejected with ECONFLICT so repeated searches
// don't pile up duplicates.
func (s *LeadService) CreateLead(ctx context.Context, lead *leadharvest.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	if lead.PlaceID != "" {
		var existing string
		err := s.db.QueryRowContext(ctx, "SELECT id FROM leads WHERE place_id = ?", lead.PlaceID).Scan(&existing)
		if err == nil {
			return leadharvest.Errorf(leadharvest.ECONFLICT, "lead already exists for place %s", lead.PlaceID)
		}
		if err != sql.ErrNoRows {
			return err
		}
	}

	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (`+leadColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, lead.ID, lead.Name, lead.Address, lead.Phone, lead.Website, lead.PlaceID,
		lead.Owner, lead.Keyword, joinEmails(lead.Emails), lead.HarvestStatus,
		lead.SnapshotHash, formatRFC3339(lead.CreatedAt), formatRFC3339(lead.HarvestedAt))

	return err
}

// FindLeadByID retrieves a lead by ID.
func (s *LeadService) FindLeadByID(ctx context.Context, id string) (*leadharvest.Lead, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+leadColumns+" FROM leads WHERE id = ?", id)

	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, leadharvest.Errorf(leadharvest.ENOTFOUND, "lead not found")
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// FindLeads retrieves leads matching the filter, newest first.
func (s *LeadService) FindLeads(ctx context.Context, filter leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + leadColumns + " FROM leads WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Keyword != nil {
		query.WriteString(" AND keyword = ?")
		args = append(args, *filter.Keyword)
	}
	if filter.PlaceID != nil {
		query.WriteString(" AND place_id = ?")
		args = append(args, *filter.PlaceID)
	}
	if filter.HarvestStatus != nil {
		query.WriteString(" AND harvest_status = ?")
		args = append(args, *filter.HarvestStatus)
	}
	if filter.Unharvested {
		query.WriteString(" AND harvest_status = ''")
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*leadharvest.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// UpdateLead updates an existing lead. Updates touching harvest results
// (emails or harvest status) also stamp HarvestedAt.
func (s *LeadService) UpdateLead(ctx context.Context, id string, upd leadharvest.LeadUpdate) (*leadharvest.Lead, error) {
	lead, err := s.FindLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Address != nil {
		lead.Address = *upd.Address
	}
	if upd.Phone != nil {
		lead.Phone = *upd.Phone
	}
	if upd.Website != nil {
		lead.Website = *upd.Website
	}
	if upd.Owner != nil {
		lead.Owner = *upd.Owner
	}
	if upd.Emails != nil {
		lead.Emails = *upd.Emails
	}
	if upd.HarvestStatus != nil {
		lead.HarvestStatus = *upd.HarvestStatus
	}
	if upd.SnapshotHash != nil {
		lead.SnapshotHash = *upd.SnapshotHash
	}
	if upd.Emails != nil || upd.HarvestStatus != nil {
		lead.HarvestedAt = time.Now().UTC()
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE leads
		SET address = ?, phone = ?, website = ?, owner = ?, emails = ?,
			harvest_status = ?, snapshot_hash = ?, harvested_at = ?
		WHERE id = ?
	`, lead.Address, lead.Phone, lead.Website, lead.Owner, joinEmails(lead.Emails),
		lead.HarvestStatus, lead.SnapshotHash, formatRFC3339(lead.HarvestedAt), id)

	if err != nil {
		return nil, err
	}

	return lead, nil
}

// DeleteLead permanently removes a lead.
func (s *LeadService) DeleteLead(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM leads WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return leadharvest.Errorf(leadharvest.ENOTFOUND, "lead not found")
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanLead reads one lead row.
func scanLead(row scanner) (*leadharvest.Lead, error) {
	var lead leadharvest.Lead
	var emails, createdAt, harvestedAt string

	err := row.Scan(&lead.ID, &lead.Name, &lead.Address, &lead.Phone, &lead.Website,
		&lead.PlaceID, &lead.Owner, &lead.Keyword, &emails, &lead.HarvestStatus,
		&lead.SnapshotHash, &createdAt, &harvestedAt)
	if err != nil {
		return nil, err
	}

	lead.Emails = splitEmails(emails)
	if lead.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if lead.HarvestedAt, err = parseRFC3339(harvestedAt, "harvested_at"); err != nil {
		return nil, err
	}

	return &lead, nil
}
