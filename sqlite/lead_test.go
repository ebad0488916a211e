package sqlite_test

import (
	"context"
	"testing"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLeadService_CreateLead(t *testing.T) {
	t.Parallel()

	t.Run("creates lead with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		lead := &leadharvest.Lead{
			Name:    "Ace Plumbing",
			Address: "1 Main St, Austin, TX",
			Website: "https://aceplumbing.example.com",
			PlaceID: "p1",
			Keyword: "plumbers",
		}

		err := svc.CreateLead(ctx, lead)
		require.NoError(t, err)

		assert.NotEmpty(t, lead.ID, "ID should be generated")
		assert.False(t, lead.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.True(t, lead.HarvestedAt.IsZero(), "HarvestedAt starts unset")
	})

	t.Run("returns error for invalid lead", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))

		err := svc.CreateLead(context.Background(), &leadharvest.Lead{})
		require.Error(t, err)
		assert.Equal(t, leadharvest.EINVALID, leadharvest.ErrorCode(err))
	})

	t.Run("rejects duplicate place ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateLead(ctx, &leadharvest.Lead{Name: "First", PlaceID: "p1"}))

		err := svc.CreateLead(ctx, &leadharvest.Lead{Name: "Second", PlaceID: "p1"})
		require.Error(t, err)
		assert.Equal(t, leadharvest.ECONFLICT, leadharvest.ErrorCode(err))
	})

	t.Run("allows multiple leads without place ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateLead(ctx, &leadharvest.Lead{Name: "First"}))
		require.NoError(t, svc.CreateLead(ctx, &leadharvest.Lead{Name: "Second"}))
	})
}

func TestLeadService_FindLeadByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		lead := &leadharvest.Lead{
			Name:    "Ace Plumbing",
			Address: "1 Main St, Austin, TX",
			Phone:   "(512) 555-0100",
			Website: "https://aceplumbing.example.com",
			PlaceID: "p1",
			Owner:   "Jordan Díaz",
			Keyword: "plumbers",
			Emails:  []string{"info@aceplumbing.example.com", "sales@aceplumbing.example.com"},
		}
		require.NoError(t, svc.CreateLead(ctx, lead))

		got, err := svc.FindLeadByID(ctx, lead.ID)
		require.NoError(t, err)

		assert.Equal(t, lead.Name, got.Name)
		assert.Equal(t, lead.Address, got.Address)
		assert.Equal(t, lead.Phone, got.Phone)
		assert.Equal(t, lead.Website, got.Website)
		assert.Equal(t, lead.PlaceID, got.PlaceID)
		assert.Equal(t, lead.Owner, got.Owner)
		assert.Equal(t, lead.Keyword, got.Keyword)
		assert.Equal(t, lead.Emails, got.Emails)
	})

	t.Run("returns ENOTFOUND for missing lead", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))

		_, err := svc.FindLeadByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, leadharvest.ENOTFOUND, leadharvest.ErrorCode(err))
	})
}

func TestLeadService_FindLeads(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.LeadService) {
		t.Helper()
		ctx := context.Background()
		require.NoError(t, svc.CreateLead(ctx, &leadharvest.Lead{Name: "Ace Plumbing", Keyword: "plumbers", PlaceID: "p1"}))
		require.NoError(t, svc.CreateLead(ctx, &leadharvest.Lead{Name: "Best Pipes", Keyword: "plumbers", PlaceID: "p2"}))
		require.NoError(t, svc.CreateLead(ctx, &leadharvest.Lead{Name: "City Roofing", Keyword: "roofers", PlaceID: "p3"}))
	}

	t.Run("filters by keyword", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		seed(t, svc)

		keyword := "plumbers"
		leads, err := svc.FindLeads(context.Background(), leadharvest.LeadFilter{Keyword: &keyword})
		require.NoError(t, err)
		assert.Len(t, leads, 2)
	})

	t.Run("filters unharvested leads", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		seed(t, svc)
		ctx := context.Background()

		placeID := "p1"
		found, err := svc.FindLeads(ctx, leadharvest.LeadFilter{PlaceID: &placeID})
		require.NoError(t, err)
		require.Len(t, found, 1)

		status := leadharvest.HarvestStatusFound
		emails := []string{"info@example.com"}
		_, err = svc.UpdateLead(ctx, found[0].ID, leadharvest.LeadUpdate{
			Emails:        &emails,
			HarvestStatus: &status,
		})
		require.NoError(t, err)

		leads, err := svc.FindLeads(ctx, leadharvest.LeadFilter{Unharvested: true})
		require.NoError(t, err)
		assert.Len(t, leads, 2)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		seed(t, svc)

		leads, err := svc.FindLeads(context.Background(), leadharvest.LeadFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, leads, 2)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		seed(t, svc)

		keyword := "florists"
		leads, err := svc.FindLeads(context.Background(), leadharvest.LeadFilter{Keyword: &keyword})
		require.NoError(t, err)
		assert.Empty(t, leads)
	})
}

func TestLeadService_UpdateLead(t *testing.T) {
	t.Parallel()

	t.Run("updates harvest results and stamps HarvestedAt", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		lead := &leadharvest.Lead{Name: "Ace Plumbing", Website: "https://example.com"}
		require.NoError(t, svc.CreateLead(ctx, lead))

		emails := []string{"info@example.com", "sales@example.com"}
		status := leadharvest.HarvestStatusFound
		hash := "abc123"
		updated, err := svc.UpdateLead(ctx, lead.ID, leadharvest.LeadUpdate{
			Emails:        &emails,
			HarvestStatus: &status,
			SnapshotHash:  &hash,
		})
		require.NoError(t, err)

		assert.Equal(t, emails, updated.Emails)
		assert.Equal(t, leadharvest.HarvestStatusFound, updated.HarvestStatus)
		assert.Equal(t, "abc123", updated.SnapshotHash)
		assert.False(t, updated.HarvestedAt.IsZero())

		got, err := svc.FindLeadByID(ctx, lead.ID)
		require.NoError(t, err)
		assert.Equal(t, emails, got.Emails)
		assert.False(t, got.HarvestedAt.IsZero())
	})

	t.Run("leaves HarvestedAt alone for non-harvest updates", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		lead := &leadharvest.Lead{Name: "Ace Plumbing"}
		require.NoError(t, svc.CreateLead(ctx, lead))

		owner := "Jordan Díaz"
		updated, err := svc.UpdateLead(ctx, lead.ID, leadharvest.LeadUpdate{Owner: &owner})
		require.NoError(t, err)

		assert.Equal(t, "Jordan Díaz", updated.Owner)
		assert.True(t, updated.HarvestedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for missing lead", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))

		owner := "nobody"
		_, err := svc.UpdateLead(context.Background(), "no-such-id", leadharvest.LeadUpdate{Owner: &owner})
		require.Error(t, err)
		assert.Equal(t, leadharvest.ENOTFOUND, leadharvest.ErrorCode(err))
	})
}

func TestLeadService_DeleteLead(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing lead", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))
		ctx := context.Background()

		lead := &leadharvest.Lead{Name: "Ace Plumbing"}
		require.NoError(t, svc.CreateLead(ctx, lead))

		require.NoError(t, svc.DeleteLead(ctx, lead.ID))

		_, err := svc.FindLeadByID(ctx, lead.ID)
		assert.Equal(t, leadharvest.ENOTFOUND, leadharvest.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing lead", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLeadService(setupTestDB(t))

		err := svc.DeleteLead(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, leadharvest.ENOTFOUND, leadharvest.ErrorCode(err))
	})
}
