package csv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLeads_ReadLeads_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.csv")
	leads := []*leadharvest.Lead{
		{
			Name:          "Ace Plumbing",
			Address:       "1 Main St, Austin, TX",
			Phone:         "(512) 555-0100",
			Website:       "https://aceplumbing.example.com",
			PlaceID:       "p1",
			Owner:         "Jordan Díaz",
			Keyword:       "plumbers",
			Emails:        []string{"info@aceplumbing.example.com", "sales@aceplumbing.example.com"},
			HarvestStatus: leadharvest.HarvestStatusFound,
		},
		{
			Name:    "Best Pipes",
			Website: "https://bestpipes.example.com",
		},
	}

	require.NoError(t, csv.WriteLeads(path, leads))

	got, err := csv.ReadLeads(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Ace Plumbing", got[0].Name)
	assert.Equal(t, "1 Main St, Austin, TX", got[0].Address)
	assert.Equal(t, []string{"info@aceplumbing.example.com", "sales@aceplumbing.example.com"}, got[0].Emails)
	assert.Equal(t, leadharvest.HarvestStatusFound, got[0].HarvestStatus)

	assert.Equal(t, "Best Pipes", got[1].Name)
	assert.Empty(t, got[1].Emails)
}

func TestWriteLeads_LeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "leads.csv")

	require.NoError(t, csv.WriteLeads(path, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "leads.csv", entries[0].Name())
}

func TestReadLeads_PartialColumns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "import.csv")
	content := "Name,Website,notes\nAce Plumbing,https://example.com,call back\n,https://orphan.example.com,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	leads, err := csv.ReadLeads(path)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	assert.Equal(t, "Ace Plumbing", leads[0].Name)
	assert.Equal(t, "https://example.com", leads[0].Website)
	assert.Empty(t, leads[0].Address)
}

func TestReadLeads_MissingNameColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("website\nhttps://example.com\n"), 0644))

	_, err := csv.ReadLeads(path)
	require.Error(t, err)
	assert.Equal(t, leadharvest.EINVALID, leadharvest.ErrorCode(err))
}

func TestReadLeads_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := csv.ReadLeads(path)
	require.Error(t, err)
	assert.Equal(t, leadharvest.EINVALID, leadharvest.ErrorCode(err))
}

func TestReadLeads_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := csv.ReadLeads(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
