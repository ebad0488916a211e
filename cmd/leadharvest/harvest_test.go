package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pmilosz/leadharvest"
	main "github.com/pmilosz/leadharvest/cmd/leadharvest"
	"github.com/pmilosz/leadharvest/harvest"
	"github.com/pmilosz/leadharvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("harvests unharvested leads and prints summary", func(t *testing.T) {
		t.Parallel()

		stored := []*leadharvest.Lead{
			{ID: "l1", Name: "Ace Plumbing", Website: "https://ace.example.com"},
			{ID: "l2", Name: "Best Pipes", Website: "https://best.example.com"},
		}
		var gotFilter leadharvest.LeadFilter
		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, filter leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
				gotFilter = filter
				return stored, nil
			},
			UpdateLeadFn: func(_ context.Context, id string, upd leadharvest.LeadUpdate) (*leadharvest.Lead, error) {
				return &leadharvest.Lead{ID: id}, nil
			},
		}
		harvester := &mock.Harvester{
			HarvestURLFn: func(_ context.Context, rawURL string) *leadharvest.HarvestResult {
				return &leadharvest.HarvestResult{
					URL:    rawURL,
					Status: leadharvest.StatusFetched,
					Emails: []string{"info@example.com"},
				}
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Leads:  leads,
			Runner: &harvest.Runner{Harvester: harvester, Leads: leads},
		}

		cmd := &main.HarvestCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, gotFilter.Unharvested, "default run targets unharvested leads")
		output := stdout.String()
		assert.Contains(t, output, "Harvesting 2 leads")
		assert.Contains(t, output, "Done: 2 with emails")
	})

	t.Run("--all disables the unharvested filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter leadharvest.LeadFilter
		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, filter leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Leads:  leads,
		}

		cmd := &main.HarvestCmd{All: true, Keyword: "plumbers"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.False(t, gotFilter.Unharvested)
		require.NotNil(t, gotFilter.Keyword)
		assert.Equal(t, "plumbers", *gotFilter.Keyword)
		assert.Contains(t, stdout.String(), "No leads to harvest")
	})

	t.Run("reports failed fetches on stderr", func(t *testing.T) {
		t.Parallel()

		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, _ leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
				return []*leadharvest.Lead{
					{ID: "l1", Name: "Dead Site LLC", Website: "https://gone.example.com"},
				}, nil
			},
			UpdateLeadFn: func(_ context.Context, id string, upd leadharvest.LeadUpdate) (*leadharvest.Lead, error) {
				return &leadharvest.Lead{ID: id}, nil
			},
		}
		harvester := &mock.Harvester{
			HarvestURLFn: func(_ context.Context, rawURL string) *leadharvest.HarvestResult {
				return &leadharvest.HarvestResult{
					URL:    rawURL,
					Status: leadharvest.StatusFetchFailed,
					Emails: []string{},
					Err:    leadharvest.Errorf(leadharvest.EUNAVAILABLE, "connection refused"),
				}
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Leads:  leads,
			Runner: &harvest.Runner{Harvester: harvester, Leads: leads},
		}

		cmd := &main.HarvestCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Dead Site LLC")
		assert.Contains(t, stdout.String(), "1 failed")
	})
}
