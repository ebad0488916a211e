package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pmilosz/leadharvest"
	main "github.com/pmilosz/leadharvest/cmd/leadharvest"
	"github.com/pmilosz/leadharvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists leads with status and emails", func(t *testing.T) {
		t.Parallel()

		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, _ leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
				return []*leadharvest.Lead{
					{
						ID:            "lead-123",
						Name:          "Ace Plumbing",
						Website:       "https://ace.example.com",
						HarvestStatus: leadharvest.HarvestStatusFound,
						Emails:        []string{"info@ace.example.com"},
					},
					{
						ID:   "lead-456",
						Name: "Best Pipes",
					},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Leads:  leads,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "lead-123")
		assert.Contains(t, output, "found")
		assert.Contains(t, output, "info@ace.example.com")
		assert.Contains(t, output, "lead-456")
	})

	t.Run("shows helpful message when no leads exist", func(t *testing.T) {
		t.Parallel()

		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, _ leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
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

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No leads found")
	})
}
