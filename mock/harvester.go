package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.Harvester = (*Harvester)(nil)

// Harvester is a mock implementation of leadharvest.Harvester.
type Harvester struct {
	HarvestFn    func(ctx context.Context, rawURL string) []string
	HarvestURLFn func(ctx context.Context, rawURL string) *leadharvest.HarvestResult
}

func (h *Harvester) Harvest(ctx context.Context, rawURL string) []string {
	return h.HarvestFn(ctx, rawURL)
}

func (h *Harvester) HarvestURL(ctx context.Context, rawURL string) *leadharvest.HarvestResult {
	return h.HarvestURLFn(ctx, rawURL)
}
