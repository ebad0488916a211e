package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.LeadService = (*LeadService)(nil)

// LeadService is a mock implementation of leadharvest.LeadService.
type LeadService struct {
	CreateLeadFn   func(ctx context.Context, lead *leadharvest.Lead) error
	FindLeadByIDFn func(ctx context.Context, id string) (*leadharvest.Lead, error)
	FindLeadsFn    func(ctx context.Context, filter leadharvest.LeadFilter) ([]*leadharvest.Lead, error)
	UpdateLeadFn   func(ctx context.Context, id string, upd leadharvest.LeadUpdate) (*leadharvest.Lead, error)
	DeleteLeadFn   func(ctx context.Context, id string) error
}

func (s *LeadService) CreateLead(ctx context.Context, lead *leadharvest.Lead) error {
	return s.CreateLeadFn(ctx, lead)
}

func (s *LeadService) FindLeadByID(ctx context.Context, id string) (*leadharvest.Lead, error) {
	return s.FindLeadByIDFn(ctx, id)
}

func (s *LeadService) FindLeads(ctx context.Context, filter leadharvest.LeadFilter) ([]*leadharvest.Lead, error) {
	return s.FindLeadsFn(ctx, filter)
}

func (s *LeadService) UpdateLead(ctx context.Context, id string, upd leadharvest.LeadUpdate) (*leadharvest.Lead, error) {
	return s.UpdateLeadFn(ctx, id, upd)
}

func (s *LeadService) DeleteLead(ctx context.Context, id string) error {
	return s.DeleteLeadFn(ctx, id)
}
