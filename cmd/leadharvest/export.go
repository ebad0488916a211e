package main

import (
	"fmt"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/csv"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := leadharvest.LeadFilter{}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}
	if c.Status != "" {
		filter.HarvestStatus = &c.Status
	}

	leads, err := deps.Leads.FindLeads(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	if err := csv.WriteLeads(c.Path, leads); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d leads to %s\n", len(leads), c.Path)
	return nil
}
