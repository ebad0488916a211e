package main

import (
	"fmt"

	"github.com/pmilosz/leadharvest"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return leadharvest.Errorf(leadharvest.EINVALID, "use --force to confirm deletion")
	}

	lead, err := deps.Leads.FindLeadByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	if err := deps.Leads.DeleteLead(deps.Ctx, lead.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted lead %q\n", lead.Name)
	return nil
}
