package main

import (
	"fmt"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/harvest"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	filter := leadharvest.LeadFilter{Unharvested: !c.All}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}

	leads, err := deps.Leads.FindLeads(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	if len(leads) == 0 {
		fmt.Fprintln(deps.Stdout, "No leads to harvest. Use 'leadharvest search' or 'leadharvest import' first.")
		return nil
	}

	progress := func(event harvest.ProgressEvent) {
		switch event.Type {
		case harvest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Harvesting %d leads\n", event.Total)
		case harvest.ProgressCompleted:
			if event.Emails > 0 {
				fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %d emails\n",
					event.Completed, event.Total, event.Lead.Name, event.Emails)
			}
		case harvest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %v\n",
				event.Completed, event.Total, event.Lead.Name, event.Error)
		case harvest.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, leads, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d with emails, %d without, %d failed, %d skipped\n",
		result.Found, result.NoEmails, result.Failed, result.Skipped)
	return nil
}
